package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/KirkDiggler/polydice/internal/services/roll"
)

const (
	cfgSeed      = "seed"
	cfgLogLevel  = "log.level"
	cfgLogFormat = "log.format"
)

// Options are the settings the roll service is built from
type Options struct {
	Seed      int64
	LogLevel  string
	LogFormat string
}

// ServiceFactory builds the roll service once flags are parsed
type ServiceFactory func(opts Options) (roll.Service, error)

// Config holds the configuration for the CLI
type Config struct {
	// Defaults are used for any flag that is not set
	Defaults Options

	// NewService creates the roll service for a command run
	NewService ServiceFactory

	// Optional output writers, default to stdout and stderr
	Out io.Writer
	Err io.Writer
}

// App is the dice command line
type App struct {
	root     *cobra.Command
	commands map[string]CommandHandler
	options  Options
	service  roll.Service
	config   *Config
}

// New creates the command tree
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.NewService == nil {
		return nil, errors.New("service factory cannot be nil")
	}

	app := &App{
		commands: make(map[string]CommandHandler),
		options:  cfg.Defaults,
		config:   cfg,
	}

	app.root = &cobra.Command{
		Use:               "dice",
		Short:             "Roll polyhedral dice, fairly or toward a target average",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
	}
	app.root.PersistentFlags().AddFlagSet(app.rootFlags())

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := cfg.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	app.root.SetOut(out)
	app.root.SetErr(errOut)

	for _, cmd := range []CommandHandler{
		NewListCommand(app.rollService),
		NewRollCommand(app.rollService),
		NewBiasCommand(app.rollService),
	} {
		app.RegisterCommand(cmd)
	}

	return app, nil
}

// RegisterCommand adds a command to the root
func (a *App) RegisterCommand(cmd CommandHandler) {
	a.commands[cmd.GetName()] = cmd
	a.root.AddCommand(cmd.GetCommand())
}

// Root returns the root command
func (a *App) Root() *cobra.Command {
	return a.root
}

// Execute runs the command line with the given arguments
func (a *App) Execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) rootFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Int64Var(&a.options.Seed, cfgSeed, a.options.Seed, "seed for the random source (0 seeds from the clock)")
	fs.StringVar(&a.options.LogLevel, cfgLogLevel, a.options.LogLevel, "log level [debug,info,warn,error,none]")
	fs.StringVar(&a.options.LogFormat, cfgLogFormat, a.options.LogFormat, "log format [logfmt,json]")
	return fs
}

func (a *App) setup(cmd *cobra.Command, args []string) error {
	svc, err := a.config.NewService(a.options)
	if err != nil {
		return fmt.Errorf("failed to create roll service: %w", err)
	}
	a.service = svc
	return nil
}

// rollService returns the service built for the current run
func (a *App) rollService() roll.Service {
	return a.service
}
