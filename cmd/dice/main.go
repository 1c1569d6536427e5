package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log/level"

	"github.com/KirkDiggler/polydice/internal/common/clock"
	"github.com/KirkDiggler/polydice/internal/common/uuid"
	"github.com/KirkDiggler/polydice/internal/dice"
	"github.com/KirkDiggler/polydice/internal/handlers/cli"
	"github.com/KirkDiggler/polydice/internal/platform/config"
	"github.com/KirkDiggler/polydice/internal/platform/logging"
	"github.com/KirkDiggler/polydice/internal/services/roll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	app, err := cli.New(&cli.Config{
		Defaults: cli.Options{
			Seed:      cfg.Seed,
			LogLevel:  cfg.LogLevel,
			LogFormat: cfg.LogFormat,
		},
		NewService: newRollService,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create command line: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newRollService wires the roll service from parsed options
func newRollService(opts cli.Options) (roll.Service, error) {
	logger, err := logging.New(os.Stderr, opts.LogFormat, opts.LogLevel)
	if err != nil {
		return nil, err
	}

	level.Debug(logger).Log("msg", "creating roll service", "seed", opts.Seed)

	return roll.New(&roll.Config{
		Registry:      dice.DefaultRegistry(),
		DiceRoller:    dice.New(&dice.Config{Seed: opts.Seed}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
}
