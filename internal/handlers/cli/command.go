package cli

import (
	"github.com/spf13/cobra"
)

// CommandHandler defines the interface for CLI command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the cobra command definition
	GetCommand() *cobra.Command
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Example     string
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// newCommand builds the cobra command shared fields
func (c *BaseCommand) newCommand() *cobra.Command {
	return &cobra.Command{
		Use:          c.Name,
		Short:        c.Description,
		Example:      c.Example,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
}
