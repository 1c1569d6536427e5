package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/polydice/internal/services/roll"
)

// ListCommand prints the available dice
type ListCommand struct {
	BaseCommand
	rollService func() roll.Service
}

// NewListCommand creates the list command
func NewListCommand(rollService func() roll.Service) *ListCommand {
	return &ListCommand{
		BaseCommand: BaseCommand{
			Name:        "list",
			Description: "List the dice that can be rolled",
		},
		rollService: rollService,
	}
}

// GetCommand returns the cobra command definition
func (c *ListCommand) GetCommand() *cobra.Command {
	cmd := c.newCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		output, err := c.rollService().ListDice(cmd.Context(), &roll.ListDiceInput{})
		if err != nil {
			return err
		}
		return renderDice(cmd.OutOrStdout(), output.Dice)
	}
	return cmd
}
