package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/polydice/internal/dice"
	"github.com/KirkDiggler/polydice/internal/services/roll"
)

const (
	flagDie    = "die"
	flagCount  = "count"
	flagTarget = "target"
)

// RollCommand rolls a die with every face equally likely
type RollCommand struct {
	BaseCommand
	rollService func() roll.Service

	die   string
	count int
}

// NewRollCommand creates the roll command
func NewRollCommand(rollService func() roll.Service) *RollCommand {
	return &RollCommand{
		BaseCommand: BaseCommand{
			Name:        "roll",
			Description: "Roll a die with every face equally likely",
			Example:     "  dice roll --die d20 --count 3",
		},
		rollService: rollService,
	}
}

// GetCommand returns the cobra command definition
func (c *RollCommand) GetCommand() *cobra.Command {
	cmd := c.newCommand()
	cmd.Flags().StringVarP(&c.die, flagDie, "d", string(dice.D20), "die to roll (d4, d6, d8, d10, d12, d20, d10-no-1)")
	cmd.Flags().IntVarP(&c.count, flagCount, "n", 1, "number of rolls")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		variant, err := dice.ParseVariant(c.die)
		if err != nil {
			return err
		}

		output, err := c.rollService().RollUniform(cmd.Context(), &roll.RollUniformInput{
			Variant: variant,
			Count:   c.count,
		})
		if err != nil {
			return err
		}

		return renderRoll(cmd.OutOrStdout(), output.Roll, output.Summary)
	}
	return cmd
}

// BiasCommand rolls a die so the rolls average out to a target
type BiasCommand struct {
	BaseCommand
	rollService func() roll.Service

	die    string
	count  int
	target int
}

// NewBiasCommand creates the bias command
func NewBiasCommand(rollService func() roll.Service) *BiasCommand {
	return &BiasCommand{
		BaseCommand: BaseCommand{
			Name:        "bias",
			Description: "Roll a die several times, steering the average toward a target",
			Example:     "  dice bias --die d20 --count 10 --target 12",
		},
		rollService: rollService,
	}
}

// GetCommand returns the cobra command definition
func (c *BiasCommand) GetCommand() *cobra.Command {
	cmd := c.newCommand()
	cmd.Flags().StringVarP(&c.die, flagDie, "d", string(dice.D20), "die to roll (d4, d6, d8, d10, d12, d20, d10-no-1)")
	cmd.Flags().IntVarP(&c.count, flagCount, "n", 10, "number of rolls")
	cmd.Flags().IntVarP(&c.target, flagTarget, "t", 0, "average the rolls should converge on")
	_ = cmd.MarkFlagRequired(flagTarget)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		variant, err := dice.ParseVariant(c.die)
		if err != nil {
			return err
		}

		output, err := c.rollService().RollBiased(cmd.Context(), &roll.RollBiasedInput{
			Variant: variant,
			Count:   c.count,
			Target:  c.target,
		})
		if err != nil {
			return err
		}

		return renderRoll(cmd.OutOrStdout(), output.Roll, output.Summary)
	}
	return cmd
}
