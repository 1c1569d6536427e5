package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/polydice/internal/dice"
	"github.com/KirkDiggler/polydice/internal/models"
)

// renderDice writes one line per die with its face range
func renderDice(w io.Writer, list []*models.Die) error {
	width := 0
	for _, die := range list {
		width = max(width, len(die.Variant))
	}

	var sb strings.Builder
	for _, die := range list {
		fmt.Fprintf(&sb, "%-*s  %d-%d  (%d faces)\n", width, die.Variant, die.Min, die.Max, len(die.Faces))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// renderRoll writes the rolled values followed by a summary line
func renderRoll(w io.Writer, roll *models.Roll, summary dice.Summary) error {
	values := make([]string, len(roll.Values))
	for i, v := range roll.Values {
		values[i] = strconv.Itoa(v)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s: %s\n", roll.Variant, roll.Mode, strings.Join(values, " "))

	switch roll.Mode {
	case models.RollModeBiased:
		fmt.Fprintf(&sb, "sum %d (target %d), mean %.2f, stddev %.2f\n",
			summary.Sum, roll.Target*roll.Count, summary.Mean, summary.StdDev)
	default:
		if summary.Count > 1 {
			fmt.Fprintf(&sb, "sum %d, mean %.2f, stddev %.2f\n", summary.Sum, summary.Mean, summary.StdDev)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
