package dice

import (
	"gonum.org/v1/gonum/stat"
)

// Summary describes a sequence of rolls
type Summary struct {
	Count  int
	Sum    int
	Min    int
	Max    int
	Mean   float64
	StdDev float64
}

// Summarize computes the summary of rolls. StdDev is the sample standard
// deviation and is zero for fewer than two rolls.
func Summarize(rolls []int) Summary {
	if len(rolls) == 0 {
		return Summary{}
	}

	values := make([]float64, len(rolls))
	summary := Summary{
		Count: len(rolls),
		Min:   rolls[0],
		Max:   rolls[0],
	}

	for i, roll := range rolls {
		values[i] = float64(roll)
		summary.Sum += roll
		summary.Min = min(summary.Min, roll)
		summary.Max = max(summary.Max, roll)
	}

	if len(values) < 2 {
		summary.Mean = values[0]
		return summary
	}

	summary.Mean, summary.StdDev = stat.MeanStdDev(values, nil)
	return summary
}
