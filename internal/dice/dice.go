package dice

import (
	"fmt"
)

// DefaultRoller provides dice rolling functionality
type DefaultRoller struct {
	source Source
}

// Config for dice roller
type Config struct {
	// Optional seed for testing, ignored when Source is set
	Seed int64

	// Optional source of randomness
	Source Source
}

// New creates a new dice roller
func New(cfg *Config) *DefaultRoller {
	var source Source
	if cfg != nil && cfg.Source != nil {
		source = cfg.Source
	} else {
		var seed int64
		if cfg != nil {
			seed = cfg.Seed
		}
		source = NewSource(seed)
	}

	return &DefaultRoller{
		source: source,
	}
}

// RollUniform draws a single face with every face equally likely
func (r *DefaultRoller) RollUniform(faces FaceSet) (int, error) {
	if faces.Len() == 0 {
		return 0, ErrInvalidState
	}

	return faces.at(r.source.Intn(faces.Len())), nil
}

// RollBiased rolls n times so that the sum converges toward target*n.
//
// Each roll except the last is drawn from a window of one either side of the
// value that would close the remaining gap evenly. The last roll takes whatever
// is left. Every roll is clamped to the faces, so the sum is approximate when
// the target cannot be reached.
//
// n == 0 returns an empty slice. A negative n returns ErrInvalidCount.
func (r *DefaultRoller) RollBiased(faces FaceSet, n, target int) ([]int, error) {
	if faces.Len() == 0 {
		return nil, ErrInvalidState
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	lo, hi := faces.Min(), faces.Max()
	goal := target * n

	rolls := make([]int, 0, n)
	sum := 0

	for i := 0; i < n; i++ {
		remaining := n - i
		needed := goal - sum

		var next int
		if remaining > 1 {
			ideal := floorDiv(needed, remaining)
			lower := max(lo, ideal-1)
			upper := min(hi, ideal+1)

			if lower > upper {
				// The whole window is past one edge of the die
				next = min(hi, max(lo, ideal))
			} else {
				next = lower + r.source.Intn(upper-lower+1)
			}
		} else {
			next = needed
		}

		next = faces.nearest(next)

		rolls = append(rolls, next)
		sum += next
	}

	return rolls, nil
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
