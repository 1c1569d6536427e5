package dice

import (
	"fmt"
	"sort"
)

// Variant identifies a die by its face set
type Variant string

const (
	// D4 is a four-sided die
	D4 Variant = "d4"

	// D6 is a six-sided die
	D6 Variant = "d6"

	// D8 is an eight-sided die
	D8 Variant = "d8"

	// D10 is a ten-sided die
	D10 Variant = "d10"

	// D12 is a twelve-sided die
	D12 Variant = "d12"

	// D20 is a twenty-sided die
	D20 Variant = "d20"

	// D10NoOne is a ten-sided die that never shows 1
	D10NoOne Variant = "d10-no-1"
)

// String returns the variant name
func (v Variant) String() string {
	return string(v)
}

// FaceSet is the ordered set of values a die can show.
// The zero value is an empty face set.
type FaceSet struct {
	values []int

	// sorted holds the same values in ascending order for nearest-face lookups
	sorted []int
}

// NewFaceSet creates a face set from the given values, keeping their order.
// Values must be positive and distinct, and at least one must be given.
func NewFaceSet(values ...int) (FaceSet, error) {
	if len(values) == 0 {
		return FaceSet{}, fmt.Errorf("%w: face set is empty", ErrConfiguration)
	}

	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		if v <= 0 {
			return FaceSet{}, fmt.Errorf("%w: face %d is not positive", ErrConfiguration, v)
		}
		if _, ok := seen[v]; ok {
			return FaceSet{}, fmt.Errorf("%w: face %d is repeated", ErrConfiguration, v)
		}
		seen[v] = struct{}{}
	}

	ordered := make([]int, len(values))
	copy(ordered, values)

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	return FaceSet{
		values: ordered,
		sorted: sorted,
	}, nil
}

// Range returns the contiguous values from lo to hi inclusive
func Range(lo, hi int) []int {
	if hi < lo {
		return []int{}
	}

	values := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, v)
	}
	return values
}

// Len returns the number of faces
func (f FaceSet) Len() int {
	return len(f.values)
}

// Min returns the lowest face, or 0 for an empty face set
func (f FaceSet) Min() int {
	if len(f.sorted) == 0 {
		return 0
	}
	return f.sorted[0]
}

// Max returns the highest face, or 0 for an empty face set
func (f FaceSet) Max() int {
	if len(f.sorted) == 0 {
		return 0
	}
	return f.sorted[len(f.sorted)-1]
}

// Values returns a copy of the faces in definition order
func (f FaceSet) Values() []int {
	values := make([]int, len(f.values))
	copy(values, f.values)
	return values
}

// Contains reports whether v is one of the faces
func (f FaceSet) Contains(v int) bool {
	i := sort.SearchInts(f.sorted, v)
	return i < len(f.sorted) && f.sorted[i] == v
}

// at returns the face at index i in definition order
func (f FaceSet) at(i int) int {
	return f.values[i]
}

// nearest clamps v into [Min, Max] and returns the closest face.
// Ties resolve to the lower face. Must not be called on an empty face set.
func (f FaceSet) nearest(v int) int {
	lo, hi := f.Min(), f.Max()
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}

	i := sort.SearchInts(f.sorted, v)
	if f.sorted[i] == v {
		return v
	}

	// sorted[i-1] < v < sorted[i]
	below, above := f.sorted[i-1], f.sorted[i]
	if v-below <= above-v {
		return below
	}
	return above
}

// Die is a named face set
type Die struct {
	// Variant identifies the die
	Variant Variant

	// Faces are the values the die can show
	Faces FaceSet
}

// NewDie creates a die, validating its faces
func NewDie(variant Variant, values ...int) (Die, error) {
	if variant == "" {
		return Die{}, fmt.Errorf("%w: variant name is empty", ErrConfiguration)
	}

	faces, err := NewFaceSet(values...)
	if err != nil {
		return Die{}, fmt.Errorf("die %s: %w", variant, err)
	}

	return Die{
		Variant: variant,
		Faces:   faces,
	}, nil
}
