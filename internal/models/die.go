package models

// Die describes a die available for rolling
type Die struct {
	// Variant is the die name, e.g. "d20"
	Variant string

	// Faces are the values the die can show
	Faces []int

	// Min is the lowest face
	Min int

	// Max is the highest face
	Max int
}
