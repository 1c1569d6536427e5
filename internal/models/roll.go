package models

import (
	"time"
)

// RollMode describes how the values of a roll were sampled
type RollMode string

const (
	// RollModeUniform means every value was drawn independently with equal odds per face
	RollModeUniform RollMode = "uniform"

	// RollModeBiased means the values were steered toward a target average
	RollModeBiased RollMode = "biased"
)

// Roll represents one request to roll a die one or more times
type Roll struct {
	// ID is the unique identifier for the roll
	ID string

	// Variant is the die that was rolled
	Variant string

	// Mode is how the values were sampled
	Mode RollMode

	// Values are the faces rolled, in order
	Values []int

	// Count is how many times the die was rolled
	Count int

	// Target is the requested average for biased rolls
	Target int

	// Sum is the total of Values
	Sum int

	// CreatedAt is when the roll was made
	CreatedAt time.Time
}
