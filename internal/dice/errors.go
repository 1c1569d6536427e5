package dice

// DiceError is a custom error type for dice-related errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrConfiguration is returned when a die is defined without a usable face set
	ErrConfiguration DiceError = "die is not configured"

	// ErrInvalidState is returned when rolling against an empty face set
	ErrInvalidState DiceError = "cannot roll an empty face set"

	// ErrInvalidCount is returned when a negative number of rolls is requested
	ErrInvalidCount DiceError = "roll count cannot be negative"

	// ErrUnknownVariant is returned when a variant name cannot be parsed
	ErrUnknownVariant DiceError = "unknown die variant"
)
