package roll

// RollError is a custom error type for roll service errors
type RollError string

// Error implements the error interface
func (e RollError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        RollError = "config cannot be nil"
	ErrNilRegistry      RollError = "dice registry cannot be nil"
	ErrNilDiceRoller    RollError = "dice roller cannot be nil"
	ErrNilClock         RollError = "clock cannot be nil"
	ErrNilUUIDGenerator RollError = "UUID generator cannot be nil"
	ErrNilInput         RollError = "input cannot be nil"
)
