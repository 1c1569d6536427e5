package roll

import (
	"github.com/go-kit/log"

	"github.com/KirkDiggler/polydice/internal/common/clock"
	"github.com/KirkDiggler/polydice/internal/common/uuid"
	"github.com/KirkDiggler/polydice/internal/dice"
	"github.com/KirkDiggler/polydice/internal/models"
)

// Config holds configuration for the roll service
type Config struct {
	// Registry holds the dice that can be rolled
	Registry *dice.Registry

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional logger, defaults to a no-op logger
	Logger log.Logger
}

// ListDiceInput contains parameters for listing dice
type ListDiceInput struct{}

// ListDiceOutput contains the registered dice
type ListDiceOutput struct {
	Dice []*models.Die
}

// RollUniformInput contains parameters for a uniform roll
type RollUniformInput struct {
	// Variant is the die to roll
	Variant dice.Variant

	// Count is the number of independent rolls, defaults to 1
	Count int
}

// RollUniformOutput contains the result of a uniform roll
type RollUniformOutput struct {
	Roll    *models.Roll
	Summary dice.Summary
}

// RollBiasedInput contains parameters for a biased roll
type RollBiasedInput struct {
	// Variant is the die to roll
	Variant dice.Variant

	// Count is the number of rolls in the sequence
	Count int

	// Target is the average the sequence should converge on
	Target int
}

// RollBiasedOutput contains the result of a biased roll
type RollBiasedOutput struct {
	Roll    *models.Roll
	Summary dice.Summary
}
