package roll

import "context"

// Service defines the interface for rolling registered dice
//
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/polydice/internal/services/roll Service
type Service interface {
	// ListDice returns every die that can be rolled
	ListDice(ctx context.Context, input *ListDiceInput) (*ListDiceOutput, error)

	// RollUniform rolls a die one or more times with every face equally likely
	RollUniform(ctx context.Context, input *RollUniformInput) (*RollUniformOutput, error)

	// RollBiased rolls a die so the average of the rolls converges on a target
	RollBiased(ctx context.Context, input *RollBiasedInput) (*RollBiasedOutput, error)
}
