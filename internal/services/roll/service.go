package roll

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/KirkDiggler/polydice/internal/common/clock"
	"github.com/KirkDiggler/polydice/internal/common/uuid"
	"github.com/KirkDiggler/polydice/internal/dice"
	"github.com/KirkDiggler/polydice/internal/models"
)

// service implements the Service interface
type service struct {
	registry      *dice.Registry
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        log.Logger
}

// New creates a new roll service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &service{
		registry:      cfg.Registry,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        log.With(logger, "component", "roll"),
	}, nil
}

// ListDice returns every registered die
func (s *service) ListDice(ctx context.Context, input *ListDiceInput) (*ListDiceOutput, error) {
	variants := s.registry.Variants()
	out := make([]*models.Die, 0, len(variants))

	for _, variant := range variants {
		die, err := s.registry.Die(variant)
		if err != nil {
			return nil, err
		}

		out = append(out, &models.Die{
			Variant: die.Variant.String(),
			Faces:   die.Faces.Values(),
			Min:     die.Faces.Min(),
			Max:     die.Faces.Max(),
		})
	}

	return &ListDiceOutput{
		Dice: out,
	}, nil
}

// RollUniform rolls a die Count times, each roll independent
func (s *service) RollUniform(ctx context.Context, input *RollUniformInput) (*RollUniformOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	count := input.Count
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", dice.ErrInvalidCount, count)
	}

	faces, err := s.registry.FaceSetFor(input.Variant)
	if err != nil {
		level.Error(s.logger).Log("msg", "failed to look up die", "variant", input.Variant, "err", err)
		return nil, err
	}

	values := make([]int, 0, count)
	for i := 0; i < count; i++ {
		value, err := s.diceRoller.RollUniform(faces)
		if err != nil {
			level.Error(s.logger).Log("msg", "failed to roll", "variant", input.Variant, "mode", models.RollModeUniform, "err", err)
			return nil, fmt.Errorf("failed to roll %s: %w", input.Variant, err)
		}
		values = append(values, value)
	}

	roll, summary := s.record(input.Variant, models.RollModeUniform, values, 0)

	return &RollUniformOutput{
		Roll:    roll,
		Summary: summary,
	}, nil
}

// RollBiased rolls a die Count times, steering the rolls toward Target on average
func (s *service) RollBiased(ctx context.Context, input *RollBiasedInput) (*RollBiasedOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	faces, err := s.registry.FaceSetFor(input.Variant)
	if err != nil {
		level.Error(s.logger).Log("msg", "failed to look up die", "variant", input.Variant, "err", err)
		return nil, err
	}

	values, err := s.diceRoller.RollBiased(faces, input.Count, input.Target)
	if err != nil {
		level.Error(s.logger).Log("msg", "failed to roll", "variant", input.Variant, "mode", models.RollModeBiased, "err", err)
		return nil, fmt.Errorf("failed to roll %s: %w", input.Variant, err)
	}

	roll, summary := s.record(input.Variant, models.RollModeBiased, values, input.Target)

	if summary.Sum != input.Target*input.Count {
		level.Debug(s.logger).Log("msg", "biased roll missed target sum", "roll_id", roll.ID, "want", input.Target*input.Count, "got", summary.Sum)
	}

	return &RollBiasedOutput{
		Roll:    roll,
		Summary: summary,
	}, nil
}

// record stamps the rolled values with an ID and time
func (s *service) record(variant dice.Variant, mode models.RollMode, values []int, target int) (*models.Roll, dice.Summary) {
	summary := dice.Summarize(values)

	roll := &models.Roll{
		ID:        s.uuidGenerator.NewUUID(),
		Variant:   variant.String(),
		Mode:      mode,
		Values:    values,
		Count:     len(values),
		Target:    target,
		Sum:       summary.Sum,
		CreatedAt: s.clock.Now(),
	}

	level.Debug(s.logger).Log("msg", "rolled", "roll_id", roll.ID, "variant", roll.Variant, "mode", roll.Mode, "count", roll.Count, "sum", roll.Sum)

	return roll, summary
}
