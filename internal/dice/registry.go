package dice

import (
	"fmt"
	"strings"
)

// Definition declares the faces of a die variant
type Definition struct {
	Variant Variant
	Faces   []int
}

// RegistryConfig holds the die definitions for a registry
type RegistryConfig struct {
	// Definitions are registered in order
	Definitions []Definition
}

// StandardDefinitions returns the polyhedral dice every registry starts from by default
func StandardDefinitions() []Definition {
	return []Definition{
		{Variant: D4, Faces: Range(1, 4)},
		{Variant: D6, Faces: Range(1, 6)},
		{Variant: D8, Faces: Range(1, 8)},
		{Variant: D10, Faces: Range(1, 10)},
		{Variant: D12, Faces: Range(1, 12)},
		{Variant: D20, Faces: Range(1, 20)},
		{Variant: D10NoOne, Faces: Range(2, 10)},
	}
}

// Registry exposes named, pre-defined dice. It is read-only after construction.
type Registry struct {
	dice  map[Variant]Die
	order []Variant
}

var defaultRegistry = mustNewRegistry(&RegistryConfig{
	Definitions: StandardDefinitions(),
})

// DefaultRegistry returns the registry of standard dice
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry creates a registry, validating every definition
func NewRegistry(cfg *RegistryConfig) (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: registry config cannot be nil", ErrConfiguration)
	}

	if len(cfg.Definitions) == 0 {
		return nil, fmt.Errorf("%w: registry has no dice", ErrConfiguration)
	}

	registry := &Registry{
		dice:  make(map[Variant]Die, len(cfg.Definitions)),
		order: make([]Variant, 0, len(cfg.Definitions)),
	}

	for _, def := range cfg.Definitions {
		if _, exists := registry.dice[def.Variant]; exists {
			return nil, fmt.Errorf("%w: die %s is defined twice", ErrConfiguration, def.Variant)
		}

		die, err := NewDie(def.Variant, def.Faces...)
		if err != nil {
			return nil, err
		}

		registry.dice[def.Variant] = die
		registry.order = append(registry.order, def.Variant)
	}

	return registry, nil
}

func mustNewRegistry(cfg *RegistryConfig) *Registry {
	registry, err := NewRegistry(cfg)
	if err != nil {
		panic("dice: " + err.Error())
	}
	return registry
}

// Die returns the die registered for a variant
func (r *Registry) Die(variant Variant) (Die, error) {
	die, ok := r.dice[variant]
	if !ok {
		return Die{}, fmt.Errorf("%w: die %s is not defined", ErrConfiguration, variant)
	}
	return die, nil
}

// FaceSetFor returns the faces of a registered variant
func (r *Registry) FaceSetFor(variant Variant) (FaceSet, error) {
	die, err := r.Die(variant)
	if err != nil {
		return FaceSet{}, err
	}
	return die.Faces, nil
}

// Variants returns the registered variants in definition order
func (r *Registry) Variants() []Variant {
	variants := make([]Variant, len(r.order))
	copy(variants, r.order)
	return variants
}

// ParseVariant maps user input such as "d20", "20" or "10-no-1" to a Variant
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownVariant)
	}

	if !strings.HasPrefix(name, "d") {
		name = "d" + name
	}

	switch name {
	case "d10-no-1", "d10no1", "d10-no1", "d10_no_1":
		return D10NoOne, nil
	}

	switch v := Variant(name); v {
	case D4, D6, D8, D10, D12, D20:
		return v, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}
