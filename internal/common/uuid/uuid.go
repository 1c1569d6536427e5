package uuid

import "github.com/google/uuid"

// UUID generates identifiers for rolls
//
//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/polydice/internal/common/uuid UUID
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
