package dice

import (
	"math/rand"
	"sync"
	"time"
)

// Source provides uniformly distributed integers.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/polydice/internal/dice Source
type Source interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// lockedSource is a math/rand source that is safe for concurrent use
type lockedSource struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewSource creates a seeded source. A zero seed uses the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &lockedSource{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random value in [0, n)
func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Intn(n)
}
