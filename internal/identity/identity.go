// Package identity provides injectable entity-id generation so that id
// assignment stays deterministic and testable.
package identity

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique entity ids. Uniqueness is the only
// guaranteed property; callers must not rely on ordering.
type Generator interface {
	NewID() string
}

// UUID generates random UUIDv4 ids. This is the production generator.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Sequence generates "<prefix>-1", "<prefix>-2", ... ids. Meant for
// tests that need stable, readable identities.
type Sequence struct {
	Prefix string
	n      int
}

func (s *Sequence) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n)
}
