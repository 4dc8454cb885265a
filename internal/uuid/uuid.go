// Package uuid wraps id generation behind an interface so tests can pin ids.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique identifiers
type Generator interface {
	New() string
}

// GoogleGenerator implements Generator using google/uuid
type GoogleGenerator struct{}

// NewGoogleGenerator creates a new GoogleGenerator
func NewGoogleGenerator() *GoogleGenerator {
	return &GoogleGenerator{}
}

// New generates a new UUID string
func (g *GoogleGenerator) New() string {
	return uuid.New().String()
}

// FixedGenerator returns the same id every time, for tests
type FixedGenerator struct {
	ID string
}

// New returns the fixed id
func (g *FixedGenerator) New() string {
	return g.ID
}
