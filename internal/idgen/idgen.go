// Package idgen generates random identifiers.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces a new random identifier per call.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator produces RFC 4122 version 4 UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a hyphenated random UUID, e.g. 550e8400-e29b-41d4-a716-446655440000.
func (g *UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return id.String(), nil
}
