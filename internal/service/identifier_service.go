package service

import (
	"context"
	"fmt"

	"github.com/samuelzcom/berlin-time-format-service/internal/idgen"
	"github.com/samuelzcom/berlin-time-format-service/internal/metrics"
)

// IdentifierService hands out random identifiers.
type IdentifierService struct {
	generator idgen.Generator
}

// NewIdentifierService creates a new IdentifierService.
func NewIdentifierService(generator idgen.Generator) *IdentifierService {
	return &IdentifierService{generator: generator}
}

// NewIdentifier returns a new identifier from the configured generator.
func (s *IdentifierService) NewIdentifier(_ context.Context) (string, error) {
	id, err := s.generator.NewID()
	metrics.ObserveIdentifier(err)
	if err != nil {
		return "", fmt.Errorf("new identifier: %w", err)
	}
	return id, nil
}
