package service

import (
	"context"

	"github.com/samuelzcom/berlin-time-format-service/internal/domain"
)

// TimeServiceInterface defines the interface for Europe/Berlin conversions.
// Used for dependency injection and mocking in tests.
type TimeServiceInterface interface {
	// DefaultDateTime returns the current instant formatted as an ISO-8601 UTC string.
	DefaultDateTime() string
	// BerlinTime parses raw and renders it in UTC and in Europe/Berlin local time.
	BerlinTime(ctx context.Context, raw string) (*domain.BerlinTimeResult, error)
}

// IdentifierServiceInterface defines the interface for random identifier generation.
// Used for dependency injection and mocking in tests.
type IdentifierServiceInterface interface {
	// NewIdentifier returns a freshly generated random identifier.
	NewIdentifier(ctx context.Context) (string, error)
}
