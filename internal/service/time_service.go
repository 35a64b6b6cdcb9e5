package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samuelzcom/berlin-time-format-service/internal/clock"
	"github.com/samuelzcom/berlin-time-format-service/internal/domain"
	"github.com/samuelzcom/berlin-time-format-service/internal/logger"
	"github.com/samuelzcom/berlin-time-format-service/internal/metrics"
	"github.com/samuelzcom/berlin-time-format-service/internal/validator"
)

// TimeService converts instants into Europe/Berlin local time.
type TimeService struct {
	clock     clock.Clock
	location  *time.Location
	validator *validator.Validator
}

// NewTimeService creates a new TimeService. location is normally the result
// of domain.LoadBerlin.
func NewTimeService(c clock.Clock, location *time.Location, v *validator.Validator) *TimeService {
	return &TimeService{
		clock:     c,
		location:  location,
		validator: v,
	}
}

// DefaultDateTime returns the clock's current instant in ISO-8601 UTC form.
func (s *TimeService) DefaultDateTime() string {
	return domain.FormatISOTime(s.clock.Now())
}

// BerlinTime validates raw, then renders the instant it denotes.
// Errors wrap domain.ErrEmptyDateTime or domain.ErrInvalidDateFormat.
func (s *TimeService) BerlinTime(ctx context.Context, raw string) (*domain.BerlinTimeResult, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.ConversionDuration)

	query := domain.BerlinTimeQuery{DateTime: raw}
	if err := s.validator.ValidateBerlinTimeQuery(&query); err != nil {
		domainErr := validator.ToDomainError(err)
		if errors.Is(domainErr, domain.ErrEmptyDateTime) {
			metrics.ObserveConversion(metrics.ResultError, 0)
		} else {
			metrics.ObserveConversion(metrics.ResultInvalid, 0)
		}
		logger.DebugContext(ctx, "Rejected datetime",
			slog.String("datetime", raw),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("validate datetime %q: %w", raw, domainErr)
	}

	instant := query.Instant
	if !domain.Representable(instant.In(s.location)) {
		metrics.ObserveConversion(metrics.ResultInvalid, 0)
		return nil, fmt.Errorf("datetime %q out of range in %s: %w", raw, s.location, domain.ErrInvalidDateFormat)
	}

	result := domain.NewBerlinTimeResult(instant, s.location)
	metrics.ObserveConversion(metrics.ResultOK, domain.UTCOffset(instant, s.location))

	return result, nil
}
