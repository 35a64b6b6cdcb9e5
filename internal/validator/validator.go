package validator

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/samuelzcom/berlin-time-format-service/internal/domain"
)

const (
	codeInvalidDateFormat = "invalid_date_format"
	fieldDateTime         = "datetime"
)

// Validator provides validation methods for request inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateBerlinTimeQuery validates the datetime parameter of a berlin-time
// request. On success q.Instant holds the parsed instant.
func (v *Validator) ValidateBerlinTimeQuery(q *domain.BerlinTimeQuery) error {
	return validation.ValidateStruct(q,
		validation.Field(&q.DateTime,
			validation.Required.Error("datetime_required"),
			validation.By(func(value interface{}) error {
				instant, err := parseTimestamp(value)
				if err != nil {
					return err
				}
				q.Instant = instant
				return nil
			}),
		),
	)
}

// parseTimestamp accepts any value domain.ParseInstant can read.
func parseTimestamp(value interface{}) (time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, validation.NewError(codeInvalidDateFormat, "must be a string")
	}
	instant, err := domain.ParseInstant(s)
	if err != nil {
		return time.Time{}, validation.NewError(codeInvalidDateFormat, "Invalid date format")
	}
	return instant, nil
}

// ToDomainError maps a validation failure of a BerlinTimeQuery onto the
// domain sentinel errors. A missing value maps to domain.ErrEmptyDateTime,
// everything else to domain.ErrInvalidDateFormat.
func ToDomainError(err error) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		var ve validation.Error
		if errors.As(errs[fieldDateTime], &ve) && ve.Code() == validation.ErrRequired.Code() {
			return domain.ErrEmptyDateTime
		}
	}
	return domain.ErrInvalidDateFormat
}
