package domain

import "errors"

var (
	// ErrInvalidDateFormat is returned when a datetime value cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrEmptyDateTime is returned when no datetime value is available at all.
	ErrEmptyDateTime = errors.New("datetime is empty")
)
