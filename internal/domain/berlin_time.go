package domain

import (
	"strings"
	"time"
)

const (
	// ISOTimeLayout renders an instant in UTC with millisecond precision.
	ISOTimeLayout = "2006-01-02T15:04:05.000Z"

	// BerlinDateLayout renders wall-clock time followed by the signed UTC offset.
	BerlinDateLayout = "2006-01-02T15:04:05-07:00"

	// berlinDateLayoutSeconds is used for offsets that are not whole minutes,
	// such as the local mean time Berlin kept before April 1893.
	berlinDateLayoutSeconds = "2006-01-02T15:04:05-07:00:00"

	minYear = 0
	maxYear = 9999
)

// Accepted input layouts, tried in order. Layouts without a zone designator
// are interpreted as UTC by time.Parse. Fractional seconds are accepted after
// the seconds field even though the layouts do not spell them out.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// BerlinTimeQuery holds the raw query input of the berlin-time endpoint.
type BerlinTimeQuery struct {
	DateTime string `json:"datetime"`

	// Instant is filled in once DateTime has been validated.
	Instant time.Time `json:"-"`
}

// BerlinTimeResult is an instant rendered both in UTC and in Europe/Berlin local time.
type BerlinTimeResult struct {
	ISOTime          string `json:"isoTime"`
	BerlinDateString string `json:"berlinDateString"`
}

// ParseInstant parses an ISO-8601 timestamp. A space may stand in for the
// date/time separator. The instant must fall within years 0000-9999 in UTC.
func ParseInstant(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, ErrEmptyDateTime
	}
	if len(value) > 10 && value[10] == ' ' {
		value = value[:10] + "T" + value[11:]
	}
	// time.Parse accepts a single-digit hour.
	if len(value) > 10 && (len(value) < 13 || !isDigit(value[11]) || !isDigit(value[12])) {
		return time.Time{}, ErrInvalidDateFormat
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			if !Representable(t.UTC()) {
				return time.Time{}, ErrInvalidDateFormat
			}
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}

// Representable reports whether t's year, in t's own location, fits the
// four-digit year of the output layouts.
func Representable(t time.Time) bool {
	year := t.Year()
	return year >= minYear && year <= maxYear
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// FormatISOTime returns the instant in UTC, e.g. 2024-01-15T10:00:00.000Z.
func FormatISOTime(t time.Time) string {
	return t.UTC().Format(ISOTimeLayout)
}

// FormatBerlinDate returns the wall-clock time at loc with its UTC offset,
// e.g. 2024-01-15T11:00:00+01:00. An offset with a seconds component is
// written as ±HH:MM:SS so the string still denotes the same instant.
func FormatBerlinDate(t time.Time, loc *time.Location) string {
	local := t.In(loc)
	if _, offset := local.Zone(); offset%60 != 0 {
		return local.Format(berlinDateLayoutSeconds)
	}
	return local.Format(BerlinDateLayout)
}

// NewBerlinTimeResult renders t for the response.
func NewBerlinTimeResult(t time.Time, loc *time.Location) *BerlinTimeResult {
	return &BerlinTimeResult{
		ISOTime:          FormatISOTime(t),
		BerlinDateString: FormatBerlinDate(t, loc),
	}
}

// UTCOffset returns the offset from UTC observed at loc for the instant t.
func UTCOffset(t time.Time, loc *time.Location) time.Duration {
	_, offset := t.In(loc).Zone()
	return time.Duration(offset) * time.Second
}
