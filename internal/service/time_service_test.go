package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelzcom/berlin-time-format-service/internal/clock"
	"github.com/samuelzcom/berlin-time-format-service/internal/domain"
	"github.com/samuelzcom/berlin-time-format-service/internal/metrics"
	"github.com/samuelzcom/berlin-time-format-service/internal/service"
	"github.com/samuelzcom/berlin-time-format-service/internal/validator"
)

func newTimeService(t *testing.T, now time.Time) *service.TimeService {
	t.Helper()
	loc, err := domain.LoadBerlin()
	require.NoError(t, err)
	return service.NewTimeService(clock.Fixed(now), loc, validator.NewValidator())
}

func TestTimeService_BerlinTime(t *testing.T) {
	ctx := context.Background()
	svc := newTimeService(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	t.Run("winter instant uses +01:00", func(t *testing.T) {
		result, err := svc.BerlinTime(ctx, "2024-01-15T10:00:00Z")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-15T10:00:00.000Z", result.ISOTime)
		assert.Equal(t, "2024-01-15T11:00:00+01:00", result.BerlinDateString)
	})

	t.Run("summer instant uses +02:00", func(t *testing.T) {
		result, err := svc.BerlinTime(ctx, "2024-07-15T10:00:00Z")

		require.NoError(t, err)
		assert.Equal(t, "2024-07-15T10:00:00.000Z", result.ISOTime)
		assert.Equal(t, "2024-07-15T12:00:00+02:00", result.BerlinDateString)
	})

	t.Run("offset input is normalized to utc", func(t *testing.T) {
		result, err := svc.BerlinTime(ctx, "2024-07-15T05:30:00-04:30")

		require.NoError(t, err)
		assert.Equal(t, "2024-07-15T10:00:00.000Z", result.ISOTime)
		assert.Equal(t, "2024-07-15T12:00:00+02:00", result.BerlinDateString)
	})

	t.Run("same input yields same output", func(t *testing.T) {
		first, err := svc.BerlinTime(ctx, "2024-03-31T01:00:00Z")
		require.NoError(t, err)
		second, err := svc.BerlinTime(ctx, "2024-03-31T01:00:00Z")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unparseable input returns ErrInvalidDateFormat", func(t *testing.T) {
		initial := testutil.ToFloat64(metrics.ConversionsTotal.WithLabelValues(metrics.ResultInvalid))

		result, err := svc.BerlinTime(ctx, "not-a-date")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
		assert.Equal(t, initial+1, testutil.ToFloat64(metrics.ConversionsTotal.WithLabelValues(metrics.ResultInvalid)))
	})

	t.Run("instant past year 9999 in berlin is rejected", func(t *testing.T) {
		result, err := svc.BerlinTime(ctx, "9999-12-31T23:30:00Z")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
	})

	t.Run("instant outside year 9999 in utc is rejected", func(t *testing.T) {
		result, err := svc.BerlinTime(ctx, "9999-12-31T23:59:59-01:00")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
	})

	t.Run("empty input returns ErrEmptyDateTime", func(t *testing.T) {
		result, err := svc.BerlinTime(ctx, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrEmptyDateTime)
	})

	t.Run("successful conversion is counted", func(t *testing.T) {
		initial := testutil.ToFloat64(metrics.ConversionsTotal.WithLabelValues(metrics.ResultOK))

		_, err := svc.BerlinTime(ctx, "2024-07-15")
		require.NoError(t, err)

		assert.Equal(t, initial+1, testutil.ToFloat64(metrics.ConversionsTotal.WithLabelValues(metrics.ResultOK)))
	})
}

func TestTimeService_DefaultDateTime(t *testing.T) {
	now := time.Date(2024, 7, 15, 10, 0, 0, 987654321, time.UTC)
	svc := newTimeService(t, now)

	assert.Equal(t, "2024-07-15T10:00:00.987Z", svc.DefaultDateTime())

	result, err := svc.BerlinTime(context.Background(), svc.DefaultDateTime())
	require.NoError(t, err)
	assert.Equal(t, "2024-07-15T10:00:00.987Z", result.ISOTime)
	assert.Equal(t, "2024-07-15T12:00:00+02:00", result.BerlinDateString)
}

func TestTimeService_DefaultDateTime_NonUTCClock(t *testing.T) {
	loc, err := domain.LoadBerlin()
	require.NoError(t, err)
	svc := newTimeService(t, time.Date(2024, 1, 15, 11, 0, 0, 0, loc))

	assert.Equal(t, "2024-01-15T10:00:00.000Z", svc.DefaultDateTime())
}
