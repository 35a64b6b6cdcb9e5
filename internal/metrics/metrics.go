// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, time conversions, and identifier generation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "berlin_time_service"
)

// Conversion results.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	HTTPPanicsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "panics_recovered_total",
			Help:      "Total number of panics recovered while handling requests",
		},
	)

	// Conversion metrics - track berlin-time conversions
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "conversions",
			Name:      "total",
			Help:      "Total number of Europe/Berlin conversions by result",
		},
		[]string{"result"},
	)

	ConversionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "conversions",
			Name:      "duration_seconds",
			Help:      "Time spent parsing and converting a timestamp",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005},
		},
	)

	ConversionOffset = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "conversions",
			Name:      "offset_seconds",
			Help:      "UTC offset applied by successful conversions",
			Buckets:   []float64{3600, 7200},
		},
	)

	// Identifier metrics - track /api/random
	IdentifiersGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "identifiers",
			Name:      "generated_total",
			Help:      "Total number of random identifiers generated by result",
		},
		[]string{"result"},
	)

	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build information; the value is always 1",
		},
		[]string{"version", "commit"},
	)
)

// ObserveConversion records the outcome of a berlin-time conversion.
// offset is only recorded for successful conversions.
func ObserveConversion(result string, offset time.Duration) {
	ConversionsTotal.WithLabelValues(result).Inc()
	if result == ResultOK {
		ConversionOffset.Observe(offset.Seconds())
	}
}

// ObserveIdentifier records the outcome of an identifier generation.
func ObserveIdentifier(err error) {
	if err != nil {
		IdentifiersGenerated.WithLabelValues(ResultError).Inc()
		return
	}
	IdentifiersGenerated.WithLabelValues(ResultOK).Inc()
}

// SetBuildInfo publishes the running version.
func SetBuildInfo(version, commit string) {
	BuildInfo.WithLabelValues(version, commit).Set(1)
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}
