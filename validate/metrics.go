package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// validationsTotal counts calls to Validate.
	//
	// Labels:
	//   - can_validate_type: "true" if the value implements HasValidate or
	//     HasValidateWithContext, "false" if validation was skipped.
	//   - has_error: "true" if validation returned an error.
	//
	// The nolint:gochecknoglobals directive is used because Prometheus metrics
	// are intentionally global: registered once, used for the whole process.
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "validation_calls_total",
		Help: "The total number of calls to Validate",
	}, []string{"can_validate_type", "has_error"})

	// validationTime tracks validation duration in milliseconds, labeled by
	// the Go type being validated and whether it failed. Buckets range from
	// trivially fast field checks to validations that reach out to external
	// resources.
	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "validation_time_millis",
		Help: "The time it takes to validate, in milliseconds",
		Buckets: []float64{
			1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000,
		},
	}, []string{"type", "has_error"})
)

// init pre-seeds the counter with every label combination so rate queries
// see a consistent time series from process start.
func init() {
	validationsTotal.WithLabelValues("true", "true").Add(0)
	validationsTotal.WithLabelValues("false", "true").Add(0)
	validationsTotal.WithLabelValues("true", "false").Add(0)
	validationsTotal.WithLabelValues("false", "false").Add(0)
}
