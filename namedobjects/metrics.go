package namedobjects

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// checksTotal counts named-object-sequence validations.
//
// Labels:
//   - shape: the detected candidate shape ("map", "sequence" or "invalid")
//     for candidates that are neither.
//   - conforming: "true" if the candidate passed validation.
//
// The nolint:gochecknoglobals directive is used because Prometheus metrics
// are intentionally global: registered once, used for the whole process.
var checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "named_object_checks_total",
	Help: "The total number of named object sequence validations",
}, []string{"shape", "conforming"})

// init pre-seeds the counter with every label combination so rate queries
// see a consistent time series from process start. The ("invalid", "true")
// combination never occurs in practice but is seeded for completeness.
func init() {
	for _, shape := range []string{shapeMap, shapeSequence, shapeInvalid} {
		for _, conforming := range []string{"true", "false"} {
			checksTotal.WithLabelValues(shape, conforming).Add(0)
		}
	}
}
