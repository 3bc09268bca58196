package form

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the wizard's metrics. It is separate from the default
// registry so a textfile dump only contains intake series.
var Registry = prometheus.NewRegistry()

var (
	// Transition metrics
	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Total number of wizard events by event and result",
		},
		[]string{"event", "result"},
	)

	// Validation metrics
	validationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intake",
			Name:      "validation_failures_total",
			Help:      "Total number of field validation failures by field",
		},
		[]string{"field"},
	)

	submissionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "intake",
			Name:      "submissions_total",
			Help:      "Total number of submitted service requests",
		},
	)
)

func init() {
	Registry.MustRegister(
		transitionsTotal,
		validationFailuresTotal,
		submissionsTotal,
	)
}

// recordTransitionMetric records the outcome of a wizard event.
func recordTransitionMetric(event Event, outcome Outcome) {
	transitionsTotal.WithLabelValues(string(event), string(outcome)).Inc()
}

// recordValidationFailuresMetric counts every failing field of errs.
func recordValidationFailuresMetric(errs ErrorMap) {
	for f := range errs {
		validationFailuresTotal.WithLabelValues(string(f)).Inc()
	}
}

func recordSubmissionMetric() {
	submissionsTotal.Inc()
}

// WriteMetrics writes the current metrics to path in the node-exporter
// textfile format.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
