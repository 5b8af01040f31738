package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	app "intake/internal/application/models"
)

// Step submission outcomes.
const (
	OutcomeAdvanced   = "advanced"
	OutcomeInvalid    = "invalid"
	OutcomeOutOfOrder = "out_of_order"
)

// Metrics provides observability for the wizard module.
type Metrics struct {
	SessionsStarted    prometheus.Counter
	SessionsExpired    prometheus.Counter
	ActiveSessions     prometheus.Gauge
	StepSubmissions    *prometheus.CounterVec
	FieldErrors        *prometheus.CounterVec
	AnalysisRequests   *prometheus.CounterVec
	RecordWrites       prometheus.Counter
	SubmitStepDuration prometheus.Histogram
}

// New registers the wizard metrics with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SessionsStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "intake_sessions_started_total",
			Help: "Total number of wizard sessions started",
		}),
		SessionsExpired: f.NewCounter(prometheus.CounterOpts{
			Name: "intake_sessions_expired_total",
			Help: "Total number of idle sessions removed by the janitor",
		}),
		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "intake_sessions_active",
			Help: "Sessions currently held in memory",
		}),
		StepSubmissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_step_submissions_total",
			Help: "Step submissions by step and outcome",
		}, []string{"step", "outcome"}),
		FieldErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_field_errors_total",
			Help: "Field validation errors reported by step",
		}, []string{"step"}),
		AnalysisRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_document_analysis_total",
			Help: "Document analysis requests by document kind and result",
		}, []string{"kind", "result"}),
		RecordWrites: f.NewCounter(prometheus.CounterOpts{
			Name: "intake_record_writes_total",
			Help: "Committed writes to application records across all sessions",
		}),
		SubmitStepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "intake_submit_step_duration_seconds",
			Help:    "Duration of step submissions including validation",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}
}

func (m *Metrics) IncrementSessionsStarted() {
	m.SessionsStarted.Inc()
	m.ActiveSessions.Inc()
}

// RecordExpired accounts for sessions removed by a sweep.
func (m *Metrics) RecordExpired(n int) {
	m.SessionsExpired.Add(float64(n))
	m.ActiveSessions.Sub(float64(n))
}

func (m *Metrics) RecordSubmission(step, outcome string, fieldErrors int) {
	m.StepSubmissions.WithLabelValues(step, outcome).Inc()
	if fieldErrors > 0 {
		m.FieldErrors.WithLabelValues(step).Add(float64(fieldErrors))
	}
}

// ObserveRecordWrite matches store.Listener so it can subscribe directly.
func (m *Metrics) ObserveRecordWrite(uint64, app.ApplicationRecord) {
	m.RecordWrites.Inc()
}

func (m *Metrics) RecordAnalysis(kind, result string) {
	m.AnalysisRequests.WithLabelValues(kind, result).Inc()
}

// ObserveSubmitStep records the duration of a submission.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSubmitStep(start time.Time) {
	m.SubmitStepDuration.Observe(time.Since(start).Seconds())
}
