// Package metrics holds the domain counters of the intake pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Intake counts what happens to submissions, signups and language changes.
// A nil *Intake is valid and records nothing.
type Intake struct {
	submitted       prometheus.Counter
	rejected        *prometheus.CounterVec
	signups         *prometheus.CounterVec
	languageChanges *prometheus.CounterVec
	uploadBytes     prometheus.Histogram
}

// NewIntake creates the counters and registers them on reg.
func NewIntake(reg prometheus.Registerer) (*Intake, error) {
	m := &Intake{
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "careers",
			Name:      "applications_submitted_total",
			Help:      "Applications accepted.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careers",
			Name:      "applications_rejected_total",
			Help:      "Applications rejected, by reason.",
		}, []string{"reason"}),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careers",
			Name:      "signups_total",
			Help:      "Signup attempts, by result.",
		}, []string{"result"}),
		languageChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careers",
			Name:      "language_changes_total",
			Help:      "Accepted language changes, by target language.",
		}, []string{"lang"}),
		uploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "careers",
			Name:      "cv_upload_bytes",
			Help:      "Size of accepted CV files.",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 6),
		}),
	}

	for _, c := range []prometheus.Collector{m.submitted, m.rejected, m.signups, m.languageChanges, m.uploadBytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Submitted records one accepted application with a CV of size bytes.
func (m *Intake) Submitted(size int64) {
	if m == nil {
		return
	}
	m.submitted.Inc()
	m.uploadBytes.Observe(float64(size))
}

// Rejected records an application refused for reason.
func (m *Intake) Rejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

// Signup records a signup attempt outcome.
func (m *Intake) Signup(result string) {
	if m == nil {
		return
	}
	m.signups.WithLabelValues(result).Inc()
}

// LanguageChanged records an accepted switch to code.
func (m *Intake) LanguageChanged(code string) {
	if m == nil {
		return
	}
	m.languageChanges.WithLabelValues(code).Inc()
}
