package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Import outcome labels.
const (
	OutcomeImported = "imported"
	OutcomeRejected = "rejected"

	StatusSuccess  = "success"
	StatusRejected = "rejected"
	StatusError    = "error"
)

// ImportMetrics counts bulk imports and the rows they carried.
type ImportMetrics struct {
	rows    *prometheus.CounterVec
	imports *prometheus.CounterVec
}

// NewImportMetrics registers the import counters on reg.
func NewImportMetrics(reg prometheus.Registerer) (*ImportMetrics, error) {
	m := &ImportMetrics{
		rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "student_import_rows_total",
				Help: "Rows processed by bulk imports, by outcome.",
			},
			[]string{"outcome"},
		),
		imports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "student_imports_total",
				Help: "Bulk import requests, by final status.",
			},
			[]string{"status"},
		),
	}

	for _, c := range []prometheus.Collector{m.rows, m.imports} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveSuccess records an import that persisted at least one row.
func (m *ImportMetrics) ObserveSuccess(imported, rejected int) {
	m.rows.WithLabelValues(OutcomeImported).Add(float64(imported))
	m.rows.WithLabelValues(OutcomeRejected).Add(float64(rejected))
	m.imports.WithLabelValues(StatusSuccess).Inc()
}

// ObserveRejected records an import refused because of its content (empty, malformed or no valid rows).
func (m *ImportMetrics) ObserveRejected(rejected int) {
	m.rows.WithLabelValues(OutcomeRejected).Add(float64(rejected))
	m.imports.WithLabelValues(StatusRejected).Inc()
}

// ObserveError records an import that failed for infrastructure reasons.
func (m *ImportMetrics) ObserveError() {
	m.imports.WithLabelValues(StatusError).Inc()
}
