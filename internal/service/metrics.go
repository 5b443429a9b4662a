package service

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for gradescan_uploads_total.
const (
	outcomeScored   = "scored"
	outcomeRejected = "rejected"
)

// Metrics counts pipeline outcomes by kind.
type Metrics struct {
	uploads *prometheus.CounterVec
}

// NewMetrics registers the pipeline counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gradescan_uploads_total",
				Help: "Answer sheet uploads processed, by outcome and failure kind.",
			},
			[]string{"outcome", "kind"},
		),
	}
	if err := reg.Register(m.uploads); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(err error) {
	if m == nil {
		return
	}
	if err == nil {
		m.uploads.WithLabelValues(outcomeScored, "").Inc()
		return
	}
	m.uploads.WithLabelValues(outcomeRejected, KindOf(err).String()).Inc()
}
