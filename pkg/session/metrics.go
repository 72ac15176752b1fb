package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "uigen"

// Metrics holds the Prometheus collectors for session operations.
// A nil *Metrics records nothing.
type Metrics struct {
	createdTotal prometheus.Counter
	lookupsTotal *prometheus.CounterVec
	deletedTotal prometheus.Counter
}

// NewMetrics registers the session collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		createdTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "created_total",
			Help:      "Total number of sessions issued",
		}),
		lookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "lookups_total",
			Help:      "Total number of session lookups by result",
		}, []string{"result"}),
		deletedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "deleted_total",
			Help:      "Total number of sessions deleted",
		}),
	}
}

func (m *Metrics) created() {
	if m != nil {
		m.createdTotal.Inc()
	}
}

func (m *Metrics) lookup(o outcome) {
	if m != nil {
		m.lookupsTotal.WithLabelValues(string(o)).Inc()
	}
}

func (m *Metrics) deleted() {
	if m != nil {
		m.deletedTotal.Inc()
	}
}
