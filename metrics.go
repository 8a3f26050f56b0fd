package precrime

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/StreamDefi/precrime/types"
)

// Result labels of the simulations_total counter.
const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultInvalid  = "invalid"
	resultAborted  = "aborted"
)

// Metrics holds the simulator metrics. A nil *Metrics records nothing.
type Metrics struct {
	SimulationsTotal *prometheus.CounterVec
	PacketsTotal     *prometheus.CounterVec
	Duration         prometheus.Histogram
	PreCrimeUpdates  prometheus.Counter
}

// NewMetrics creates simulator metrics registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SimulationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "precrime",
			Subsystem: "simulator",
			Name:      "simulations_total",
			Help:      "Total number of simulation requests by result",
		}, []string{"result"}),

		PacketsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "precrime",
			Subsystem: "simulator",
			Name:      "packets_total",
			Help:      "Total number of simulated packets by outcome",
		}, []string{"outcome"}),

		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "precrime",
			Subsystem: "simulator",
			Name:      "duration_seconds",
			Help:      "Duration of batch simulations",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),

		PreCrimeUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "precrime",
			Subsystem: "simulator",
			Name:      "precrime_updates_total",
			Help:      "Total number of judge association changes",
		}),
	}
}

func (m *Metrics) observeRequest(result string) {
	if m == nil {
		return
	}
	m.SimulationsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) observeBatch(outcomes []types.SimulationOutcome, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Duration.Observe(elapsed.Seconds())
	for _, o := range outcomes {
		if o.Succeeded {
			m.PacketsTotal.WithLabelValues("succeeded").Inc()
		} else {
			m.PacketsTotal.WithLabelValues("failed").Inc()
		}
	}
}

func (m *Metrics) observePreCrimeUpdate() {
	if m == nil {
		return
	}
	m.PreCrimeUpdates.Inc()
}
