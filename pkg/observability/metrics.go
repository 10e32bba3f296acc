package observability

import (
	"context"

	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the wizard collectors.
type Metrics struct {
	Loads       prometheus.Counter
	CostErrors  prometheus.Counter
	TripTotal   prometheus.Histogram
	Navigations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Loads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripwizard_snapshot_loads_total",
			Help: "Total number of snapshot rebuilds",
		}),
		CostErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripwizard_cost_errors_total",
			Help: "Total number of loads that could not compute a cost breakdown",
		}),
		TripTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripwizard_trip_total_cost",
			Help:    "Total trip cost of successful loads",
			Buckets: prometheus.ExponentialBuckets(1000, 2, 10),
		}),
		Navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripwizard_navigations_total",
				Help: "Total number of page transitions",
			},
			[]string{"from", "to", "trigger"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Loads, m.CostErrors, m.TripTotal, m.Navigations)
	}
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoad: func(_ context.Context, e *domain.LoadEvent) {
			m.Loads.Inc()
			if amounts := e.Snapshot.Costs.Amounts; amounts != nil {
				m.TripTotal.Observe(amounts.Total)
			}
		},
		OnCostError: func(context.Context, *domain.LoadEvent) {
			m.CostErrors.Inc()
		},
		OnNavigate: func(_ context.Context, e *domain.NavigationEvent) {
			m.Navigations.WithLabelValues(e.From, e.To, e.Trigger).Inc()
		},
	}
}
