package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics carries the engine's Prometheus instruments. Construct one per
// process with the registry the /metrics endpoint serves from.
type Metrics struct {
	Searches        prometheus.Counter
	Recommendations *prometheus.CounterVec
	Suggestions     prometheus.Counter
	ClickEvents     *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Searches: factory.NewCounter(prometheus.CounterOpts{
			Name: "discovery_searches_total",
			Help: "Number of catalog searches served",
		}),
		Recommendations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "discovery_recommendations_total",
			Help: "Number of recommendation batches served, by surface",
		}, []string{"surface"}),
		Suggestions: factory.NewCounter(prometheus.CounterOpts{
			Name: "discovery_suggestions_total",
			Help: "Number of autocomplete suggestion lookups served",
		}),
		ClickEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "discovery_click_events_total",
			Help: "Number of click telemetry events accepted, by kind",
		}, []string{"kind"}),
	}
}
