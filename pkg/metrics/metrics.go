package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics содержит Prometheus-метрики ядра
type Metrics struct {
	IncidentsReported *prometheus.CounterVec
	VotesRegistered   prometheus.Counter
	PushesSent        prometheus.Counter
	PushesFailed      prometheus.Counter
	ClusterCycles     *prometheus.CounterVec
	ZonesCreated      prometheus.Counter
	ZonesDissolved    prometheus.Counter
	MembershipEvents  *prometheus.CounterVec
}

// New регистрирует метрики в переданном Registerer.
// В тестах используется отдельный prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		IncidentsReported: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "street_safety",
				Name:      "incidents_reported_total",
				Help:      "Total number of incident reports accepted",
			},
			[]string{"type"},
		),
		VotesRegistered: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "street_safety",
				Name:      "incident_votes_total",
				Help:      "Total number of accepted community verifications",
			},
		),
		PushesSent: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "street_safety",
				Name:      "pushes_sent_total",
				Help:      "Total number of push notifications delivered to the gateway",
			},
		),
		PushesFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "street_safety",
				Name:      "pushes_failed_total",
				Help:      "Total number of push notifications the gateway rejected",
			},
		),
		ClusterCycles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "street_safety",
				Name:      "cluster_cycles_total",
				Help:      "Clustering cycle outcomes",
			},
			[]string{"result"}, // completed | skipped | failed
		),
		ZonesCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "street_safety",
				Name:      "zones_created_total",
				Help:      "Total number of hotspot zones created",
			},
		),
		ZonesDissolved: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "street_safety",
				Name:      "zones_dissolved_total",
				Help:      "Total number of hotspot zones deactivated",
			},
		),
		MembershipEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "street_safety",
				Name:      "zone_membership_events_total",
				Help:      "Zone enter/exit transitions",
			},
			[]string{"event"}, // entered | exited
		),
	}
}
