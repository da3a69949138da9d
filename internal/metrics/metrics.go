// Package metrics defines the prometheus metrics exposed on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "tierview"

	// Labels
	kindLabel    = "kind"
	outcomeLabel = "outcome"
	tierLabel    = "tier"
)

/**
* Metrics definition
**/
var describeRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "describe_requests_total",
		Help:      "number of describe calls by resource kind and outcome",
	},
	[]string{kindLabel, outcomeLabel},
)

var describeDurationSeconds = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "describe_duration_seconds",
		Help:      "latency of describe calls by resource kind",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
	},
	[]string{kindLabel},
)

var snapshotResources = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_resources",
		Help:      "number of classified resources per tier in the latest snapshot",
	},
	[]string{tierLabel},
)

var snapshotsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_total",
		Help:      "number of snapshots built",
	},
)

// Registry holds every tierview metric.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		describeRequestsTotal,
		describeDurationSeconds,
		snapshotResources,
		snapshotsTotal,
		collectors.NewGoCollector(),
	)
}

// ObserveDescribe records one describe call.
func ObserveDescribe(kind, outcome string, d time.Duration) {
	describeRequestsTotal.With(prometheus.Labels{kindLabel: kind, outcomeLabel: outcome}).Inc()
	describeDurationSeconds.With(prometheus.Labels{kindLabel: kind}).Observe(d.Seconds())
}

// ObserveSnapshot records the per-tier resource counts of a built snapshot.
func ObserveSnapshot(perTier map[string]int) {
	snapshotsTotal.Inc()
	for tier, n := range perTier {
		snapshotResources.With(prometheus.Labels{tierLabel: tier}).Set(float64(n))
	}
}

// Handler serves the registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
