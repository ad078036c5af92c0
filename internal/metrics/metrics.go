// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics records Prometheus metrics for the submit and compare flows.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Flow outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeAppError = "app_error"
	OutcomeFailure  = "failure"
	OutcomeStale    = "stale"
)

const namespace = "report_insight"

// Recorder holds the flow collectors. A nil Recorder records nothing.
type Recorder struct {
	requests *prometheus.CounterVec
	inflight *prometheus.GaugeVec
	duration *prometheus.HistogramVec
}

// New creates a Recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flow_requests_total",
			Help:      "Analysis API calls by flow and outcome.",
		}, []string{"flow", "outcome"}),
		inflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flow_requests_in_flight",
			Help:      "Analysis API calls awaiting a response.",
		}, []string{"flow"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flow_duration_seconds",
			Help:      "Time from click to page update.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"flow"}),
	}
	reg.MustRegister(r.requests, r.inflight, r.duration)
	return r
}

// Started marks a flow's request as in flight.
func (r *Recorder) Started(flow string) {
	if r == nil {
		return
	}
	r.inflight.WithLabelValues(flow).Inc()
}

// Finished records the outcome of a flow started with Started.
func (r *Recorder) Finished(flow, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.inflight.WithLabelValues(flow).Dec()
	r.requests.WithLabelValues(flow, outcome).Inc()
	r.duration.WithLabelValues(flow).Observe(elapsed.Seconds())
}
