// Package metrics holds the bot's Prometheus collectors. All methods are safe
// on a nil *Metrics so components can run without instrumentation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "slackbot"

// Run outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics records pipeline and HTTP activity
type Metrics struct {
	registry *prometheus.Registry

	PipelineRuns        *prometheus.CounterVec
	StageDuration       *prometheus.HistogramVec
	IdentifyFallbacks   prometheus.Counter
	SlackRequests       *prometheus.CounterVec
	DuplicateDeliveries prometheus.Counter
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PipelineRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Transcription pipeline runs by outcome.",
		}, []string{"outcome"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_stage_duration_seconds",
			Help:      "Time spent in each pipeline stage.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}, []string{"stage"}),
		IdentifyFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "speaker_identification_fallbacks_total",
			Help:      "Speaker identification replies that could not be used.",
		}),
		SlackRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slack_requests_total",
			Help:      "Slack webhook requests by route.",
		}, []string{"route"}),
		DuplicateDeliveries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slack_duplicate_deliveries_total",
			Help:      "Slack deliveries dropped as retries of an earlier one.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.PipelineRuns,
		m.StageDuration,
		m.IdentifyFallbacks,
		m.SlackRequests,
		m.DuplicateDeliveries,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordRun(outcome string) {
	if m == nil {
		return
	}
	m.PipelineRuns.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStage(stage string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordIdentifyFallback() {
	if m == nil {
		return
	}
	m.IdentifyFallbacks.Inc()
}

func (m *Metrics) RecordSlackRequest(route string) {
	if m == nil {
		return
	}
	m.SlackRequests.WithLabelValues(route).Inc()
}

func (m *Metrics) RecordDuplicate() {
	if m == nil {
		return
	}
	m.DuplicateDeliveries.Inc()
}
