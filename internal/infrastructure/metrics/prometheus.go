// Package metrics exports summary generation metrics in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation outcomes
const (
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"
)

// Recorder receives observations from the summary workflows
type Recorder interface {
	ObserveGeneration(action string, fallback bool, latency time.Duration)
	IncCommLogWrite(action string)
}

// PrometheusRecorder implements Recorder on a dedicated registry
type PrometheusRecorder struct {
	registry *prometheus.Registry

	generations   *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	commLogWrites *prometheus.CounterVec
}

// NewPrometheusRecorder creates a recorder with its own registry, including Go runtime
// and process collectors
func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prometheus.NewRegistry()

	r := &PrometheusRecorder{
		registry: registry,
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "callsummary",
			Name:      "generations_total",
			Help:      "Summary generations by workflow action and outcome.",
		}, []string{"action", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "callsummary",
			Name:      "generation_duration_seconds",
			Help:      "Latency of the language model call.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"action"}),
		commLogWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "callsummary",
			Name:      "commlog_writes_total",
			Help:      "Commlog entries written by action.",
		}, []string{"action"}),
	}

	registry.MustRegister(
		r.generations,
		r.latency,
		r.commLogWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveGeneration records one language model call
func (r *PrometheusRecorder) ObserveGeneration(action string, fallback bool, latency time.Duration) {
	outcome := OutcomeGenerated
	if fallback {
		outcome = OutcomeFallback
	}
	r.generations.WithLabelValues(action, outcome).Inc()
	r.latency.WithLabelValues(action).Observe(latency.Seconds())
}

// IncCommLogWrite records one committed commlog entry
func (r *PrometheusRecorder) IncCommLogWrite(action string) {
	r.commLogWrites.WithLabelValues(action).Inc()
}

// Handler serves the registry in the Prometheus text format
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Nop discards all observations
type Nop struct{}

func (Nop) ObserveGeneration(string, bool, time.Duration) {}
func (Nop) IncCommLogWrite(string)                        {}
