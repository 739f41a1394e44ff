// Package metrics exposes Prometheus instruments for the HTTP API, the
// catalog store and the chat proxy.
//
// Each Metrics owns a private registry so tests can build as many as they
// like without duplicate-registration panics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"rabbithole/backend/internal/storage"
)

const namespace = "rabbithole"

// Metrics holds all instruments
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StoreRecords    *prometheus.GaugeVec
	ChatRequests    *prometheus.CounterVec
}

// New builds the instruments and registers them, plus Go runtime collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"method", "route"},
		),

		StoreRecords: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "records",
				Help:      "Records held per collection",
			},
			[]string{"collection"},
		),

		ChatRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "chat",
				Name:      "requests_total",
				Help:      "Chat proxy requests by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.StoreRecords,
		m.ChatRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing Handler
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveChat records one chat proxy outcome ("ok", "error", "unavailable")
func (m *Metrics) ObserveChat(provider, outcome string) {
	if m == nil {
		return
	}
	m.ChatRequests.WithLabelValues(provider, outcome).Inc()
}

// SetStoreStats publishes collection sizes
func (m *Metrics) SetStoreStats(stats storage.Stats) {
	if m == nil {
		return
	}
	m.StoreRecords.WithLabelValues("users").Set(float64(stats.Users))
	m.StoreRecords.WithLabelValues("topics").Set(float64(stats.Topics))
	m.StoreRecords.WithLabelValues("topic_contents").Set(float64(stats.TopicContents))
	m.StoreRecords.WithLabelValues("related_topics").Set(float64(stats.RelatedTopics))
	m.StoreRecords.WithLabelValues("glossary_terms").Set(float64(stats.GlossaryTerms))
	m.StoreRecords.WithLabelValues("ai_chats").Set(float64(stats.AiChats))
	m.StoreRecords.WithLabelValues("expert_opinions").Set(float64(stats.ExpertOpinions))
}
