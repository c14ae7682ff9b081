package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	// Request counters
	RequestsTotal *prometheus.CounterVec

	// Chat completion counters
	ChatCompletionsTotal *prometheus.CounterVec

	// External provider latency
	ExternalProviderLatency *prometheus.HistogramVec
)

// init creates and registers all metrics with the default registry
func init() {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newschat",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	ChatCompletionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newschat",
			Subsystem: "chat",
			Name:      "completions_total",
			Help:      "Total chat completions by outcome",
		},
		[]string{"status"},
	)

	ExternalProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "newschat",
			Subsystem: "provider",
			Name:      "latency_seconds",
			Help:      "Latency of outbound provider calls",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "operation"},
	)

	collectors := []prometheus.Collector{
		RequestsTotal,
		ChatCompletionsTotal,
		ExternalProviderLatency,
	}
	for _, collector := range collectors {
		if err := prometheus.Register(collector); err != nil {
			log.Warn().Err(err).Msg("failed to register metric")
		}
	}
}

// RecordRequest records an HTTP request
func RecordRequest(method, status string) {
	RequestsTotal.WithLabelValues(method, status).Inc()
}

// RecordChatCompletion records a chat completion outcome
func RecordChatCompletion(status string) {
	if status == "" {
		status = "unknown"
	}
	ChatCompletionsTotal.WithLabelValues(status).Inc()
}

// RecordProviderLatency records the duration of one outbound provider call
func RecordProviderLatency(provider, operation string, durationSec float64) {
	ExternalProviderLatency.WithLabelValues(provider, operation).Observe(durationSec)
}
