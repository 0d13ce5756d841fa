package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// EmbeddingRequestsTotal counts embedding provider calls by outcome.
	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expertmatch",
			Name:      "embedding_requests_total",
			Help:      "Total number of embedding provider requests",
		},
		[]string{"provider", "model", "status"},
	)

	// EmbeddingRequestDuration measures embedding provider latency.
	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "expertmatch",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	// EmbeddingTokensTotal counts tokens billed by the embedding provider.
	EmbeddingTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expertmatch",
			Name:      "embedding_tokens_total",
			Help:      "Total embedding tokens by kind",
		},
		[]string{"provider", "model", "kind"},
	)

	// ReindexTotal counts reindex jobs by outcome.
	ReindexTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expertmatch",
			Name:      "reindex_total",
			Help:      "Total reindex jobs by outcome",
		},
		[]string{"status"},
	)
)

// RegisterPipelineMetrics registers embedding and reindex metrics
// explicitly (no init()) so tests can import this package freely.
func RegisterPipelineMetrics() {
	prometheus.MustRegister(
		EmbeddingRequestsTotal,
		EmbeddingRequestDuration,
		EmbeddingTokensTotal,
		ReindexTotal,
	)
}
