package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recommender Prometheus metrics. Registered explicitly via
// RegisterRecommenderMetrics (no init()).
var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "collegerec",
			Name:      "recommend_requests_total",
			Help:      "Total number of recommend calls",
		},
		[]string{"status"}, // "ok" / "error"
	)

	RecommendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "collegerec",
			Name:      "recommend_duration_seconds",
			Help:      "Recommendation scoring duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	TrainedRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "collegerec",
			Name:      "trained_records",
			Help:      "Number of college program records in the trained model",
		},
	)

	DatasetFilesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "collegerec",
			Name:      "dataset_files_total",
			Help:      "Dataset files processed at load time",
		},
		[]string{"result"}, // "loaded" / "skipped"
	)

	RecommendCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "collegerec",
			Name:      "recommend_cache_total",
			Help:      "Recommendation cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

// RegisterRecommenderMetrics registers all recommender metrics with the
// default registry.
func RegisterRecommenderMetrics() {
	prometheus.MustRegister(
		RecommendRequestsTotal,
		RecommendDuration,
		TrainedRecords,
		DatasetFilesTotal,
		RecommendCacheTotal,
	)
}
