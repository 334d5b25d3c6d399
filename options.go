package knn

import "github.com/knnlab/knn/distance"

// Options contains configuration options for the classifier.
type Options struct {
	// Metric selects the distance function. Euclidean and squared Euclidean
	// select the same neighbors; squared skips the square root.
	Metric distance.Metric

	// MaxConcurrency bounds the number of goroutines used by ClassifyBatch.
	// Values <= 0 use runtime.GOMAXPROCS(0).
	MaxConcurrency int

	// Logger receives structured logs. Defaults to a no-op logger.
	Logger *Logger

	// Metrics receives operational metrics. Defaults to NoopMetricsCollector.
	Metrics MetricsCollector
}

// DefaultOptions contains the default configuration options for the classifier.
var DefaultOptions = Options{
	Metric:         distance.MetricEuclidean,
	MaxConcurrency: 0,
}
