package knn

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordClassify is called after each classification.
	// k is the number of neighbors requested, duration is the time taken,
	// err is nil if successful.
	RecordClassify(k int, duration time.Duration, err error)

	// RecordBatchClassify is called after each batch classification.
	// count is the number of queries attempted, failed is the number that
	// failed, duration is the total time taken.
	RecordBatchClassify(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordClassify(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordBatchClassify(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClassifyCount      atomic.Int64
	ClassifyErrors     atomic.Int64
	ClassifyTotalNanos atomic.Int64
	BatchCount         atomic.Int64
	BatchItems         atomic.Int64
	BatchFailed        atomic.Int64
}

// RecordClassify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClassify(k int, duration time.Duration, err error) {
	b.ClassifyCount.Add(1)
	b.ClassifyTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClassifyErrors.Add(1)
	}
}

// RecordBatchClassify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchClassify(count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ClassifyCount:    b.ClassifyCount.Load(),
		ClassifyErrors:   b.ClassifyErrors.Load(),
		ClassifyAvgNanos: b.getAvgClassifyNanos(),
		BatchCount:       b.BatchCount.Load(),
		BatchItems:       b.BatchItems.Load(),
		BatchFailed:      b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgClassifyNanos() int64 {
	count := b.ClassifyCount.Load()
	if count == 0 {
		return 0
	}
	return b.ClassifyTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ClassifyCount    int64
	ClassifyErrors   int64
	ClassifyAvgNanos int64
	BatchCount       int64
	BatchItems       int64
	BatchFailed      int64
}
