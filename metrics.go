package bisect

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring
// systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    batchCounter    *prometheus.CounterVec
//	    batchHistogram  *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordBatch(op bisect.Op, count int, duration time.Duration, err error) {
//	    p.batchCounter.WithLabelValues(string(op)).Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordBatch is called after each batch operation (and after
	// each scalar-set operation routed through the batch path).
	// op identifies the search semantic, count is the number of
	// queries, duration is the total time taken, err is nil on
	// success.
	RecordBatch(op Op, count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(Op, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external
// dependencies.
type BasicMetricsCollector struct {
	LowerBoundBatches atomic.Int64
	UpperBoundBatches atomic.Int64
	ContainsBatches   atomic.Int64
	EqualRangeBatches atomic.Int64
	QueryCount        atomic.Int64
	ErrorCount        atomic.Int64
	TotalNanos        atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(op Op, count int, duration time.Duration, err error) {
	switch op {
	case OpLowerBound:
		b.LowerBoundBatches.Add(1)
	case OpUpperBound:
		b.UpperBoundBatches.Add(1)
	case OpContains:
		b.ContainsBatches.Add(1)
	case OpEqualRange:
		b.EqualRangeBatches.Add(1)
	}

	b.QueryCount.Add(int64(count))
	b.TotalNanos.Add(duration.Nanoseconds())

	if err != nil {
		b.ErrorCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LowerBoundBatches: b.LowerBoundBatches.Load(),
		UpperBoundBatches: b.UpperBoundBatches.Load(),
		ContainsBatches:   b.ContainsBatches.Load(),
		EqualRangeBatches: b.EqualRangeBatches.Load(),
		QueryCount:        b.QueryCount.Load(),
		ErrorCount:        b.ErrorCount.Load(),
		AvgBatchNanos:     b.getAvgBatchNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgBatchNanos() int64 {
	batches := b.LowerBoundBatches.Load() +
		b.UpperBoundBatches.Load() +
		b.ContainsBatches.Load() +
		b.EqualRangeBatches.Load()
	if batches == 0 {
		return 0
	}
	return b.TotalNanos.Load() / batches
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LowerBoundBatches int64
	UpperBoundBatches int64
	ContainsBatches   int64
	EqualRangeBatches int64
	QueryCount        int64
	ErrorCount        int64
	AvgBatchNanos     int64
}
