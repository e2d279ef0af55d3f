package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems; see
// metrics/prometheus for a Prometheus implementation.
type MetricsCollector interface {
	// RecordIteration is called after each data pass.
	// activeRuns is the number of runs included in the pass.
	RecordIteration(activeRuns int, duration time.Duration)

	// RecordRunConverged is called when a run stops moving.
	// iterations is the number of passes the run took.
	RecordRunConverged(iterations int)

	// RecordClusterDropped is called with the number of clusters removed
	// from a run in one iteration.
	RecordClusterDropped(count int)

	// RecordCluster is called once per Cluster call.
	// err is nil if successful.
	RecordCluster(iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, time.Duration)      {}
func (NoopMetricsCollector) RecordRunConverged(int)                  {}
func (NoopMetricsCollector) RecordClusterDropped(int)                {}
func (NoopMetricsCollector) RecordCluster(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IterationCount      atomic.Int64
	IterationRuns       atomic.Int64
	IterationTotalNanos atomic.Int64
	ConvergedRuns       atomic.Int64
	ConvergedIterations atomic.Int64
	DroppedClusters     atomic.Int64
	ClusterCount        atomic.Int64
	ClusterErrors       atomic.Int64
	ClusterTotalNanos   atomic.Int64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(activeRuns int, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationRuns.Add(int64(activeRuns))
	b.IterationTotalNanos.Add(duration.Nanoseconds())
}

// RecordRunConverged implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRunConverged(iterations int) {
	b.ConvergedRuns.Add(1)
	b.ConvergedIterations.Add(int64(iterations))
}

// RecordClusterDropped implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClusterDropped(count int) {
	b.DroppedClusters.Add(int64(count))
}

// RecordCluster implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCluster(_ int, duration time.Duration, err error) {
	b.ClusterCount.Add(1)
	b.ClusterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClusterErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IterationCount:    b.IterationCount.Load(),
		IterationAvgRuns:  avg(b.IterationRuns.Load(), b.IterationCount.Load()),
		IterationAvgNanos: avg(b.IterationTotalNanos.Load(), b.IterationCount.Load()),
		ConvergedRuns:     b.ConvergedRuns.Load(),
		ConvergedAvgIters: avg(b.ConvergedIterations.Load(), b.ConvergedRuns.Load()),
		DroppedClusters:   b.DroppedClusters.Load(),
		ClusterCount:      b.ClusterCount.Load(),
		ClusterErrors:     b.ClusterErrors.Load(),
		ClusterAvgNanos:   avg(b.ClusterTotalNanos.Load(), b.ClusterCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IterationCount    int64
	IterationAvgRuns  int64
	IterationAvgNanos int64
	ConvergedRuns     int64
	ConvergedAvgIters int64
	DroppedClusters   int64
	ClusterCount      int64
	ClusterErrors     int64
	ClusterAvgNanos   int64
}
