// Package prometheus exports clustering metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := kmprom.NewCollector(reg)
//	if err != nil { ... }
//	c, _ := kmeans.New(space.NewEuclidean(), kmeans.WithMetricsCollector(mc))
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/kmeans"
)

const namespace = "kmeans"

var _ kmeans.MetricsCollector = (*Collector)(nil)

// Collector implements kmeans.MetricsCollector with Prometheus counters and
// histograms.
type Collector struct {
	iterations      prometheus.Counter
	iterationLat    prometheus.Histogram
	activeRuns      prometheus.Histogram
	convergedRuns   prometheus.Counter
	convergedIters  prometheus.Histogram
	droppedClusters prometheus.Counter
	clusterCalls    *prometheus.CounterVec
	clusterLat      *prometheus.HistogramVec
	clusterIters    prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	iterBuckets := []float64{1, 2, 3, 5, 8, 13, 20, 30, 50, 100}

	c := &Collector{
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Total data passes",
		}),
		iterationLat: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "iteration_duration_seconds",
			Help:      "Latency of one data pass",
			Buckets:   prometheus.DefBuckets,
		}),
		activeRuns: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "iteration_active_runs",
			Help:      "Runs included in a data pass",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		convergedRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_converged_total",
			Help:      "Total runs that stopped moving",
		}),
		convergedIters: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_convergence_iterations",
			Help:      "Passes a run took to converge",
			Buckets:   iterBuckets,
		}),
		droppedClusters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clusters_dropped_total",
			Help:      "Total clusters removed because they attracted no points",
		}),
		clusterCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cluster_calls_total",
			Help:      "Total Cluster calls",
		}, []string{"status"}),
		clusterLat: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cluster_duration_seconds",
			Help:      "Latency of Cluster calls",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"status"}),
		clusterIters: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cluster_iterations",
			Help:      "Passes per Cluster call",
			Buckets:   iterBuckets,
		}),
	}

	for _, m := range []prometheus.Collector{
		c.iterations,
		c.iterationLat,
		c.activeRuns,
		c.convergedRuns,
		c.convergedIters,
		c.droppedClusters,
		c.clusterCalls,
		c.clusterLat,
		c.clusterIters,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordIteration implements kmeans.MetricsCollector.
func (c *Collector) RecordIteration(activeRuns int, d time.Duration) {
	c.iterations.Inc()
	c.iterationLat.Observe(d.Seconds())
	c.activeRuns.Observe(float64(activeRuns))
}

// RecordRunConverged implements kmeans.MetricsCollector.
func (c *Collector) RecordRunConverged(iterations int) {
	c.convergedRuns.Inc()
	c.convergedIters.Observe(float64(iterations))
}

// RecordClusterDropped implements kmeans.MetricsCollector.
func (c *Collector) RecordClusterDropped(count int) {
	c.droppedClusters.Add(float64(count))
}

// RecordCluster implements kmeans.MetricsCollector.
func (c *Collector) RecordCluster(iterations int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.clusterCalls.WithLabelValues(status).Inc()
	c.clusterLat.WithLabelValues(status).Observe(d.Seconds())
	c.clusterIters.Observe(float64(iterations))
}
