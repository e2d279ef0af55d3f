package prometheus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/space"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}
	return out
}

func TestCollector_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.RecordIteration(3, 10*time.Millisecond)
	c.RecordIteration(1, 5*time.Millisecond)
	c.RecordRunConverged(2)
	c.RecordClusterDropped(2)
	c.RecordClusterDropped(1)
	c.RecordCluster(2, time.Second, nil)
	c.RecordCluster(0, time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.iterations))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.convergedRuns))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.droppedClusters))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.clusterCalls.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.clusterCalls.WithLabelValues("error")))

	families := gather(t, reg)

	active := families["kmeans_iteration_active_runs"]
	require.NotNil(t, active)
	h := active.GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(2), h.GetSampleCount())
	assert.Equal(t, 4.0, h.GetSampleSum())

	lat := families["kmeans_cluster_duration_seconds"]
	require.NotNil(t, lat)
	assert.Len(t, lat.GetMetric(), 2)
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}

func TestCollector_WithClusterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	mc, err := NewCollector(reg)
	require.NoError(t, err)

	c, err := kmeans.New[float64, float64, float64](space.NewLine(),
		kmeans.WithMetricsCollector(mc),
		kmeans.WithMaxIterations(10),
	)
	require.NoError(t, err)

	_, err = c.Cluster(context.Background(), dataset.FromSlice([]float64{0, 1, 10, 11}, 2), [][]float64{{0, 10}})
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(mc.iterations))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.convergedRuns))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.clusterCalls.WithLabelValues("success")))
}
