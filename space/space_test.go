package space

import (
	"testing"

	"github.com/hupe1980/kmeans/centroid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	e := NewEuclidean()
	centers := [][]float32{{0, 0}, {10, 10}, {0, 0}}

	t.Run("FindClosest", func(t *testing.T) {
		j, cost := e.FindClosest(centers, []float32{1, 2})
		assert.Equal(t, 0, j)
		assert.InDelta(t, 5.0, cost, 1e-6)

		j, cost = e.FindClosest(centers, []float32{9, 9})
		assert.Equal(t, 1, j)
		assert.InDelta(t, 2.0, cost, 1e-6)
	})

	t.Run("TiesGoToLowestIndex", func(t *testing.T) {
		j, _ := e.FindClosest(centers, []float32{0, 0})
		assert.Equal(t, 0, j)
	})

	t.Run("CentroidToPoint", func(t *testing.T) {
		c := centroid.New[[]float32, []float64](e)
		c.Add([]float32{0, 2})
		c.Add([]float32{2, 4})
		assert.Equal(t, []float32{1, 3}, e.CentroidToPoint(c))
	})

	t.Run("FoldDoesNotAliasPoint", func(t *testing.T) {
		p := []float32{1, 1}
		c := centroid.New[[]float32, []float64](e)
		c.Add(p)
		c.Add(p)
		assert.Equal(t, []float32{1, 1}, p)
		assert.Equal(t, []float64{2, 2}, c.Sum())
	})

	t.Run("CenterMoved", func(t *testing.T) {
		assert.False(t, e.CenterMoved([]float32{1, 1}, []float32{1, 1}))
		assert.False(t, e.CenterMoved([]float32{1, 1.00001}, []float32{1, 1}))
		assert.True(t, e.CenterMoved([]float32{1, 1.1}, []float32{1, 1}))

		strict := NewEuclidean(WithEpsilon(0))
		assert.True(t, strict.CenterMoved([]float32{1, 1.00001}, []float32{1, 1}))
	})

	t.Run("PointToCenterCopies", func(t *testing.T) {
		p := []float32{1, 2}
		c := e.PointToCenter(p)
		c[0] = 5
		assert.Equal(t, float32(1), p[0])
	})
}

func TestSpherical(t *testing.T) {
	s := NewSpherical()
	centers := [][]float32{{1, 0}, {0, 1}}

	j, cost := s.FindClosest(centers, []float32{0.6, 0.8})
	assert.Equal(t, 1, j)
	assert.InDelta(t, 0.2, cost, 1e-6)

	c := centroid.New[[]float32, []float64](s)
	c.Add([]float32{1, 0})
	c.Add([]float32{0, 1})
	m := s.CentroidToPoint(c)
	require.Len(t, m, 2)
	assert.InDelta(t, float32(0.70710677), m[0], 1e-6)
	assert.InDelta(t, float32(0.70710677), m[1], 1e-6)

	assert.True(t, s.CenterMoved([]float32{1, 0}, []float32{0, 1}))
	assert.False(t, s.CenterMoved([]float32{1, 0}, []float32{1, 0}))
}

func TestLine(t *testing.T) {
	l := NewLine()

	j, cost := l.FindClosest([]float64{0.5, 10.5}, 11)
	assert.Equal(t, 1, j)
	assert.Equal(t, 0.5, cost)

	j, _ = l.FindClosest([]float64{0, 2}, 1)
	assert.Equal(t, 0, j, "ties go to the lowest index")

	c := centroid.New[float64, float64](l)
	c.Add(10)
	c.Add(11)
	assert.Equal(t, 10.5, l.CentroidToPoint(c))

	assert.False(t, l.CenterMoved(1, 1+DefaultEpsilon/2))
	assert.True(t, l.CenterMoved(1, 2))
	assert.Equal(t, 3.0, l.PointToCenter(3))
}
