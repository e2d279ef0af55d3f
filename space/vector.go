package space

import (
	"math"
	"slices"

	"github.com/hupe1980/kmeans/centroid"
	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/internal/math32"
)

// vectorFolder accumulates []float32 points into float64 sums.
type vectorFolder struct{}

func (vectorFolder) Empty() []float64 { return nil }

func (vectorFolder) Fold(sum []float64, p []float32) []float64 {
	if sum == nil {
		sum = make([]float64, len(p))
	}
	math32.AccumulateF64(sum, p)
	return sum
}

func (vectorFolder) Merge(dst, src []float64) []float64 {
	if src == nil {
		return dst
	}
	if dst == nil {
		return slices.Clone(src)
	}
	math32.AddF64(dst, src)
	return dst
}

func closest(centers [][]float32, p []float32, fn distance.Func) (int, float64) {
	best := -1
	bestDist := float32(math.MaxFloat32)
	for j, c := range centers {
		d := fn(p, c)
		if best == -1 || d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best, float64(bestDist)
}

func mean(c *centroid.Centroid[[]float32, []float64]) []float32 {
	sum := c.Sum()
	out := make([]float32, len(sum))
	math32.MeanF64(out, sum, c.Count())
	return out
}

// Euclidean clusters dense vectors under squared L2 distance.
type Euclidean struct {
	vectorFolder
	epsilon2 float64
}

var _ Space[[]float32, []float32, []float64] = (*Euclidean)(nil)

// NewEuclidean creates a Euclidean space.
func NewEuclidean(optFns ...Option) *Euclidean {
	o := applyOptions(optFns)
	return &Euclidean{epsilon2: o.epsilon * o.epsilon}
}

// FindClosest implements Space. The cost is the squared L2 distance.
func (e *Euclidean) FindClosest(centers [][]float32, p []float32) (int, float64) {
	return closest(centers, p, distance.SquaredL2)
}

// CentroidToPoint implements Space. It returns the arithmetic mean.
func (e *Euclidean) CentroidToPoint(c *centroid.Centroid[[]float32, []float64]) []float32 {
	return mean(c)
}

// PointToCenter implements Space.
func (e *Euclidean) PointToCenter(p []float32) []float32 {
	return slices.Clone(p)
}

// CenterMoved implements Space.
func (e *Euclidean) CenterMoved(next, prev []float32) bool {
	return float64(distance.SquaredL2(next, prev)) > e.epsilon2
}

// Spherical clusters unit vectors under cosine distance (spherical k-means).
// Points are expected to be L2-normalized; centers are kept normalized.
type Spherical struct {
	vectorFolder
	epsilon2 float64
}

var _ Space[[]float32, []float32, []float64] = (*Spherical)(nil)

// NewSpherical creates a Spherical space.
func NewSpherical(optFns ...Option) *Spherical {
	o := applyOptions(optFns)
	return &Spherical{epsilon2: o.epsilon * o.epsilon}
}

// FindClosest implements Space. The cost is 1 - cos(p, center).
func (s *Spherical) FindClosest(centers [][]float32, p []float32) (int, float64) {
	return closest(centers, p, distance.Cosine)
}

// CentroidToPoint implements Space. It returns the normalized mean; a mean
// with zero norm is returned unnormalized.
func (s *Spherical) CentroidToPoint(c *centroid.Centroid[[]float32, []float64]) []float32 {
	m := mean(c)
	distance.NormalizeL2InPlace(m)
	return m
}

// PointToCenter implements Space.
func (s *Spherical) PointToCenter(p []float32) []float32 {
	return slices.Clone(p)
}

// CenterMoved implements Space.
func (s *Spherical) CenterMoved(next, prev []float32) bool {
	return float64(distance.SquaredL2(next, prev)) > s.epsilon2
}
