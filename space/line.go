package space

import (
	"math"

	"github.com/hupe1980/kmeans/centroid"
)

// Line clusters scalars on the real line. The cost of an assignment is the
// absolute distance to the center; centers are arithmetic means.
type Line struct {
	epsilon float64
}

var _ Space[float64, float64, float64] = (*Line)(nil)

// NewLine creates a Line space.
func NewLine(optFns ...Option) *Line {
	o := applyOptions(optFns)
	return &Line{epsilon: o.epsilon}
}

// Empty implements centroid.Folder.
func (l *Line) Empty() float64 { return 0 }

// Fold implements centroid.Folder.
func (l *Line) Fold(sum float64, p float64) float64 { return sum + p }

// Merge implements centroid.Folder.
func (l *Line) Merge(dst, src float64) float64 { return dst + src }

// FindClosest implements Space.
func (l *Line) FindClosest(centers []float64, p float64) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for j, c := range centers {
		d := math.Abs(p - c)
		if best == -1 || d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best, bestDist
}

// CentroidToPoint implements Space.
func (l *Line) CentroidToPoint(c *centroid.Centroid[float64, float64]) float64 {
	return c.Sum() / float64(c.Count())
}

// PointToCenter implements Space.
func (l *Line) PointToCenter(p float64) float64 { return p }

// CenterMoved implements Space.
func (l *Line) CenterMoved(next, prev float64) bool {
	return math.Abs(next-prev) > l.epsilon
}
