package space

import "github.com/hupe1980/kmeans/centroid"

// Space is the geometry capability used to assign points to centers, turn
// accumulated Centroids back into centers and test convergence.
//
// Implementations must be safe for concurrent use: FindClosest and the Folder
// methods are called from every partition of a pass at the same time.
type Space[P, C, S any] interface {
	centroid.Folder[P, S]

	// FindClosest returns the index of the center nearest to p and the cost
	// of that assignment. Ties go to the lowest index.
	FindClosest(centers []C, p P) (int, float64)

	// CentroidToPoint returns the representative point of a non-empty Centroid.
	CentroidToPoint(c *centroid.Centroid[P, S]) P

	// PointToCenter lifts a point into the center representation.
	PointToCenter(p P) C

	// CenterMoved reports whether next differs enough from prev for the run
	// to keep iterating.
	CenterMoved(next, prev C) bool
}
