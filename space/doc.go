// Package space defines the point/center algebra the clustering loop is
// parameterized over, together with ready-made implementations.
//
// # Built-in Spaces
//
//   - Euclidean: []float32 points, squared L2 cost, arithmetic-mean centers
//   - Spherical: []float32 unit vectors, cosine cost, normalized-mean centers
//   - Line: float64 scalars, absolute-distance cost
//
// # Custom Spaces
//
// Implement Space to cluster any point type:
//
//	type Space[P, C, S any] interface {
//	    centroid.Folder[P, S]
//	    FindClosest(centers []C, p P) (int, float64)
//	    CentroidToPoint(c *centroid.Centroid[P, S]) P
//	    PointToCenter(p P) C
//	    CenterMoved(next, prev C) bool
//	}
package space
