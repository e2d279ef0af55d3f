// Package distance provides the vector distance kernels used by the clustering spaces.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default)
//   - MetricCosine: Cosine distance (1 - dot product of unit vectors)
//
// Every Func returned by Provider is a distance: smaller means closer.
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.Dot(a, b)
//	ok := distance.NormalizeL2InPlace(vec)
package distance
