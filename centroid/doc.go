// Package centroid implements the per-cluster accumulator used by the
// aggregation pass.
//
// A Centroid is a count plus an opaque running sum. Centroids form a
// commutative monoid: the identity is a freshly created Centroid and Combine
// merges two accumulators. Partition-local Centroids can therefore be merged
// in any order and any grouping.
//
// How a point is folded into the sum is delegated to a Folder, so the same
// accumulator serves dense vectors, scalars or any other point type.
package centroid
