package centroid

// Folder defines how points of type P accumulate into a sum of type S.
//
// Fold and Merge may reuse the storage of their first argument but must never
// retain or mutate the second one.
type Folder[P, S any] interface {
	// Empty returns the sum of zero points.
	Empty() S
	// Fold adds p to sum and returns the updated sum.
	Fold(sum S, p P) S
	// Merge adds src to dst and returns the updated sum.
	Merge(dst, src S) S
}

// Centroid accumulates the points assigned to one cluster.
// It is not safe for concurrent use; each partition owns its own Centroids.
type Centroid[P, S any] struct {
	folder Folder[P, S]
	count  int64
	sum    S
}

// New returns an empty Centroid (the monoid identity).
func New[P, S any](f Folder[P, S]) *Centroid[P, S] {
	return &Centroid[P, S]{
		folder: f,
		sum:    f.Empty(),
	}
}

// Add folds p into the Centroid.
func (c *Centroid[P, S]) Add(p P) {
	c.sum = c.folder.Fold(c.sum, p)
	c.count++
}

// Combine merges other into c and returns c. other is left untouched.
// Either side may be empty.
func (c *Centroid[P, S]) Combine(other *Centroid[P, S]) *Centroid[P, S] {
	if other == nil || other.count == 0 {
		return c
	}
	c.sum = c.folder.Merge(c.sum, other.sum)
	c.count += other.count
	return c
}

// IsEmpty reports whether no point has been added.
func (c *Centroid[P, S]) IsEmpty() bool {
	return c.count == 0
}

// Count returns the number of points folded into the Centroid.
func (c *Centroid[P, S]) Count() int64 {
	return c.count
}

// Sum returns the accumulated sum. The caller must not mutate it.
func (c *Centroid[P, S]) Sum() S {
	return c.sum
}
