package dataset

import (
	"context"
	"fmt"
)

// Dataset is a read-only collection of points split into partitions.
// Scan must be safe to call concurrently for different partitions.
type Dataset[P any] interface {
	// NumPartitions returns the number of partitions.
	NumPartitions() int
	// Scan calls fn for every point of partition part, in storage order.
	Scan(ctx context.Context, part int, fn func(P)) error
}

// Slice is an in-memory Dataset over a slice of points.
type Slice[P any] struct {
	points []P
	bounds []int
}

var _ Dataset[int] = (*Slice[int])(nil)

// FromSlice splits points into contiguous partitions of near-equal size.
// partitions below 1 is treated as 1. Partitions may be empty when there are
// fewer points than partitions. The slice is not copied.
func FromSlice[P any](points []P, partitions int) *Slice[P] {
	partitions = max(partitions, 1)
	return &Slice[P]{
		points: points,
		bounds: partitionBounds(len(points), partitions),
	}
}

// partitionBounds returns partitions+1 offsets; partition i is [b[i], b[i+1]).
func partitionBounds(n, partitions int) []int {
	bounds := make([]int, partitions+1)
	for i := range bounds {
		bounds[i] = i * n / partitions
	}
	return bounds
}

// NumPartitions returns the number of partitions.
func (s *Slice[P]) NumPartitions() int {
	return len(s.bounds) - 1
}

// Len returns the total number of points.
func (s *Slice[P]) Len() int {
	return len(s.points)
}

// Scan calls fn for every point in partition part.
func (s *Slice[P]) Scan(ctx context.Context, part int, fn func(P)) error {
	if part < 0 || part >= s.NumPartitions() {
		return fmt.Errorf("%w: %d of %d", ErrInvalidPartition, part, s.NumPartitions())
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, p := range s.points[s.bounds[part]:s.bounds[part+1]] {
		fn(p)
	}
	return nil
}
