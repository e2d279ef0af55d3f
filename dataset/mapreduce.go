package dataset

import (
	"context"
	"fmt"
)

// MapReduce runs one pass over d. For every point, mapper folds p into the
// map owned by its partition; no state is shared between partitions. After
// the barrier the partition maps are merged key by key in ascending partition
// order, so the result does not depend on how r scheduled the tasks.
//
// merge may reuse dst. Values of partition 0 become the initial accumulators.
func MapReduce[P any, K comparable, V any](
	ctx context.Context,
	r Runner,
	d Dataset[P],
	mapper func(part int, local map[K]V, p P),
	merge func(dst, src V) V,
) (map[K]V, error) {
	n := d.NumPartitions()
	locals := make([]map[K]V, n)

	err := r.Run(ctx, n, func(ctx context.Context, part int) error {
		local := make(map[K]V)
		if err := d.Scan(ctx, part, func(p P) {
			mapper(part, local, p)
		}); err != nil {
			return fmt.Errorf("dataset: scan partition %d: %w", part, err)
		}
		locals[part] = local
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[K]V)
	for _, local := range locals {
		for k, v := range local {
			if acc, ok := out[k]; ok {
				out[k] = merge(acc, v)
			} else {
				out[k] = v
			}
		}
	}
	return out, nil
}

// Accumulator holds one row of float64 counters per partition. Each
// partition task writes only its own row; Sum adds the rows in partition
// order after the barrier.
type Accumulator struct {
	rows [][]float64
	size int
}

// NewAccumulator allocates size counters for each of partitions rows.
func NewAccumulator(partitions, size int) *Accumulator {
	rows := make([][]float64, partitions)
	for i := range rows {
		rows[i] = make([]float64, size)
	}
	return &Accumulator{rows: rows, size: size}
}

// Add adds v to counter idx of partition part.
func (a *Accumulator) Add(part, idx int, v float64) {
	a.rows[part][idx] += v
}

// Sum returns the per-counter totals.
func (a *Accumulator) Sum() []float64 {
	out := make([]float64, a.size)
	for _, row := range a.rows {
		for i, v := range row {
			out[i] += v
		}
	}
	return out
}
