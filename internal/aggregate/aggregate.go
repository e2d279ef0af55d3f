// Package aggregate computes, in one pass over a partitioned dataset, the
// per-cluster centroids and the total distortion of several center sets at
// once.
package aggregate

import (
	"context"

	"github.com/hupe1980/kmeans/centroid"
	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/space"
)

// Key identifies a cluster of one center set in a pass.
// Run is the position of the set in the snapshot, not a global run index.
type Key struct {
	Run     int
	Cluster int
}

// Result holds the outcome of one pass.
type Result[P, S any] struct {
	// Centroids has one entry per (run, cluster) pair of the snapshot.
	// Clusters that attracted no points hold an empty Centroid.
	Centroids map[Key]*centroid.Centroid[P, S]
	// Distortion is the summed closest-center cost per run.
	Distortion []float64
}

// Centroid returns the centroid of cluster j of run r.
func (res *Result[P, S]) Centroid(r, j int) *centroid.Centroid[P, S] {
	return res.Centroids[Key{Run: r, Cluster: j}]
}

// Aggregate assigns every point of data to its closest center in each center
// set of snapshot and folds it into that cluster's centroid. snapshot is only
// read.
func Aggregate[P, C, S any](
	ctx context.Context,
	runner dataset.Runner,
	data dataset.Dataset[P],
	sp space.Space[P, C, S],
	snapshot [][]C,
) (*Result[P, S], error) {
	acc := dataset.NewAccumulator(data.NumPartitions(), len(snapshot))

	centroids, err := dataset.MapReduce(ctx, runner, data,
		func(part int, local map[Key]*centroid.Centroid[P, S], p P) {
			for r, centers := range snapshot {
				if len(centers) == 0 {
					continue
				}
				j, cost := sp.FindClosest(centers, p)
				k := Key{Run: r, Cluster: j}
				c, ok := local[k]
				if !ok {
					c = centroid.New[P, S](sp)
					local[k] = c
				}
				c.Add(p)
				acc.Add(part, r, cost)
			}
		},
		func(dst, src *centroid.Centroid[P, S]) *centroid.Centroid[P, S] {
			return dst.Combine(src)
		},
	)
	if err != nil {
		return nil, err
	}

	for r, centers := range snapshot {
		for j := range centers {
			k := Key{Run: r, Cluster: j}
			if _, ok := centroids[k]; !ok {
				centroids[k] = centroid.New[P, S](sp)
			}
		}
	}

	return &Result[P, S]{
		Centroids:  centroids,
		Distortion: acc.Sum(),
	}, nil
}
