// Package testutil provides testing utilities for kmeans.
//
// This package is intended for use in tests, examples and benchmarks only.
// It provides deterministic random data, initial centers and a brute-force
// cost used as ground truth.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformVectors(1000, 16)     // uniform [0, 1)
//	vecs = rng.ClusteredVectors(1000, 16, 8, 0.05)
//
// # Initial Centers
//
//	initial := rng.SampleRuns(vecs, 4, 8)    // 4 runs, 8 centers each
//
// # Ground Truth
//
//	cost := testutil.SquaredL2Cost(vecs, model.Centers())
package testutil
