// Package dataset provides the partitioned, immutable point collections that
// clustering passes read from, together with the runners that schedule one
// task per partition.
//
// A pass is expressed with MapReduce: every partition folds its points into
// a partition-local map, and the local maps are merged in ascending partition
// order once the runner's barrier is reached. Because the merge order never
// depends on scheduling, Sequential and Parallel runners produce identical
// results.
//
// # In-memory data
//
//	data := dataset.FromSlice(points, 8)
//
// # Blob-backed vectors
//
// Vectors are stored one blob per partition in any blobstore.BlobStore:
//
//	err := dataset.WriteVectors(ctx, store, "points", vectors,
//	    dataset.WithPartitions(16),
//	    dataset.WithCompression(compress.ZSTD),
//	)
//
//	data, err := dataset.OpenVectors(ctx, store, "points",
//	    dataset.WithController(resource.NewController(resource.Config{
//	        MemoryLimitBytes:   256 << 20,
//	        IOLimitBytesPerSec: 100 << 20,
//	    })),
//	)
package dataset
