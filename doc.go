// Package kmeans clusters a partitioned dataset with several independent
// K-means runs at once and returns the run with the lowest cost.
//
// All runs that are still moving share one pass over the data per iteration.
// Each run converges on its own: a run stops as soon as none of its centers
// moved, while the remaining runs keep iterating. Clusters that attract no
// points are dropped from their run instead of being reseeded, so the number
// of centers of a run never grows.
//
// # Quick Start
//
//	points := [][]float32{{0, 0}, {0, 1}, {10, 10}, {10, 11}}
//	data := dataset.FromSlice(points, 4)
//
//	c, _ := kmeans.New(space.NewEuclidean(), kmeans.WithMaxIterations(50))
//	model, _ := c.Cluster(ctx, data, [][][]float32{
//	    {{0, 0}, {10, 10}},  // run 0
//	    {{0, 1}, {10, 11}},  // run 1
//	})
//	fmt.Println(model.Centers(), model.Cost())
//
// Choosing the initial centers is left to the caller.
//
// # Geometry
//
// The space package supplies the point algebra: Euclidean (squared L2 over
// []float32), Spherical (cosine over unit vectors) and Line (float64 on the
// real line). Custom types implement space.Space.
//
// # Data
//
// Any dataset.Dataset works. dataset.FromSlice partitions an in-memory slice;
// dataset.OpenVectors reads compressed vector partitions from a
// blobstore.BlobStore (local disk, MinIO or S3). Passes run on the
// configured dataset.Runner, dataset.Parallel() by default.
//
// # Observability
//
// WithLogger and WithMetricsCollector report iterations, converged runs and
// dropped clusters. metrics/prometheus exposes the same events to Prometheus.
package kmeans
