package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/internal/math32"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
// Uses Gaussian distribution for uniform distribution on the sphere.
func (r *RNG) UnitVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		var norm float64
		for j := range vec {
			v := r.rand.NormFloat64()
			vec[j] = float32(v)
			norm += v * v
		}

		if norm == 0 {
			norm = 1
		}

		math32.ScaleInPlace(vec, float32(1.0/math.Sqrt(norm)))
		vectors[i] = vec
	}

	return vectors
}

// ClusteredVectors generates num vectors around clusters unit-vector centroids
// with Gaussian noise of the given spread. Vector i belongs to cluster
// i % clusters.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float32) [][]float32 {
	centroids := r.UnitVectors(clusters, dim)
	return r.Blobs(num, centroids, spread)
}

// Blobs generates num vectors around the given centers with Gaussian noise of
// the given spread. Vector i belongs to center i % len(centers).
func (r *RNG) Blobs(num int, centers [][]float32, spread float32) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	dim := 0
	if len(centers) > 0 {
		dim = len(centers[0])
	}

	data := make([]float32, num*dim)
	vectors := make([][]float32, num)

	for i := range num {
		center := centers[i%len(centers)]
		vec := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range dim {
			vec[j] = center[j] + float32(r.rand.NormFloat64())*spread
		}
		vectors[i] = vec
	}

	return vectors
}

// Sample returns k distinct points chosen uniformly at random, copied.
// k is capped at len(points).
func (r *RNG) Sample(points [][]float32, k int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	k = min(k, len(points))
	perm := r.rand.Perm(len(points))[:k]

	out := make([][]float32, k)
	for i, idx := range perm {
		out[i] = append([]float32(nil), points[idx]...)
	}
	return out
}

// SampleRuns returns initial centers for runs runs of k centers each.
func (r *RNG) SampleRuns(points [][]float32, runs, k int) [][][]float32 {
	out := make([][][]float32, runs)
	for i := range out {
		out[i] = r.Sample(points, k)
	}
	return out
}

// SquaredL2Cost returns the sum of squared distances from every point to its
// closest center, computed by brute force.
func SquaredL2Cost(points, centers [][]float32) float64 {
	var total float64
	for _, p := range points {
		best := math.Inf(1)
		for _, c := range centers {
			if d := float64(distance.SquaredL2(p, c)); d < best {
				best = d
			}
		}
		total += best
	}
	return total
}
