// Package math32 provides float32 vector kernels.
// This is an internal package - external users should use the distance package.
package math32

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 distance.
func SquaredL2(a, b []float32) float32 {
	var distance float32
	for i := range a {
		d := a[i] - b[i]
		distance += d * d
	}

	return distance
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float32, scalar float32) {
	for i := range a {
		a[i] *= scalar
	}
}

// AccumulateF64 adds v element-wise into the float64 accumulator dst.
// Sums are widened to float64 so long accumulations do not lose precision.
func AccumulateF64(dst []float64, v []float32) {
	for i := range dst {
		dst[i] += float64(v[i])
	}
}

// AddF64 adds src element-wise into dst.
func AddF64(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// MeanF64 writes sum/count into dst, narrowing to float32.
func MeanF64(dst []float32, sum []float64, count int64) {
	inv := 1 / float64(count)
	for i := range dst {
		dst[i] = float32(sum[i] * inv)
	}
}
