package dataset

import (
	"github.com/hupe1980/kmeans/internal/compress"
	"github.com/hupe1980/kmeans/resource"
)

// Compression selects the block compression of partition blobs.
type Compression = compress.Type

// Partition blob compressions.
const (
	CompressionNone = compress.None
	CompressionLZ4  = compress.LZ4
	CompressionZSTD = compress.ZSTD
)

type vectorOptions struct {
	partitions  int
	compression compress.Type
	rc          *resource.Controller
}

// VectorOption configures WriteVectors and OpenVectors.
type VectorOption func(*vectorOptions)

// WithPartitions sets the number of partition blobs WriteVectors produces.
// Default: 1.
func WithPartitions(n int) VectorOption {
	return func(o *vectorOptions) {
		o.partitions = n
	}
}

// WithCompression selects the block compression for WriteVectors.
// Default: CompressionNone.
func WithCompression(t Compression) VectorOption {
	return func(o *vectorOptions) {
		o.compression = t
	}
}

// WithController bounds decoded partition memory and blob read throughput of
// the scans of an opened dataset.
func WithController(rc *resource.Controller) VectorOption {
	return func(o *vectorOptions) {
		o.rc = rc
	}
}

func applyVectorOptions(opts []VectorOption) vectorOptions {
	o := vectorOptions{
		partitions:  1,
		compression: compress.None,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.partitions = max(o.partitions, 1)
	return o
}
