package dataset

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/hupe1980/kmeans/blobstore"
	"github.com/hupe1980/kmeans/internal/compress"
	"github.com/hupe1980/kmeans/internal/hash"
	"github.com/hupe1980/kmeans/resource"
)

const partitionSuffix = ".vec"

func partitionName(prefix string, part int) string {
	return fmt.Sprintf("%s/part-%05d%s", prefix, part, partitionSuffix)
}

// WriteVectors stores vectors under prefix, one blob per partition. All
// vectors must share one dimension. Partition blobs left over from a previous
// write with more partitions are removed.
func WriteVectors(ctx context.Context, store blobstore.BlobStore, prefix string, vectors [][]float32, opts ...VectorOption) error {
	o := applyVectorOptions(opts)

	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("%w: vector %d has %d dimensions, want %d", ErrDimensionMismatch, i, len(v), dim)
		}
	}

	bounds := partitionBounds(len(vectors), o.partitions)
	written := make(map[string]struct{}, o.partitions)

	for part := range o.partitions {
		if err := ctx.Err(); err != nil {
			return err
		}

		blob, err := encodePartition(vectors[bounds[part]:bounds[part+1]], dim, o.compression)
		if err != nil {
			return fmt.Errorf("dataset: encode partition %d: %w", part, err)
		}

		name := partitionName(prefix, part)
		if err := store.Put(ctx, name, blob); err != nil {
			return fmt.Errorf("dataset: put %s: %w", name, err)
		}
		written[name] = struct{}{}
	}

	existing, err := listPartitions(ctx, store, prefix)
	if err != nil {
		return err
	}
	for _, name := range existing {
		if _, ok := written[name]; ok {
			continue
		}
		if err := store.Delete(ctx, name); err != nil {
			return fmt.Errorf("dataset: delete stale %s: %w", name, err)
		}
	}

	return nil
}

func encodePartition(vectors [][]float32, dim int, t compress.Type) ([]byte, error) {
	raw := make([]byte, len(vectors)*dim*4)
	off := 0
	for _, v := range vectors {
		for _, f := range v {
			binary.LittleEndian.PutUint32(raw[off:], math.Float32bits(f))
			off += 4
		}
	}

	payload, err := compress.Encode(raw, t)
	if err != nil {
		return nil, err
	}

	h := partitionHeader{
		Magic:       partitionMagic,
		Version:     partitionVersion,
		Compression: t,
		Dim:         uint32(dim),
		Count:       uint64(len(vectors)),
		PayloadSize: uint64(len(payload)),
		Checksum:    hash.CRC32C(payload),
	}

	return append(h.encode(), payload...), nil
}

func listPartitions(ctx context.Context, store blobstore.BlobStore, prefix string) ([]string, error) {
	names, err := store.List(ctx, prefix+"/part-")
	if err != nil {
		return nil, fmt.Errorf("dataset: list %s: %w", prefix, err)
	}
	out := names[:0]
	for _, name := range names {
		if strings.HasSuffix(name, partitionSuffix) {
			out = append(out, name)
		}
	}
	return out, nil
}

// Vectors is a blob-backed Dataset of float32 vectors. Partitions are
// decoded on every Scan and released when the scan returns.
type Vectors struct {
	store   blobstore.BlobStore
	names   []string
	headers []partitionHeader
	dim     int
	count   int64
	rc      *resource.Controller
}

var _ Dataset[[]float32] = (*Vectors)(nil)

// OpenVectors opens the partitions stored under prefix. Only headers are read.
func OpenVectors(ctx context.Context, store blobstore.BlobStore, prefix string, opts ...VectorOption) (*Vectors, error) {
	o := applyVectorOptions(opts)

	names, err := listPartitions(ctx, store, prefix)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPartitions, prefix)
	}

	v := &Vectors{
		store:   store,
		names:   names,
		headers: make([]partitionHeader, len(names)),
		dim:     -1,
		rc:      o.rc,
	}

	for i, name := range names {
		h, err := readPartitionHeader(ctx, store, name)
		if err != nil {
			return nil, err
		}
		if h.Count > 0 {
			switch {
			case v.dim < 0:
				v.dim = int(h.Dim)
			case v.dim != int(h.Dim):
				return nil, fmt.Errorf("%w: %s has %d dimensions, want %d", ErrDimensionMismatch, name, h.Dim, v.dim)
			}
		}
		v.headers[i] = h
		v.count += int64(h.Count)
	}
	v.dim = max(v.dim, 0)

	return v, nil
}

func readPartitionHeader(ctx context.Context, store blobstore.BlobStore, name string) (partitionHeader, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return partitionHeader{}, fmt.Errorf("dataset: open %s: %w", name, err)
	}
	defer blob.Close()

	buf := make([]byte, partitionHeaderSize)
	if _, err := blob.ReadAt(ctx, buf, 0); err != nil {
		if errors.Is(err, io.EOF) {
			return partitionHeader{}, fmt.Errorf("%w: %s: truncated header", ErrCorruptPartition, name)
		}
		return partitionHeader{}, fmt.Errorf("dataset: read %s: %w", name, err)
	}

	h, err := decodePartitionHeader(buf)
	if err != nil {
		return partitionHeader{}, fmt.Errorf("%s: %w", name, err)
	}
	if uint64(blob.Size()) != partitionHeaderSize+h.PayloadSize {
		return partitionHeader{}, fmt.Errorf("%w: %s: size %d does not match header", ErrCorruptPartition, name, blob.Size())
	}
	return h, nil
}

// NumPartitions returns the number of partition blobs.
func (v *Vectors) NumPartitions() int {
	return len(v.names)
}

// Dim returns the vector dimension, or 0 if the dataset is empty.
func (v *Vectors) Dim() int {
	return v.dim
}

// Len returns the total number of vectors.
func (v *Vectors) Len() int64 {
	return v.count
}

// Scan decodes partition part and calls fn for each vector. The vectors share
// one backing array that must not be modified.
func (v *Vectors) Scan(ctx context.Context, part int, fn func([]float32)) error {
	if part < 0 || part >= len(v.names) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidPartition, part, len(v.names))
	}

	h := v.headers[part]
	if h.Count == 0 {
		return nil
	}

	mem := int64(h.rawSize() + h.PayloadSize)
	if err := v.rc.AcquireMemory(ctx, mem); err != nil {
		return err
	}
	defer v.rc.ReleaseMemory(mem)

	values, err := v.load(ctx, part)
	if err != nil {
		return err
	}

	dim := int(h.Dim)
	for i := 0; i < int(h.Count); i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		fn(values[i*dim : (i+1)*dim : (i+1)*dim])
	}
	return nil
}

func (v *Vectors) load(ctx context.Context, part int) ([]float32, error) {
	name := v.names[part]
	h := v.headers[part]

	blob, err := v.store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", name, err)
	}
	defer blob.Close()

	payload := make([]byte, h.PayloadSize)
	section := io.NewSectionReader(readerAt{ctx: ctx, blob: blob}, partitionHeaderSize, int64(h.PayloadSize))
	if _, err := io.ReadFull(resource.NewRateLimitedReader(ctx, section, v.rc), payload); err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", name, err)
	}

	if !hash.Verify(payload, h.Checksum) {
		return nil, fmt.Errorf("%w: %s: checksum mismatch", ErrCorruptPartition, name)
	}

	raw, err := compress.Decode(payload, h.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptPartition, name, err)
	}
	if uint64(len(raw)) != h.rawSize() {
		return nil, fmt.Errorf("%w: %s: payload holds %d bytes, want %d", ErrCorruptPartition, name, len(raw), h.rawSize())
	}

	values := make([]float32, len(raw)/4)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return values, nil
}

// readerAt adapts a blobstore.Blob to io.ReaderAt for one scan.
type readerAt struct {
	ctx  context.Context
	blob blobstore.Blob
}

func (r readerAt) ReadAt(p []byte, off int64) (int, error) {
	return r.blob.ReadAt(r.ctx, p, off)
}
