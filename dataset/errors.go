package dataset

import "errors"

var (
	// ErrNoPartitions is returned when a blob prefix holds no partitions.
	ErrNoPartitions = errors.New("dataset: no partitions")
	// ErrCorruptPartition is returned when a partition blob fails validation.
	ErrCorruptPartition = errors.New("dataset: corrupt partition")
	// ErrDimensionMismatch is returned when vectors disagree on dimension.
	ErrDimensionMismatch = errors.New("dataset: dimension mismatch")
	// ErrInvalidPartition is returned for a partition index out of range.
	ErrInvalidPartition = errors.New("dataset: invalid partition")
)
