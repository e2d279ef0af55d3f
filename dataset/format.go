package dataset

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/kmeans/internal/compress"
)

const (
	partitionMagic   = 0x4B4D5650 // "KMVP"
	partitionVersion = 1

	partitionHeaderSize = 4 + 2 + 1 + 1 + 4 + 8 + 8 + 4
)

// partitionHeader is stored at the beginning of every partition blob and is
// followed by the compressed payload of Count*Dim little-endian float32s.
type partitionHeader struct {
	Magic       uint32
	Version     uint16
	Compression compress.Type
	_           uint8
	Dim         uint32
	Count       uint64
	PayloadSize uint64
	Checksum    uint32 // CRC32C of the payload
}

func (h *partitionHeader) encode() []byte {
	buf := make([]byte, partitionHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:], h.Magic)
	binary.LittleEndian.PutUint16(buf[4:], h.Version)
	buf[6] = byte(h.Compression)
	binary.LittleEndian.PutUint32(buf[8:], h.Dim)
	binary.LittleEndian.PutUint64(buf[12:], h.Count)
	binary.LittleEndian.PutUint64(buf[20:], h.PayloadSize)
	binary.LittleEndian.PutUint32(buf[28:], h.Checksum)
	return buf
}

func decodePartitionHeader(buf []byte) (partitionHeader, error) {
	var h partitionHeader
	if len(buf) < partitionHeaderSize {
		return h, fmt.Errorf("%w: header too small", ErrCorruptPartition)
	}
	h.Magic = binary.LittleEndian.Uint32(buf[0:])
	if h.Magic != partitionMagic {
		return h, fmt.Errorf("%w: invalid magic %#x", ErrCorruptPartition, h.Magic)
	}
	h.Version = binary.LittleEndian.Uint16(buf[4:])
	if h.Version != partitionVersion {
		return h, fmt.Errorf("%w: unsupported version %d", ErrCorruptPartition, h.Version)
	}
	h.Compression = compress.Type(buf[6])
	h.Dim = binary.LittleEndian.Uint32(buf[8:])
	h.Count = binary.LittleEndian.Uint64(buf[12:])
	h.PayloadSize = binary.LittleEndian.Uint64(buf[20:])
	h.Checksum = binary.LittleEndian.Uint32(buf[28:])
	return h, nil
}

// rawSize is the decoded payload size in bytes.
func (h *partitionHeader) rawSize() uint64 {
	return h.Count * uint64(h.Dim) * 4
}
