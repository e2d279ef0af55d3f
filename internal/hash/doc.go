// Package hash provides the CRC32-Castagnoli checksum used to verify vector
// partition blobs and S3 uploads.
//
// Go's hash/crc32 uses SSE4.2 or the ARM CRC extension when available.
//
//	sum := hash.CRC32C(payload)
//	if !hash.Verify(payload, sum) { ... }
package hash
