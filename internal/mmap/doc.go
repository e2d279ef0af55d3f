// Package mmap provides read-only memory-mapped file access for zero-copy I/O.
//
// # Usage
//
//	m, err := mmap.Open("part-00000.vec")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) via golang.org/x/sys/unix
//   - Windows: CreateFileMapping/MapViewOfFile
//
// # Thread Safety
//
// A File is safe for concurrent reads. Close is idempotent, but callers must
// ensure no goroutine uses Bytes() after Close returns.
package mmap
