// Package testdata provides a deterministic random bit generator and shared fixtures for testing.
package testdata

import (
	"crypto/sha3"
	"unsafe"
)

// DRBG is a deterministic random bit generator based on SHAKE128.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a new DRBG instance initialized with the given customization string.
func New(customization string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// State returns 200 bytes of deterministic data, suitable for filling a permutation state.
func (d *DRBG) State() (s [200]byte) {
	_, _ = d.h.Read(s[:])
	return s
}

// Aligned returns n bytes of deterministic data in a buffer whose first byte is 8-byte aligned, followed by one byte
// of slack so callers may also take a misaligned view starting at offset 1.
func (d *DRBG) Aligned(n int) []byte {
	words := make([]uint64, n/8+1)
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), len(words)*8)
	_, _ = d.h.Read(b[:n+1])
	return b[:n+1]
}
