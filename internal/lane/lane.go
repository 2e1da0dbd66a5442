// Package lane converts between byte streams and the 64-bit lanes of a Keccak state.
//
// Lanes are always serialized least-significant byte first, regardless of the host. On little-endian hosts the bulk
// operations reinterpret 8-byte-aligned buffers as lanes directly; everywhere else they fall back to a portable
// per-lane loop. The choice is a process-wide constant.
package lane

import (
	"encoding/binary"
	"unsafe"

	"github.com/codahale/keccak/internal/mem"
	"golang.org/x/sys/cpu"
)

// Size is the size of a lane in bytes.
const Size = 8

// Aliasing is true if the host stores lanes in the same byte order they are serialized in, so that lane memory and
// byte buffers can be reinterpreted as one another.
const Aliasing = !cpu.IsBigEndian

// FromBytes interprets the first eight bytes of b as a lane, least-significant byte first.
func FromBytes(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// ToBytes writes v to the first eight bytes of b, least-significant byte first.
func ToBytes(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// XOR sets dst[i] ^= FromBytes(src[8*i:]) for each lane in dst.
func XOR(dst []uint64, src []byte) {
	if Aliasing && aligned(src) {
		XORAliased(dst, src)
		return
	}
	XORPortable(dst, src)
}

// Store writes each lane of src to dst, least-significant byte first.
func Store(dst []byte, src []uint64) {
	if Aliasing {
		StoreAliased(dst, src)
		return
	}
	StorePortable(dst, src)
}

// Load sets dst[i] = FromBytes(src[8*i:]) for each lane in dst.
func Load(dst []uint64, src []byte) {
	for i := range dst {
		dst[i] = FromBytes(src[i*Size:])
	}
}

// XORPortable is XOR for any host byte order and any buffer alignment.
func XORPortable(dst []uint64, src []byte) {
	for i := range dst {
		dst[i] ^= FromBytes(src[i*Size:])
	}
}

// StorePortable is Store for any host byte order.
func StorePortable(dst []byte, src []uint64) {
	for i, v := range src {
		ToBytes(dst[i*Size:], v)
	}
}

// XORAliased is XOR for little-endian hosts. The source buffer must be 8-byte aligned.
func XORAliased(dst []uint64, src []byte) {
	if len(dst) == 0 {
		return
	}
	_ = src[len(dst)*Size-1] // bounds check before reinterpreting
	words := unsafe.Slice((*uint64)(unsafe.Pointer(unsafe.SliceData(src))), len(dst))
	mem.XORInPlace(dst, words)
}

// StoreAliased is Store for little-endian hosts. It is a single memory copy.
func StoreAliased(dst []byte, src []uint64) {
	if len(src) == 0 {
		return
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(src))), len(src)*Size)
	copy(dst[:len(b)], b)
}

func aligned(b []byte) bool {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%unsafe.Alignof(uint64(0)) == 0
}
