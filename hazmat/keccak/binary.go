package keccak

import (
	"encoding"
	"slices"

	"github.com/codahale/keccak/internal/lane"
)

// AppendBinary appends the 200-byte encoding of the state, lanes in index order and each least-significant byte
// first, to b. It implements encoding.BinaryAppender.
func (s *State) AppendBinary(b []byte) ([]byte, error) {
	b = slices.Grow(b, Size)
	lane.StorePortable(b[len(b):len(b)+Size], s[:])
	return b[:len(b)+Size], nil
}

// MarshalBinary returns the 200-byte encoding of the state. It implements encoding.BinaryMarshaler.
func (s *State) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, Size))
}

// UnmarshalBinary restores the state from its 200-byte encoding. It implements encoding.BinaryUnmarshaler.
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return ErrInvalidStateLength
	}
	lane.Load(s[:], data)
	return nil
}

var (
	_ encoding.BinaryAppender    = (*State)(nil)
	_ encoding.BinaryMarshaler   = (*State)(nil)
	_ encoding.BinaryUnmarshaler = (*State)(nil)
)
