// Package keccak provides the Keccak-f[1600] permutation and the low-level sponge primitives built on it: state
// initialization, fused absorb-and-permute, and extraction.
//
// This package provides no padding, framing, or output length management. Those belong to the sponge or duplex
// construction layered on top of it. Misuse (an out-of-range lane count or an undersized buffer) panics.
package keccak

import (
	"errors"
	"fmt"

	"github.com/codahale/keccak/internal/lane"
)

const (
	// Size is the size of the permutation state in bytes.
	Size = 200

	// Lanes is the number of 64-bit lanes in the permutation state.
	Lanes = 25

	// LaneSize is the size of a lane in bytes.
	LaneSize = lane.Size

	// Rounds is the number of rounds in Keccak-f[1600].
	Rounds = 24
)

// ErrInvalidStateLength is returned by State.UnmarshalBinary when given anything other than exactly Size bytes.
var ErrInvalidStateLength = errors.New("keccak: invalid state length")

// A State is a 1600-bit Keccak state of 25 lanes. Lane (x, y) of the 5×5 grid is stored at index x+5*y.
//
// The zero value is a valid, initialized state. A State is a plain value and may be copied freely; it must not be
// shared between goroutines without external synchronization.
type State [Lanes]uint64

// P1600 applies the Keccak-f[1600] permutation to the state.
func P1600(s *State) {
	keccakP((*[Lanes]uint64)(s), Rounds)
}

// Permute applies the Keccak-f[1600] permutation to the state.
func (s *State) Permute() {
	keccakP((*[Lanes]uint64)(s), Rounds)
}

// Reset returns the state to its initial, all-zero value.
func (s *State) Reset() {
	clear(s[:])
}

// Lane returns the lane at grid position (x, y).
func (s *State) Lane(x, y int) uint64 {
	return s[index(x, y)]
}

// SetLane sets the lane at grid position (x, y) to v.
func (s *State) SetLane(x, y int, v uint64) {
	s[index(x, y)] = v
}

func index(x, y int) int {
	if uint(x) >= 5 || uint(y) >= 5 {
		panic(fmt.Sprintf("keccak: lane (%d, %d) is outside the 5x5 grid", x, y))
	}
	return x + 5*y
}

// checkLanes panics unless 1 <= n <= Lanes and a buffer of bufLen bytes holds n lanes.
func checkLanes(n, bufLen int) {
	if n < 1 || n > Lanes {
		panic(fmt.Sprintf("keccak: lane count %d is outside [1, %d]", n, Lanes))
	}
	if bufLen < n*LaneSize {
		panic(fmt.Sprintf("keccak: %d-byte buffer is too short for %d lanes", bufLen, n))
	}
}
