package keccak

import "github.com/codahale/keccak/internal/lane"

// Extract writes the first n lanes of the state to dst, each least-significant byte first. The state is not modified.
//
// Extract panics if n is outside [1, Lanes] or dst is shorter than n*LaneSize bytes.
func (s *State) Extract(dst []byte, n int) {
	checkLanes(n, len(dst))
	lane.Store(dst, s[:n])
}

// Extract1024 writes the first 1024 bits (16 lanes) of the state to dst.
func (s *State) Extract1024(dst *[1024 / 8]byte) {
	s.Extract(dst[:], 1024/64)
}
