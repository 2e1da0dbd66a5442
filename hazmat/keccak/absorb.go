package keccak

import "github.com/codahale/keccak/internal/lane"

// XORLanes XORs the first n lanes of data, each read least-significant byte first, into the first n lanes of the
// state. It does not permute the state.
//
// XORLanes panics if n is outside [1, Lanes] or data is shorter than n*LaneSize bytes.
func (s *State) XORLanes(data []byte, n int) {
	checkLanes(n, len(data))
	lane.XOR(s[:n], data)
}

// Absorb XORs the first n lanes of data into the state and then permutes it. It is equivalent to XORLanes followed by
// Permute.
//
// Absorb panics if n is outside [1, Lanes] or data is shorter than n*LaneSize bytes.
func (s *State) Absorb(data []byte, n int) {
	s.XORLanes(data, n)
	s.Permute()
}

// Absorb576 absorbs a 576-bit block (9 lanes, the SHA3-512 rate).
func (s *State) Absorb576(data *[576 / 8]byte) {
	s.Absorb(data[:], 576/64)
}

// Absorb832 absorbs an 832-bit block (13 lanes, the SHA3-384 rate).
func (s *State) Absorb832(data *[832 / 8]byte) {
	s.Absorb(data[:], 832/64)
}

// Absorb1024 absorbs a 1024-bit block (16 lanes).
func (s *State) Absorb1024(data *[1024 / 8]byte) {
	s.Absorb(data[:], 1024/64)
}

// Absorb1088 absorbs a 1088-bit block (17 lanes, the SHA3-256 and SHAKE256 rate).
func (s *State) Absorb1088(data *[1088 / 8]byte) {
	s.Absorb(data[:], 1088/64)
}

// Absorb1152 absorbs a 1152-bit block (18 lanes, the SHA3-224 rate).
func (s *State) Absorb1152(data *[1152 / 8]byte) {
	s.Absorb(data[:], 1152/64)
}

// Absorb1344 absorbs a 1344-bit block (21 lanes, the SHAKE128 rate).
func (s *State) Absorb1344(data *[1344 / 8]byte) {
	s.Absorb(data[:], 1344/64)
}
