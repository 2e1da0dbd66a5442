package keccak

import "math/bits"

// keccakPUnrolled applies the last rounds rounds of Keccak-p[1600] to a. Each round is straight-line code: θ is
// computed from five column parities, ρ and π are fused into a single chain that walks the π cycle starting at lane
// (1, 0), and χ is applied one plane at a time.
func keccakPUnrolled(a *[Lanes]uint64, rounds int) {
	var c0, c1, c2, c3, c4, d, t uint64

	for _, rc := range roundConstants[Rounds-rounds:] {
		// θ
		c0 = a[0] ^ a[5] ^ a[10] ^ a[15] ^ a[20]
		c1 = a[1] ^ a[6] ^ a[11] ^ a[16] ^ a[21]
		c2 = a[2] ^ a[7] ^ a[12] ^ a[17] ^ a[22]
		c3 = a[3] ^ a[8] ^ a[13] ^ a[18] ^ a[23]
		c4 = a[4] ^ a[9] ^ a[14] ^ a[19] ^ a[24]

		d = c4 ^ bits.RotateLeft64(c1, 1)
		a[0], a[5], a[10], a[15], a[20] = a[0]^d, a[5]^d, a[10]^d, a[15]^d, a[20]^d
		d = c0 ^ bits.RotateLeft64(c2, 1)
		a[1], a[6], a[11], a[16], a[21] = a[1]^d, a[6]^d, a[11]^d, a[16]^d, a[21]^d
		d = c1 ^ bits.RotateLeft64(c3, 1)
		a[2], a[7], a[12], a[17], a[22] = a[2]^d, a[7]^d, a[12]^d, a[17]^d, a[22]^d
		d = c2 ^ bits.RotateLeft64(c4, 1)
		a[3], a[8], a[13], a[18], a[23] = a[3]^d, a[8]^d, a[13]^d, a[18]^d, a[23]^d
		d = c3 ^ bits.RotateLeft64(c0, 1)
		a[4], a[9], a[14], a[19], a[24] = a[4]^d, a[9]^d, a[14]^d, a[19]^d, a[24]^d

		// ρ and π; lane (0, 0) is fixed by both.
		t = a[1]
		t, a[10] = a[10], bits.RotateLeft64(t, 1)
		t, a[7] = a[7], bits.RotateLeft64(t, 3)
		t, a[11] = a[11], bits.RotateLeft64(t, 6)
		t, a[17] = a[17], bits.RotateLeft64(t, 10)
		t, a[18] = a[18], bits.RotateLeft64(t, 15)
		t, a[3] = a[3], bits.RotateLeft64(t, 21)
		t, a[5] = a[5], bits.RotateLeft64(t, 28)
		t, a[16] = a[16], bits.RotateLeft64(t, 36)
		t, a[8] = a[8], bits.RotateLeft64(t, 45)
		t, a[21] = a[21], bits.RotateLeft64(t, 55)
		t, a[24] = a[24], bits.RotateLeft64(t, 2)
		t, a[4] = a[4], bits.RotateLeft64(t, 14)
		t, a[15] = a[15], bits.RotateLeft64(t, 27)
		t, a[23] = a[23], bits.RotateLeft64(t, 41)
		t, a[19] = a[19], bits.RotateLeft64(t, 56)
		t, a[13] = a[13], bits.RotateLeft64(t, 8)
		t, a[12] = a[12], bits.RotateLeft64(t, 25)
		t, a[2] = a[2], bits.RotateLeft64(t, 43)
		t, a[20] = a[20], bits.RotateLeft64(t, 62)
		t, a[14] = a[14], bits.RotateLeft64(t, 18)
		t, a[22] = a[22], bits.RotateLeft64(t, 39)
		t, a[9] = a[9], bits.RotateLeft64(t, 61)
		t, a[6] = a[6], bits.RotateLeft64(t, 20)
		a[1] = bits.RotateLeft64(t, 44)

		// χ
		c0, c1, c2, c3, c4 = a[0], a[1], a[2], a[3], a[4]
		a[0], a[1], a[2], a[3], a[4] = c0^(c2&^c1), c1^(c3&^c2), c2^(c4&^c3), c3^(c0&^c4), c4^(c1&^c0)
		c0, c1, c2, c3, c4 = a[5], a[6], a[7], a[8], a[9]
		a[5], a[6], a[7], a[8], a[9] = c0^(c2&^c1), c1^(c3&^c2), c2^(c4&^c3), c3^(c0&^c4), c4^(c1&^c0)
		c0, c1, c2, c3, c4 = a[10], a[11], a[12], a[13], a[14]
		a[10], a[11], a[12], a[13], a[14] = c0^(c2&^c1), c1^(c3&^c2), c2^(c4&^c3), c3^(c0&^c4), c4^(c1&^c0)
		c0, c1, c2, c3, c4 = a[15], a[16], a[17], a[18], a[19]
		a[15], a[16], a[17], a[18], a[19] = c0^(c2&^c1), c1^(c3&^c2), c2^(c4&^c3), c3^(c0&^c4), c4^(c1&^c0)
		c0, c1, c2, c3, c4 = a[20], a[21], a[22], a[23], a[24]
		a[20], a[21], a[22], a[23], a[24] = c0^(c2&^c1), c1^(c3&^c2), c2^(c4&^c3), c3^(c0&^c4), c4^(c1&^c0)

		// ι
		a[0] ^= rc
	}
}
