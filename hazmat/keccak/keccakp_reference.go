package keccak

import "math/bits"

// keccakPReference applies the last rounds rounds of Keccak-p[1600] to a, one step at a time. It is the readable
// reference for keccakPUnrolled.
func keccakPReference(a *[Lanes]uint64, rounds int) {
	for _, rc := range roundConstants[Rounds-rounds:] {
		theta(a)
		rhoPi(a)
		chi(a)
		iotaStep(a, rc)
	}
}

// theta XORs each lane with the parities of the two neighboring columns, one of them rotated by a bit.
func theta(a *[Lanes]uint64) {
	var c [5]uint64
	for x := range 5 {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}

	for x := range 5 {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < Lanes; y += 5 {
			a[x+y] ^= d
		}
	}
}

// rhoPi rotates each lane by its fixed offset and moves it to its new grid position.
func rhoPi(a *[Lanes]uint64) {
	var b [Lanes]uint64
	for i, v := range a {
		b[piDestination[i]] = bits.RotateLeft64(v, rotationOffsets[i])
	}
	*a = b
}

// chi combines each lane with the next two lanes of its row: a[x] ^= ^a[x+1] & a[x+2].
func chi(a *[Lanes]uint64) {
	for y := 0; y < Lanes; y += 5 {
		var row [5]uint64
		copy(row[:], a[y:y+5])
		for x := range 5 {
			a[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// iotaStep injects the round constant into lane (0, 0).
func iotaStep(a *[Lanes]uint64, rc uint64) {
	a[0] ^= rc
}
