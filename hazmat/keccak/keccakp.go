//go:build !keccakref

package keccak

// Implementation names the round function selected at build time.
const Implementation = "unrolled"

func keccakP(a *[Lanes]uint64, rounds int) {
	keccakPUnrolled(a, rounds)
}
