//go:build keccakref

package keccak

// Implementation names the round function selected at build time.
const Implementation = "reference"

func keccakP(a *[Lanes]uint64, rounds int) {
	keccakPReference(a, rounds)
}
