// Package mem provides word-oriented XOR helpers for the permutation's absorb paths.
package mem

// Word is the set of element types XORInPlace operates on.
type Word interface {
	~uint8 | ~uint32 | ~uint64
}

// XORInPlace sets dst[i] ^= src[i] for each i in dst. It panics if src is shorter than dst.
func XORInPlace[T Word](dst, src []T) {
	for i, s := range src[:len(dst)] {
		dst[i] ^= s
	}
}
