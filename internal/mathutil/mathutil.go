package mathutil

import (
	"math"
	"math/bits"
	"unsafe"
)

// WordBits is the number of bits in a storage word.
const WordBits = int(unsafe.Sizeof(uint64(0)) * 8)

// WordsFor returns the number of words needed to hold n bits.
func WordsFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + WordBits - 1) / WordBits
}

// BytesFor returns the number of bytes needed to hold n bits.
func BytesFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 7) / 8
}

// LowMask returns a word with the n least significant bits set.
func LowMask(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n >= WordBits:
		return math.MaxUint64
	}
	return 1<<uint(n) - 1
}

// BinaryDigits returns the number of significant bits in value, 0 for 0.
func BinaryDigits(value uint64) int {
	return WordBits - bits.LeadingZeros64(value)
}

// Bias returns the exponent bias of an expBits-wide exponent field: 2^(expBits-1) - 1.
func Bias(expBits int) int64 {
	return 1<<(expBits-1) - 1
}

// MaxBiased returns the all-ones value of an expBits-wide exponent field.
func MaxBiased(expBits int) int64 {
	return 1<<expBits - 1
}

// Uint64Cmp returns -1 if a < b, 0 if a == b, 1 if a > b.
func Uint64Cmp(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Clamp limits v to [lo, hi] and returns it as an int.
func Clamp(v, lo, hi int64) int {
	if v < lo {
		return int(lo)
	}
	if v > hi {
		return int(hi)
	}
	return int(v)
}
