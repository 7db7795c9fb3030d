// Package bitfield implements a fixed-width field of bits stored in 64-bit words.
//
// Bit i lives in word i/64 at position i%64. Bits at or above the declared
// width are never set: writes to them are ignored and reads return false.
// Missing words (a nil or short slice) read as zeros.
package bitfield

import (
	"math/bits"

	"github.com/avdva/binfloat/internal/mathutil"
)

const wordBits = mathutil.WordBits

// Field is a view of width bits over a word slice.
// Field values share their words, so a copy of a Field writes to the same storage.
type Field struct {
	words []uint64
	width int
}

// New allocates a zeroed field of the given width.
func New(width int) Field {
	return Field{words: make([]uint64, mathutil.WordsFor(width)), width: width}
}

// View returns a field over words without copying them.
func View(width int, words []uint64) Field {
	return Field{words: words, width: width}
}

// FromWords returns a new field holding a copy of words, truncated to width.
func FromWords(width int, words []uint64) Field {
	f := New(width)
	copy(f.words, words)
	f.maskTail()
	return f
}

// FromBytes returns a new field from little-endian bytes, truncated to width.
func FromBytes(width int, b []byte) Field {
	f := New(width)
	for i, c := range b {
		w := i / 8
		if w >= len(f.words) {
			break
		}
		f.words[w] |= uint64(c) << (8 * uint(i%8))
	}
	f.maskTail()
	return f
}

func (f Field) maskTail() {
	if rem := f.width % wordBits; rem != 0 && len(f.words) > 0 {
		f.words[len(f.words)-1] &= mathutil.LowMask(rem)
	}
}

func (f Field) word(i int) uint64 {
	if i < len(f.words) {
		return f.words[i]
	}
	return 0
}

func (f Field) wordCount() int {
	return mathutil.WordsFor(f.width)
}

// Width returns the number of logical bits.
func (f Field) Width() int {
	return f.width
}

// Bit reports whether bit i is set.
func (f Field) Bit(i int) bool {
	if i < 0 || i >= f.width {
		return false
	}
	return f.word(i/wordBits)>>uint(i%wordBits)&1 == 1
}

// SetBit sets bit i to v. Out of range indices are ignored.
func (f Field) SetBit(i int, v bool) {
	if i < 0 || i >= f.width {
		return
	}
	w := i / wordBits
	if w >= len(f.words) {
		return
	}
	mask := uint64(1) << uint(i%wordBits)
	if v {
		f.words[w] |= mask
	} else {
		f.words[w] &^= mask
	}
}

// Fill sets every bit of the field to v.
func (f Field) Fill(v bool) {
	var w uint64
	if v {
		w = ^w
	}
	for i := range f.words {
		f.words[i] = w
	}
	f.maskTail()
}

// IsZero reports whether no bit is set.
func (f Field) IsZero() bool {
	for _, w := range f.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsFull reports whether every bit is set. An empty field is full.
func (f Field) IsFull() bool {
	n := f.wordCount()
	for i := 0; i < n; i++ {
		want := ^uint64(0)
		if i == n-1 {
			if rem := f.width % wordBits; rem != 0 {
				want = mathutil.LowMask(rem)
			}
		}
		if f.word(i) != want {
			return false
		}
	}
	return true
}

// Uint64 returns the lowest 64 bits, bit i having the weight 2^i.
func (f Field) Uint64() uint64 {
	return f.word(0)
}

// SetUint64 stores v into the lowest min(64, width) bits.
func (f Field) SetUint64(v uint64) {
	if len(f.words) == 0 {
		return
	}
	f.words[0] = v
	if f.width < wordBits {
		f.words[0] &= mathutil.LowMask(f.width)
	}
}

// Leading returns the first n stored bits (n <= 64) as an integer,
// bit 0 becoming the most significant bit of the result.
func (f Field) Leading(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n > wordBits {
		n = wordBits
	}
	return bits.Reverse64(f.word(0)) >> uint(wordBits-n)
}

// SetLeading stores the low n bits of v (n <= 64) as the first n bits of
// the field, most significant bit first: bit i becomes bit n-1-i of v.
func (f Field) SetLeading(v uint64, n int) {
	if n <= 0 || len(f.words) == 0 {
		return
	}
	if n > wordBits {
		n = wordBits
	}
	mask := mathutil.LowMask(n)
	if f.width < n {
		mask = mathutil.LowMask(f.width)
	}
	rev := bits.Reverse64(v << uint(wordBits-n))
	f.words[0] = f.words[0]&^mask | rev&mask
}

// Words returns a copy of the field words.
func (f Field) Words() []uint64 {
	out := make([]uint64, f.wordCount())
	copy(out, f.words)
	return out
}

// Bytes returns the field as ceil(width/8) little-endian bytes.
func (f Field) Bytes() []byte {
	out := make([]byte, mathutil.BytesFor(f.width))
	for i := range out {
		out[i] = byte(f.word(i/8) >> (8 * uint(i%8)))
	}
	return out
}

// Equal reports whether both fields have the same width and bits.
func (f Field) Equal(g Field) bool {
	if f.width != g.width {
		return false
	}
	for i := 0; i < f.wordCount(); i++ {
		if f.word(i) != g.word(i) {
			return false
		}
	}
	return true
}

// Cmp compares the fields as unsigned integers, bit width-1 being the most significant.
// Returns -1 if f < g, 0 if f == g, 1 if f > g.
func (f Field) Cmp(g Field) int {
	n := max(f.wordCount(), g.wordCount())
	for i := n - 1; i >= 0; i-- {
		if r := mathutil.Uint64Cmp(f.word(i), g.word(i)); r != 0 {
			return r
		}
	}
	return 0
}

// CmpLeading compares the fields as binary fractions, bit 0 being the most significant.
// Returns -1 if f < g, 0 if f == g, 1 if f > g.
func (f Field) CmpLeading(g Field) int {
	n := max(f.wordCount(), g.wordCount())
	for i := 0; i < n; i++ {
		if r := mathutil.Uint64Cmp(bits.Reverse64(f.word(i)), bits.Reverse64(g.word(i))); r != 0 {
			return r
		}
	}
	return 0
}
