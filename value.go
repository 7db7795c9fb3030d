// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package binfloat implements floating-point values with configurable
// mantissa and exponent widths.
// A Float stores its fields bit by bit in 64-bit words, the way an IEEE-754
// number would be laid out if its fields had the widths of the Layout:
//
//	sign  exponent (E bits, biased by 2^(E-1)-1)  mantissa (M bits, implicit leading 1)
//
// Values can be built from and converted to float64, compared, serialized,
// and combined with arithmetic that is carried out in float64.
package binfloat

import (
	"math"

	"github.com/avdva/binfloat/internal/bitfield"
	"github.com/avdva/binfloat/internal/mathutil"
)

const (
	f64ExpBits  = 11
	f64MantBits = 52

	f64ExpMask  = 1<<f64ExpBits - 1
	f64MantMask = 1<<f64MantBits - 1
	f64Bias     = 1<<(f64ExpBits-1) - 1

	// ldexp handles exponents far beyond the float64 range, clamping keeps them inside an int.
	maxLdexp = 1 << 20
)

// Class is a category of floating-point values.
type Class int

const (
	// ClassZero is a positive or negative zero. Patterns with a zero exponent decode as zeros.
	ClassZero Class = iota
	// ClassFinite is a nonzero finite value.
	ClassFinite
	// ClassInf is a positive or negative infinity.
	ClassInf
	// ClassNaN is a not-a-number.
	ClassNaN
)

func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassFinite:
		return "finite"
	case ClassInf:
		return "inf"
	case ClassNaN:
		return "nan"
	default:
		return "unknown"
	}
}

// Float is a floating-point number with the field widths of L.
// The zero value is +0.
// Floats are immutable: copies may share their words.
type Float[L Layout] struct {
	mant []uint64
	exp  []uint64
	neg  bool
}

// fields returns read-only views of the mantissa and the exponent.
func (f Float[L]) fields() (mant, exp bitfield.Field) {
	mb, eb := widths[L]()
	return bitfield.View(mb, f.mant), bitfield.View(eb, f.exp)
}

func special[L Layout](neg, nan bool) Float[L] {
	mb, eb := widths[L]()
	exp := bitfield.New(eb)
	exp.Fill(true)
	var mant []uint64
	if nan {
		m := bitfield.New(mb)
		m.SetBit(0, true)
		mant = m.Words()
	}
	return Float[L]{mant: mant, exp: exp.Words(), neg: neg}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf[L Layout](sign int) Float[L] {
	return special[L](sign < 0, false)
}

// NaN returns the canonical quiet not-a-number: all exponent bits and
// the first mantissa bit set.
func NaN[L Layout]() Float[L] {
	return special[L](false, true)
}

// FromFloat64 returns the value of d with the layout L.
// Extra mantissa bits of d are truncated if L has less than 52 mantissa bits.
// Values too large for the exponent become infinities, values too small, as well
// as subnormal float64 values, become zeros of the same sign.
// NaN payloads are not preserved.
func FromFloat64[L Layout](d float64) Float[L] {
	mb, eb := widths[L]()
	b := math.Float64bits(d)
	neg := b>>63 == 1
	e := int64(b >> f64MantBits & f64ExpMask)
	frac := b & f64MantMask
	switch e {
	case 0:
		return Float[L]{neg: neg}
	case f64ExpMask:
		return special[L](neg, frac != 0)
	}
	biased := e - f64Bias + mathutil.Bias(eb)
	if biased <= 0 {
		return Float[L]{neg: neg}
	}
	if biased >= mathutil.MaxBiased(eb) {
		return special[L](neg, false)
	}
	exp := bitfield.New(eb)
	exp.SetUint64(uint64(biased))
	mant := bitfield.New(mb)
	n := min(mb, f64MantBits)
	mant.SetLeading(frac>>uint(f64MantBits-n), n)
	return Float[L]{mant: mant.Words(), exp: exp.Words(), neg: neg}
}

// FromFields returns a value built from raw field words.
// Bit i of the exponent is bit i%64 of expWords[i/64], bit i of the mantissa
// (bit 0 being the most significant fraction bit) is bit i%64 of mantWords[i/64].
// The words are copied, bits beyond the field widths are dropped.
func FromFields[L Layout](neg bool, expWords, mantWords []uint64) Float[L] {
	mb, eb := widths[L]()
	return Float[L]{
		mant: bitfield.FromWords(mb, mantWords).Words(),
		exp:  bitfield.FromWords(eb, expWords).Words(),
		neg:  neg,
	}
}

// Float64 returns the nearest float64 to f.
// Only the first 53 mantissa bits are used, the rest are truncated.
// Exponents beyond the float64 range produce infinities or zeros.
func (f Float[L]) Float64() float64 {
	mb, eb := widths[L]()
	mant, exp := f.fields()
	var r float64
	switch {
	case exp.IsZero():
	case exp.IsFull():
		if !mant.IsZero() {
			return math.NaN()
		}
		r = math.Inf(1)
	default:
		n := min(mb, f64MantBits+1)
		frac := math.Ldexp(float64(mant.Leading(n)), -n)
		e := int64(exp.Uint64()) - mathutil.Bias(eb)
		r = math.Ldexp(1+frac, mathutil.Clamp(e, -maxLdexp, maxLdexp))
	}
	if f.neg {
		return math.Copysign(r, -1)
	}
	return r
}

// Class returns the category of f.
func (f Float[L]) Class() Class {
	mant, exp := f.fields()
	switch {
	case exp.IsZero():
		return ClassZero
	case !exp.IsFull():
		return ClassFinite
	case mant.IsZero():
		return ClassInf
	default:
		return ClassNaN
	}
}

// IsZero returns true if f is a positive or negative zero.
func (f Float[L]) IsZero() bool {
	return f.Class() == ClassZero
}

// IsNaN returns true if f is a not-a-number.
func (f Float[L]) IsNaN() bool {
	return f.Class() == ClassNaN
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Float[L]) IsInf(sign int) bool {
	if f.Class() != ClassInf {
		return false
	}
	return sign == 0 || (sign > 0) != f.neg
}

// Signbit returns true if the sign bit of f is set.
func (f Float[L]) Signbit() bool {
	return f.neg
}

// Neg returns -f.
func (f Float[L]) Neg() Float[L] {
	f.neg = !f.neg
	return f
}

// Abs returns |f|.
func (f Float[L]) Abs() Float[L] {
	f.neg = false
	return f
}

// ExpBit returns exponent bit i, bit 0 being the least significant.
func (f Float[L]) ExpBit(i int) bool {
	_, exp := f.fields()
	return exp.Bit(i)
}

// MantBit returns mantissa bit i, bit 0 being the most significant.
func (f Float[L]) MantBit(i int) bool {
	mant, _ := f.fields()
	return mant.Bit(i)
}

// Biased returns the raw exponent field.
func (f Float[L]) Biased() uint64 {
	_, exp := f.fields()
	return exp.Uint64()
}

// ExpWords returns a copy of the exponent words.
func (f Float[L]) ExpWords() []uint64 {
	_, exp := f.fields()
	return exp.Words()
}

// MantWords returns a copy of the mantissa words.
func (f Float[L]) MantWords() []uint64 {
	mant, _ := f.fields()
	return mant.Words()
}

// Eq returns true if f and g have the same bit pattern.
// Unlike float64 comparison, +0 and -0 differ, and a NaN equals itself.
// Use NumEq to compare decoded values.
func (f Float[L]) Eq(g Float[L]) bool {
	fm, fe := f.fields()
	gm, ge := g.fields()
	return f.neg == g.neg && fe.Equal(ge) && fm.Equal(gm)
}

// NumEq returns true if f and g decode to equal float64 values.
func (f Float[L]) NumEq(g Float[L]) bool {
	return f.Float64() == g.Float64()
}

// Cmp compares bit patterns of two values, giving a total order:
// negative values precede positive ones, then values are ordered by exponent
// and mantissa, in reverse for negative values.
// -0 precedes +0, and NaNs follow infinities of the same sign.
// Returns -1 if f < g, 0 if f == g, 1 if f > g
func (f Float[L]) Cmp(g Float[L]) int {
	if f.neg != g.neg {
		if f.neg {
			return -1
		}
		return 1
	}
	fm, fe := f.fields()
	gm, ge := g.fields()
	r := fe.Cmp(ge)
	if r == 0 {
		r = fm.CmpLeading(gm)
	}
	if f.neg {
		return -r
	}
	return r
}

// Less returns f.Cmp(g) < 0.
func (f Float[L]) Less(g Float[L]) bool {
	return f.Cmp(g) < 0
}
