// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee

import (
	"encoding/binary"
	"errors"
	"math"
	"math/big"

	"github.com/avdva/binfloat/internal/mathutil"
)

const (
	f80ExpBits  = 15
	f80MantBits = 64
	f80Size     = 10

	f80ExpMask  uint16 = 1<<f80ExpBits - 1
	f80SignBit  uint16 = 1 << f80ExpBits
	f80Bias            = 1<<(f80ExpBits-1) - 1
	f80IntBit   uint64 = 1 << (f80MantBits - 1)
	f80QuietBit uint64 = f80IntBit >> 1

	f64ExpBits  = 11
	f64MantBits = 52

	f64ExpMask  = 1<<f64ExpBits - 1
	f64MantMask = 1<<f64MantBits - 1
	f64Bias     = 1<<(f64ExpBits-1) - 1
	// f64MinSubExp is the exponent of the smallest subnormal binary64, 2^-1074.
	f64MinSubExp = 1 - f64Bias - f64MantBits

	// f80ToF64Shift aligns the 52 fraction bits of a binary64 under the explicit integer bit.
	f80ToF64Shift = f80MantBits - 1 - f64MantBits
)

// ErrNaN is returned when a NaN is converted to a type that cannot hold it.
var ErrNaN = errors.New("ieee: not a number")

// Float80 is an x87 extended precision value:
//
//	79  78            64 63 62                                                 0
//	____|______________|__|___________________________________________________
//	s   eeeeeeeeeeeeeee  i ffffffffffffffffffffffffffffffffffffffffffffffffffff
//
// SignExp holds the sign (bit 15) and the 15-bit exponent (bias 16383).
// Mant holds the 64-bit significand with an explicit integer bit i.
type Float80 struct {
	SignExp uint16
	Mant    uint64
}

// Decode80 splits the 10 byte little-endian x87 representation into its fields.
// Bytes 0-7 are the significand, bytes 8-9 are the sign and exponent.
func Decode80(b [f80Size]byte) Float80 {
	return Float80{
		SignExp: binary.LittleEndian.Uint16(b[8:]),
		Mant:    binary.LittleEndian.Uint64(b[:8]),
	}
}

// Encode80 packs x into the 10 byte little-endian x87 representation.
func Encode80(x Float80) (b [f80Size]byte) {
	binary.LittleEndian.PutUint64(b[:8], x.Mant)
	binary.LittleEndian.PutUint16(b[8:], x.SignExp)
	return b
}

// Float80FromFloat64 returns the exact extended precision value of f.
// Subnormal float64 values are normalized, NaNs are quieted and keep their payload.
func Float80FromFloat64(f float64) Float80 {
	b := math.Float64bits(f)
	sign := uint16(b>>63) << f80ExpBits
	exp := int(b >> f64MantBits & f64ExpMask)
	frac := b & f64MantMask
	switch exp {
	case f64ExpMask:
		if frac == 0 {
			return Float80{SignExp: sign | f80ExpMask, Mant: f80IntBit}
		}
		return Float80{SignExp: sign | f80ExpMask, Mant: f80IntBit | f80QuietBit | frac<<f80ToF64Shift}
	case 0:
		if frac == 0 {
			return Float80{SignExp: sign}
		}
		shift := f80MantBits - mathutil.BinaryDigits(frac)
		return Float80{
			SignExp: sign | uint16(f80Bias+f80MantBits-1+f64MinSubExp-shift),
			Mant:    frac << uint(shift),
		}
	}
	return Float80{
		SignExp: sign | uint16(exp-f64Bias+f80Bias),
		Mant:    f80IntBit | frac<<f80ToF64Shift,
	}
}

func (x Float80) exp() uint16 {
	return x.SignExp & f80ExpMask
}

// Signbit reports whether the sign bit is set.
func (x Float80) Signbit() bool {
	return x.SignExp&f80SignBit != 0
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func (x Float80) IsInf(sign int) bool {
	if x.exp() != f80ExpMask || x.Mant != f80IntBit {
		return false
	}
	return sign == 0 || (sign > 0) != x.Signbit()
}

// IsNaN reports whether x is a NaN. Pseudo-infinities, pseudo-NaNs and
// unnormals (a nonzero exponent with a clear integer bit) are invalid operands
// for an x87 unit and are reported as NaNs too.
func (x Float80) IsNaN() bool {
	switch e := x.exp(); {
	case e == f80ExpMask:
		return x.Mant != f80IntBit
	case e != 0:
		return x.Mant&f80IntBit == 0
	}
	return false
}

// IsZero reports whether x is a positive or negative zero.
func (x Float80) IsZero() bool {
	return x.exp() == 0 && x.Mant == 0
}

// BigFloat returns the exact value of x with 64 bits of precision.
// Returns ErrNaN if x is a NaN.
func (x Float80) BigFloat() (*big.Float, error) {
	if x.IsNaN() {
		return nil, ErrNaN
	}
	z := new(big.Float).SetPrec(f80MantBits)
	if x.IsInf(0) {
		return z.SetInf(x.Signbit()), nil
	}
	e := int(x.exp())
	if e == 0 { // denormals share the exponent of the smallest normal.
		e = 1
	}
	z.SetUint64(x.Mant)
	z.SetMantExp(z, e-f80Bias-(f80MantBits-1))
	if x.Signbit() {
		z.Neg(z)
	}
	return z, nil
}

// Float64 returns x rounded to the nearest float64.
// Values beyond the float64 range become infinities or zeros.
func (x Float80) Float64() float64 {
	z, err := x.BigFloat()
	if err != nil {
		return math.NaN()
	}
	f, _ := z.Float64()
	return f
}

// String returns the shortest decimal representation that identifies x among
// 64-bit precision values.
func (x Float80) String() string {
	z, err := x.BigFloat()
	if err != nil {
		return "NaN"
	}
	return z.Text('g', -1)
}
