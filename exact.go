// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/avdva/binfloat/internal/bitfield"
	"github.com/avdva/binfloat/internal/mathutil"
)

// maxDecimalShift limits the binary exponent of values converted to decimals.
const maxDecimalShift = 1 << 20

// significand returns a finite nonzero f as sig * 2^exp2,
// where sig holds the implicit one followed by all mantissa bits.
func (f Float[L]) significand() (sig *big.Int, exp2 int64) {
	mb, eb := widths[L]()
	mant, exp := f.fields()
	sig = new(big.Int).SetBit(new(big.Int), mb, 1)
	for i := 0; i < mb; i++ {
		if mant.Bit(i) {
			sig.SetBit(sig, mb-1-i, 1)
		}
	}
	return sig, int64(exp.Uint64()) - mathutil.Bias(eb) - int64(mb)
}

// BigFloat returns the exact value of f with M+1 bits of precision.
// Returns an error for NaNs and for exponents beyond the big.Float range.
func (f Float[L]) BigFloat() (*big.Float, error) {
	mb, _ := widths[L]()
	z := new(big.Float).SetPrec(uint(mb + 1))
	switch f.Class() {
	case ClassNaN:
		return nil, errNaN
	case ClassInf:
		return z.SetInf(f.neg), nil
	case ClassZero:
		if f.neg {
			z.Neg(z)
		}
		return z, nil
	}
	sig, exp2 := f.significand()
	if e := exp2 + int64(mb) + 1; e < big.MinExp || e > big.MaxExp {
		return nil, errRange
	}
	z.SetInt(sig)
	z.SetMantExp(z, int(exp2))
	if f.neg {
		z.Neg(z)
	}
	return z, nil
}

// FromBigFloat returns x with the layout L.
// Extra mantissa bits are truncated, out of range values become
// infinities or zeros of the same sign.
func FromBigFloat[L Layout](x *big.Float) Float[L] {
	mb, eb := widths[L]()
	neg := x.Signbit()
	switch {
	case x.IsInf():
		return special[L](neg, false)
	case x.Sign() == 0:
		return Float[L]{neg: neg}
	}
	// x = m * 2^e, 0.5 <= |m| < 1.
	m := new(big.Float)
	biased := int64(x.MantExp(m)) - 1 + mathutil.Bias(eb)
	if biased <= 0 {
		return Float[L]{neg: neg}
	}
	if biased >= mathutil.MaxBiased(eb) {
		return special[L](neg, false)
	}
	m.Abs(m)
	sig, _ := m.SetMantExp(m, mb+1).Int(nil)
	exp := bitfield.New(eb)
	exp.SetUint64(uint64(biased))
	mant := bitfield.New(mb)
	for i := 0; i < mb; i++ {
		mant.SetBit(i, sig.Bit(mb-1-i) == 1)
	}
	return Float[L]{mant: mant.Words(), exp: exp.Words(), neg: neg}
}

// Decimal returns the exact decimal value of f.
// Negative zeros become zeros. Returns an error for infinities and NaNs.
func (f Float[L]) Decimal() (decimal.Decimal, error) {
	switch f.Class() {
	case ClassNaN, ClassInf:
		return decimal.Zero, errNotFinite
	case ClassZero:
		return decimal.Zero, nil
	}
	sig, exp2 := f.significand()
	if exp2 > maxDecimalShift || exp2 < -maxDecimalShift {
		return decimal.Zero, errRange
	}
	if exp2 >= 0 {
		sig.Lsh(sig, uint(exp2))
		exp2 = 0
	} else { // sig * 2^-k = sig * 5^k * 10^-k
		sig.Mul(sig, new(big.Int).Exp(big.NewInt(5), big.NewInt(-exp2), nil))
	}
	if f.neg {
		sig.Neg(sig)
	}
	return decimal.NewFromBigInt(sig, int32(exp2)), nil
}

// FromDecimal returns the value of d rounded to the nearest value of the layout L.
func FromDecimal[L Layout](d decimal.Decimal) Float[L] {
	mb, _ := widths[L]()
	return FromBigFloat[L](new(big.Float).SetPrec(uint(mb + 1)).SetRat(d.Rat()))
}
