// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ieee converts between native float32/float64 values and packed
// floating-point bit patterns: IEEE-754 binary16, binary32, binary64, and
// the x87 80-bit extended format.
//
// Every bit pattern decodes to some value (possibly an infinity or NaN), and
// every value encodes to some bit pattern, so the functions here never fail.
package ieee

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	f16ExpBits  = 5
	f16MantBits = 10

	f16SignShift        = f16ExpBits + f16MantBits
	f16ExpMask   uint16 = 1<<f16ExpBits - 1
	f16MantMask  uint16 = 1<<f16MantBits - 1
	f16Bias             = 1<<(f16ExpBits-1) - 1
	f16QuietBit  uint16 = 1 << (f16MantBits - 1)

	// f16MinExp is the unbiased exponent of the smallest normal binary16.
	f16MinExp = 1 - f16Bias
	// f16MinSubExp is the unbiased exponent of the smallest subnormal binary16.
	f16MinSubExp = f16MinExp - f16MantBits
	f16MaxExp    = f16Bias

	f32ExpBits  = 8
	f32MantBits = 23

	f32ExpMask   uint32 = 1<<f32ExpBits - 1
	f32MantMask  uint32 = 1<<f32MantBits - 1
	f32Bias             = 1<<(f32ExpBits-1) - 1
	f32HiddenBit uint32 = f32MantMask + 1

	f32ToF16MantShift = f32MantBits - f16MantBits
)

func split16(h uint16) (neg bool, exp, frac uint16) {
	return h>>f16SignShift == 1, h >> f16MantBits & f16ExpMask, h & f16MantMask
}

// Decode16 converts a binary16 bit pattern to a float32.
// The conversion is exact; NaN payloads are not preserved.
func Decode16(h uint16) float32 {
	neg, exp, frac := split16(h)
	var r float32
	switch exp {
	case 0: // zero or subnormal: frac * 2^-24
		r = float32(math.Ldexp(float64(frac), f16MinSubExp))
	case f16ExpMask:
		if frac != 0 {
			r = float32(math.NaN())
		} else {
			r = float32(math.Inf(1))
		}
	default:
		r = float32(math.Ldexp(1+float64(frac)/(1<<f16MantBits), int(exp)-f16Bias))
	}
	if neg {
		return math.Float32frombits(math.Float32bits(r) | 1<<31)
	}
	return r
}

// Encode16 converts a float32 to a binary16 bit pattern.
// Extra mantissa bits are truncated. Values above the binary16 range become
// infinities, values below the smallest subnormal become zeros, and every NaN
// becomes the canonical quiet NaN with the sign of f.
func Encode16(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>31) << f16SignShift
	exp := int32(b>>f32MantBits&f32ExpMask) - f32Bias
	mant := b & f32MantMask
	inf := sign | f16ExpMask<<f16MantBits
	switch {
	case exp == f32Bias+1: // inf or nan
		if mant == 0 {
			return inf
		}
		return inf | f16QuietBit
	case exp > f16MaxExp:
		return inf
	case exp < f16MinExp:
		if exp < f16MinSubExp {
			return sign
		}
		// reinsert the hidden bit and shift so that one unit is 2^-24.
		return sign | uint16((mant|f32HiddenBit)>>uint32(f16MinExp-exp+f32ToF16MantShift))
	}
	return sign | uint16(exp+f16Bias)<<f16MantBits | uint16(mant>>f32ToF16MantShift)
}

// Float16To converts a binary16 bit pattern to any float type.
func Float16To[T constraints.Float](h uint16) T {
	return T(Decode16(h))
}

// Float16From converts any float to a binary16 bit pattern.
// A float64 argument is first rounded to float32.
func Float16From[T constraints.Float](f T) uint16 {
	return Encode16(float32(f))
}

// Decode16Slice decodes src into dst.
// dst must have length >= len(src).
func Decode16Slice(dst []float32, src []uint16) {
	for i := range src {
		dst[i] = Decode16(src[i])
	}
}

// Encode16Slice encodes src into dst.
// dst must have length >= len(src).
func Encode16Slice(dst []uint16, src []float32) {
	for i := range src {
		dst[i] = Encode16(src[i])
	}
}
