// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"

	"github.com/avdva/binfloat/internal/mathutil"
)

// maxExpBits keeps a biased exponent inside an int64.
const maxExpBits = 62

// Layout reports the widths of the fields of a Float.
// Layouts are zero-size types and only their methods are used,
// so a Float of one layout can not be mixed with a Float of another.
//
// A valid layout has at least one mantissa bit and between 2 and 62
// exponent bits. Using an invalid layout panics.
type Layout interface {
	// MantBits returns the number of stored mantissa bits, excluding the implicit leading one.
	MantBits() int
	// ExpBits returns the number of exponent bits.
	ExpBits() int
}

type (
	// Binary16 is the IEEE-754 half precision layout.
	Binary16 struct{}
	// Binary32 is the IEEE-754 single precision layout.
	Binary32 struct{}
	// Binary64 is the IEEE-754 double precision layout.
	Binary64 struct{}
	// Binary128 is the IEEE-754 quadruple precision layout.
	Binary128 struct{}
	// Binary256 is the IEEE-754 octuple precision layout.
	Binary256 struct{}
	// Wide has a 64-bit mantissa and a 16-bit exponent.
	Wide struct{}
)

func (Binary16) MantBits() int  { return 10 }
func (Binary16) ExpBits() int   { return 5 }
func (Binary32) MantBits() int  { return 23 }
func (Binary32) ExpBits() int   { return 8 }
func (Binary64) MantBits() int  { return 52 }
func (Binary64) ExpBits() int   { return 11 }
func (Binary128) MantBits() int { return 112 }
func (Binary128) ExpBits() int  { return 15 }
func (Binary256) MantBits() int { return 236 }
func (Binary256) ExpBits() int  { return 19 }
func (Wide) MantBits() int      { return 64 }
func (Wide) ExpBits() int       { return 16 }

type (
	Half    = Float[Binary16]
	Single  = Float[Binary32]
	Double  = Float[Binary64]
	Quad    = Float[Binary128]
	Octuple = Float[Binary256]
)

func widths[L Layout]() (mantBits, expBits int) {
	var l L
	mantBits, expBits = l.MantBits(), l.ExpBits()
	if mantBits < 1 || expBits < 2 || expBits > maxExpBits {
		panic(fmt.Sprintf("binfloat: invalid layout %T: %d mantissa bits, %d exponent bits", l, mantBits, expBits))
	}
	return mantBits, expBits
}

// Bias returns the exponent bias of the layout, 2^(E-1) - 1.
func Bias[L Layout]() int64 {
	_, eb := widths[L]()
	return mathutil.Bias(eb)
}

// LayoutName returns a short description of the layout, like "binfloat.Wide(64/16)".
func LayoutName[L Layout]() string {
	var l L
	mb, eb := widths[L]()
	return fmt.Sprintf("%T(%d/%d)", l, mb, eb)
}
