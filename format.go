// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// String returns the shortest decimal representation that identifies f
// among the values of its layout, like "1.5", "-0", "+Inf" or "NaN".
func (f Float[L]) String() string {
	z, err := f.BigFloat()
	if err != nil {
		return strconv.FormatFloat(f.Float64(), 'g', -1, 64)
	}
	s := z.Text('g', -1)
	if f.Class() != ClassFinite || f.parsesBack(s) {
		return s
	}
	// the shortest form assumes a symmetric rounding interval, which is not
	// the case for powers of two: the value below is closer than the one above.
	mb, _ := widths[L]()
	// mb+2 digits always suffice.
	for digits := 1; digits < mb+2; digits++ {
		if s = z.Text('g', digits); f.parsesBack(s) {
			return s
		}
	}
	return z.Text('g', mb+2)
}

func (f Float[L]) parsesBack(s string) bool {
	g, err := FromString[L](s)
	return err == nil && g.Eq(f)
}

// Format implements fmt.Formatter.
// It accepts the verbs of *big.Float ('e', 'E', 'f', 'F', 'g', 'G', 'b', 'p', 'x', 'X', 'v'),
// 's' for the String form, and '#v' for the GoString form.
func (f Float[L]) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('#'):
		io.WriteString(s, f.GoString())
		return
	case verb == 's':
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.String())
		return
	}
	z, err := f.BigFloat()
	if err != nil {
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.Float64())
		return
	}
	z.Format(s, verb)
}

// GoString returns a Go expression that rebuilds f, like
// "binfloat.FromFields[binfloat.Binary16](false, []uint64{0xf}, []uint64{0x0})".
func (f Float[L]) GoString() string {
	var l L
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("binfloat.FromFields[%T](%t, ", l, f.neg))
	writeWords(&builder, f.ExpWords())
	builder.WriteString(", ")
	writeWords(&builder, f.MantWords())
	builder.WriteRune(')')
	return builder.String()
}

func writeWords(builder *strings.Builder, words []uint64) {
	builder.WriteString("[]uint64{")
	for i, w := range words {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString("0x")
		builder.WriteString(strconv.FormatUint(w, 16))
	}
	builder.WriteRune('}')
}

// FromString parses s and rounds it to the nearest value of the layout L.
// It accepts decimal and hexadecimal floating-point literals, as well as
// "Inf" and "NaN" with an optional sign, and ignores surrounding spaces.
func FromString[L Layout](s string) (Float[L], error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Float[L]{}, errEmpty
	}
	if strings.EqualFold(strings.TrimLeft(s, "+-"), "nan") {
		return NaN[L](), nil
	}
	mb, _ := widths[L]()
	z, _, err := big.ParseFloat(s, 0, uint(mb+1), big.ToNearestEven)
	if err != nil {
		return Float[L]{}, fmt.Errorf("parsing failed: %w", err)
	}
	return FromBigFloat[L](z), nil
}

// MustFromString parses s into a value.
// Panics on error.
func MustFromString[L Layout](s string) Float[L] {
	f, err := FromString[L](s)
	if err != nil {
		panic(err)
	}
	return f
}
