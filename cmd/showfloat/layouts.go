// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/avdva/binfloat"
)

type layoutFuncs struct {
	name string
	show func(w io.Writer, s string) error
	ops  func(w io.Writer, x, y string) error
}

var layouts = []layoutFuncs{
	newLayoutFuncs[binfloat.Binary16]("binary16"),
	newLayoutFuncs[binfloat.Binary32]("binary32"),
	newLayoutFuncs[binfloat.Binary64]("binary64"),
	newLayoutFuncs[binfloat.Binary128]("binary128"),
	newLayoutFuncs[binfloat.Binary256]("binary256"),
	newLayoutFuncs[binfloat.Wide]("wide"),
}

func newLayoutFuncs[L binfloat.Layout](name string) layoutFuncs {
	return layoutFuncs{
		name: name,
		show: func(w io.Writer, s string) error {
			f, err := binfloat.FromString[L](s)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%v\t%v\n", name, bitPattern(f), f, f.Class())
			return nil
		},
		ops: func(w io.Writer, xs, ys string) error {
			x, err := binfloat.FromString[L](xs)
			if err != nil {
				return err
			}
			y, err := binfloat.FromString[L](ys)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s + %s\t%v\n", name, xs, ys, x.Add(y))
			fmt.Fprintf(w, "%s\t%s - %s\t%v\n", name, xs, ys, x.Sub(y))
			fmt.Fprintf(w, "%s\t%s * %s\t%v\n", name, xs, ys, x.Mul(y))
			if q, err := x.Quo(y); err != nil {
				fmt.Fprintf(w, "%s\t%s / %s\t%v\n", name, xs, ys, err)
			} else {
				fmt.Fprintf(w, "%s\t%s / %s\t%v\n", name, xs, ys, q)
			}
			return nil
		},
	}
}

// bitPattern returns the sign, exponent and mantissa of f as binary digits,
// most significant bit first.
func bitPattern[L binfloat.Layout](f binfloat.Float[L]) string {
	var l L
	var sb strings.Builder
	sb.Grow(l.ExpBits() + l.MantBits() + 2)
	sb.WriteByte(bitChar(f.Signbit()))
	sb.WriteByte(' ')
	for i := l.ExpBits() - 1; i >= 0; i-- {
		sb.WriteByte(bitChar(f.ExpBit(i)))
	}
	sb.WriteByte(' ')
	for i := 0; i < l.MantBits(); i++ {
		sb.WriteByte(bitChar(f.MantBit(i)))
	}
	return sb.String()
}

func bitChar(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

func layoutNames() string {
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.name
	}
	return strings.Join(names, ", ")
}

func parseLayouts(s string) ([]layoutFuncs, error) {
	var result []layoutFuncs
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "all" {
			return layouts, nil
		}
		found := false
		for _, l := range layouts {
			if l.name == name {
				result = append(result, l)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown layout %q, available: %s", name, layoutNames())
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no layouts selected")
	}
	return result, nil
}
