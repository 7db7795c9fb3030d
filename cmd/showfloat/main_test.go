// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/avdva/binfloat"
	"github.com/stretchr/testify/assert"
)

func TestParseLayouts(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s     string
		names []string
		err   bool
	}{
		{"binary64,wide", []string{"binary64", "wide"}, false},
		{" Binary16 , ,binary256", []string{"binary16", "binary256"}, false},
		{"all", []string{"binary16", "binary32", "binary64", "binary128", "binary256", "wide"}, false},
		{"binary8", nil, true},
		{"", nil, true},
		{",", nil, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := parseLayouts(test.s)
			if test.err {
				a.Error(err)
				return
			}
			if !a.NoError(err) {
				return
			}
			var names []string
			for _, l := range res {
				names = append(names, l.name)
			}
			a.Equal(test.names, names)
		})
	}
}

func TestBitPattern(t *testing.T) {
	a := assert.New(t)
	a.Equal("0 01111 1000000000", bitPattern(binfloat.FromFloat64[binfloat.Binary16](1.5)))
	a.Equal("1 11111 0000000000", bitPattern(binfloat.Inf[binfloat.Binary16](-1)))
	a.Equal("0 00000000 00000000000000000000000", bitPattern(binfloat.Single{}))
}

func TestRun(t *testing.T) {
	a := assert.New(t)
	defer binfloat.SetLogger(binfloat.Logger())

	var out bytes.Buffer
	if !a.NoError(run(&CLI{Values: []string{"1", "3"}, Layouts: "binary16"}, &out)) {
		return
	}
	s := out.String()
	a.Contains(s, "0011110000000000")
	a.Contains(s, "3f800000")
	a.Contains(s, "3ff0000000000000")
	a.Contains(s, "00 00 00 00 00 00 00 80 ff 3f")
	a.Contains(s, "0 01111 0000000000")
	a.Contains(s, "0 10000 1000000000")
	a.Regexp(`binary16\s+1 / 3\s+0\.3333`, s)
	a.Regexp(`binary16\s+1 \+ 3\s+4`, s)

	out.Reset()
	if a.NoError(run(&CLI{Values: []string{"2", "0"}, Layouts: "wide"}, &out)) {
		a.Regexp(`wide\s+2 / 0\s+division by zero`, out.String())
	}

	out.Reset()
	if a.NoError(run(&CLI{Layouts: "all"}, &out)) {
		a.Equal(len(cornerCases), strings.Count(out.String(), "value "))
		a.Contains(out.String(), "NaN")
		a.Contains(out.String(), "-Inf")
	}

	a.Error(run(&CLI{Values: []string{"abc"}, Layouts: "binary64"}, &out))
	a.Error(run(&CLI{Values: []string{"1"}, Layouts: "binary8"}, &out))
	// values beyond float64 are still shown in wider layouts.
	out.Reset()
	if a.NoError(run(&CLI{Values: []string{"1e400"}, Layouts: "binary128"}, &out)) {
		a.Contains(out.String(), "1e+400")
	}
}
