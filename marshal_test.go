// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/tinylib/msgp/msgp"
)

func TestMarshalBinary(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f    interface{ MarshalBinary() ([]byte, error) }
		data []byte
	}{
		{FromFloat64[Binary16](1), []byte{0, 0x0f, 0x00, 0x00}},
		{FromFloat64[Binary16](-2), []byte{1, 0x10, 0x00, 0x00}},
		{FromFloat64[Binary16](1.5), []byte{0, 0x0f, 0x01, 0x00}},
		{Half{}, []byte{0, 0, 0, 0}},
		{NaN[Binary16](), []byte{0, 0x1f, 0x01, 0x00}},
		{FromFloat64[Wide](-1.5), []byte{1, 0xff, 0x7f, 1, 0, 0, 0, 0, 0, 0, 0}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			data, err := test.f.MarshalBinary()
			if a.NoError(err) {
				a.Equal(test.data, data)
			}
		})
	}

	for _, d := range []float64{1, -1.5, math.Pi, 1e-300, math.Inf(-1), math.NaN()} {
		f := FromFloat64[demo](d)
		data, err := f.MarshalBinary()
		if !a.NoError(err) {
			continue
		}
		a.Len(data, 1+7+25)
		var back Float[demo]
		if a.NoError(back.UnmarshalBinary(data)) {
			a.True(f.Eq(back), "%v", d)
		}
	}

	var h Half
	a.Error(h.UnmarshalBinary([]byte{0, 1}))
	a.Error(h.UnmarshalBinary([]byte{2, 0x0f, 0, 0}))
	a.Error(h.UnmarshalBinary(nil))
	// bits beyond the field widths are dropped.
	if a.NoError(h.UnmarshalBinary([]byte{1, 0xff, 0xff, 0xff})) {
		a.Equal(uint64(0x1f), h.Biased())
		a.Equal([]uint64{0x3ff}, h.MantWords())
		a.True(h.Signbit())
	}
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	defer func(mode int) { JSONMode = mode }(JSONMode)
	tests := []struct {
		f    Double
		mode int
		json string
	}{
		{FromFloat64[Binary64](1.5), JSONModeString, `"1.5"`},
		{FromFloat64[Binary64](1.5), JSONModeFloat, `1.5`},
		{FromFloat64[Binary64](1.5), JSONModeBits, `{"s":false,"e":"ff03","m":"01000000000000"}`},
		{FromFloat64[Binary64](1.5), JSONModeCompact, `1.5`},
		{FromFloat64[Binary64](-1e-7), JSONModeCompact, `-1e-07`},
		{FromFloat64[Binary64](math.Copysign(0, -1)), JSONModeFloat, `-0`},
		{Inf[Binary64](-1), JSONModeString, `"-Inf"`},
		{Inf[Binary64](-1), JSONModeFloat, `"-Inf"`},
		{Inf[Binary64](1), JSONModeCompact, `{"s":false,"e":"ff07","m":"00000000000000"}`},
		{NaN[Binary64](), JSONModeFloat, `"NaN"`},
		{NaN[Binary64](), JSONModeCompact, `{"s":false,"e":"ff07","m":"01000000000000"}`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			JSONMode = test.mode
			data, err := json.Marshal(test.f)
			if !a.NoError(err) {
				return
			}
			a.Equal(test.json, string(data))
			var back Double
			if a.NoError(json.Unmarshal(data, &back)) {
				a.True(test.f.Eq(back), "%s", data)
			}
		})
	}

	JSONMode = JSONModeCompact
	type order struct {
		Price Float[Wide]  `json:"price"`
		Size  Float[Wide]  `json:"size"`
		Limit *Float[Wide] `json:"limit"`
	}
	data, err := json.Marshal(order{Price: MustFromString[Wide]("1.25"), Size: FromFloat64[Wide](3)})
	if a.NoError(err) {
		a.Equal(`{"price":1.25,"size":3,"limit":null}`, string(data))
	}
	var o order
	if a.NoError(json.Unmarshal([]byte(`{"price":" 1.25 ","size":{"s":true,"e":"0080","m":"0000000000000000"},"limit":null}`), &o)) {
		a.Equal(1.25, o.Price.Float64())
		a.Equal(-2.0, o.Size.Float64())
		a.Nil(o.Limit)
	}

	var f Double
	a.Error(f.UnmarshalJSON(nil))
	a.Error(json.Unmarshal([]byte(`{"s":false,"e":"ff","m":"00000000000000"}`), &f))
	a.Error(json.Unmarshal([]byte(`{"s":false,"e":"zz03","m":"00000000000000"}`), &f))
	a.Error(json.Unmarshal([]byte(`"abc"`), &f))
	a.Error(json.Unmarshal([]byte(`true`), &f))
}

func TestJSONRoundTripBinary16(t *testing.T) {
	a := assert.New(t)
	defer func(mode int) { JSONMode = mode }(JSONMode)
	JSONMode = JSONModeCompact
	for i := 0; i <= math.MaxUint16; i++ {
		h := uint16(i)
		if e := h >> 10 & 0x1f; e == 0 || e == 0x1f {
			continue
		}
		f := halfFromBits(h)
		data, err := json.Marshal(f)
		if !a.NoError(err) {
			return
		}
		var back Half
		if !a.NoError(json.Unmarshal(data, &back)) || !a.True(f.Eq(back), "%#04x: %s", h, data) {
			return
		}
	}
	// powers of two have a closer neighbor below.
	data, err := json.Marshal(FromFloat64[Binary16](0x1p-7))
	if a.NoError(err) {
		a.Equal("0.007812", string(data))
	}
}

func TestCBOR(t *testing.T) {
	a := assert.New(t)
	data, err := cbor.Marshal(FromFloat64[Binary16](1))
	if a.NoError(err) {
		a.Equal([]byte{0x83, 0xf4, 0x41, 0x0f, 0x42, 0x00, 0x00}, data)
	}

	for _, d := range []float64{1, -1.5, math.Pi, 1e-300, math.Inf(1), math.NaN()} {
		f := FromFloat64[Binary256](d)
		data, err := cbor.Marshal(f)
		if !a.NoError(err) {
			continue
		}
		var back Octuple
		if a.NoError(cbor.Unmarshal(data, &back)) {
			a.True(f.Eq(back), "%v", d)
		}
	}

	var h Half
	a.Error(cbor.Unmarshal([]byte{0x83, 0xf4, 0x41, 0x0f, 0x41, 0x00}, &h))
	a.Error(cbor.Unmarshal([]byte{0x82, 0xf4, 0x41}, &h))
	a.Error(h.UnmarshalCBOR([]byte{0xf4}))
}

func TestMsgp(t *testing.T) {
	a := assert.New(t)
	f := FromFloat64[Binary16](1)
	data, err := f.MarshalMsg(nil)
	if a.NoError(err) {
		a.Equal([]byte{0x93, 0xc2, 0xc4, 0x01, 0x0f, 0xc4, 0x02, 0x00, 0x00}, data)
		a.LessOrEqual(len(data), f.Msgsize())
	}

	for _, d := range []float64{1, -1.5, math.Pi, 1e-300, math.Inf(-1), math.NaN()} {
		q := FromFloat64[Binary128](d)
		data, err := q.MarshalMsg([]byte{0xaa})
		if !a.NoError(err) {
			continue
		}
		a.LessOrEqual(len(data)-1, q.Msgsize())
		var back Quad
		rest, err := back.UnmarshalMsg(append(data[1:], 0xbb))
		if a.NoError(err) {
			a.True(q.Eq(back), "%v", d)
			a.Equal([]byte{0xbb}, rest)
		}
	}

	var h Half
	_, err = h.UnmarshalMsg(msgp.AppendArrayHeader(nil, 2))
	var arrErr msgp.ArrayError
	if a.ErrorAs(err, &arrErr) {
		a.Equal(uint32(3), arrErr.Wanted)
		a.Equal(uint32(2), arrErr.Got)
	}
	_, err = h.UnmarshalMsg([]byte{0x93, 0xc2, 0xc4, 0x01, 0x0f, 0xc4, 0x01, 0x00})
	a.Error(err)
	_, err = h.UnmarshalMsg([]byte{0x93, 0xc2})
	a.Error(err)
}
