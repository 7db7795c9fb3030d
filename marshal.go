// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/tinylib/msgp/msgp"

	"github.com/avdva/binfloat/internal/bitfield"
	"github.com/avdva/binfloat/internal/mathutil"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeCompact
)

const (
	// JSONModeString produces values as strings, like `"1.5"` or `"-Inf"`.
	JSONModeString = iota
	// JSONModeFloat marshals finite values as numbers, like `1.5`, and other values as strings.
	JSONModeFloat
	// JSONModeBits marshals the raw fields as little-endian hex bytes, like `{"s":false,"e":"ff3f","m":"00"}`.
	JSONModeBits
	// JSONModeCompact marshals finite values as numbers, and other values as bits.
	JSONModeCompact
)

// wireFields is the array form of a value used by CBOR and MessagePack:
// [sign, exponent bytes, mantissa bytes], fields being little-endian.
type wireFields struct {
	_    struct{} `cbor:",toarray"`
	Neg  bool
	Exp  []byte
	Mant []byte
}

type jsonFields struct {
	S bool   `json:"s"`
	E string `json:"e"`
	M string `json:"m"`
}

func (f Float[L]) wire() wireFields {
	mant, exp := f.fields()
	return wireFields{Neg: f.neg, Exp: exp.Bytes(), Mant: mant.Bytes()}
}

func fromWire[L Layout](w wireFields) (Float[L], error) {
	mb, eb := widths[L]()
	if len(w.Exp) != mathutil.BytesFor(eb) || len(w.Mant) != mathutil.BytesFor(mb) {
		return Float[L]{}, fmt.Errorf("bad field lengths %d/%d, want %d/%d",
			len(w.Exp), len(w.Mant), mathutil.BytesFor(eb), mathutil.BytesFor(mb))
	}
	return Float[L]{
		mant: bitfield.FromBytes(mb, w.Mant).Words(),
		exp:  bitfield.FromBytes(eb, w.Exp).Words(),
		neg:  w.Neg,
	}, nil
}

// MarshalBinary encodes f as a sign byte (0 or 1), followed by ceil(E/8)
// exponent bytes and ceil(M/8) mantissa bytes, both little-endian.
func (f Float[L]) MarshalBinary() ([]byte, error) {
	w := f.wire()
	out := make([]byte, 0, 1+len(w.Exp)+len(w.Mant))
	if w.Neg {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}
	out = append(out, w.Exp...)
	return append(out, w.Mant...), nil
}

// UnmarshalBinary decodes a value produced by MarshalBinary.
func (f *Float[L]) UnmarshalBinary(data []byte) error {
	mb, eb := widths[L]()
	expLen := mathutil.BytesFor(eb)
	if want := 1 + expLen + mathutil.BytesFor(mb); len(data) != want {
		return fmt.Errorf("bad binary length %d, want %d", len(data), want)
	}
	if data[0] > 1 {
		return fmt.Errorf("bad sign byte %d", data[0])
	}
	v, err := fromWire[L](wireFields{Neg: data[0] == 1, Exp: data[1 : 1+expLen], Mant: data[1+expLen:]})
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// isNumber returns true if the text form of f is a json number that parses back to f.
func (f Float[L]) isNumber() bool {
	_, err := f.BigFloat()
	return err == nil && !f.IsInf(0)
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (f Float[L]) MarshalJSON() ([]byte, error) {
	return f.toJSON(JSONMode)
}

func (f Float[L]) toJSON(mode int) ([]byte, error) {
	switch mode {
	case JSONModeFloat:
		if !f.isNumber() {
			return f.toJSON(JSONModeString)
		}
		return []byte(f.String()), nil
	case JSONModeBits:
		w := f.wire()
		return json.Marshal(jsonFields{S: w.Neg, E: hex.EncodeToString(w.Exp), M: hex.EncodeToString(w.Mant)})
	case JSONModeCompact:
		if !f.isNumber() {
			return f.toJSON(JSONModeBits)
		}
		return f.toJSON(JSONModeFloat)
	default: // marshal as a string
		return []byte(strconv.Quote(f.String())), nil
	}
}

// UnmarshalJSON unmarshals a string, a number, or a bits object into a value.
func (f *Float[L]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case 'n':
		if string(data) == "null" {
			return nil
		}
	case '{':
		var d jsonFields
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		exp, err := hex.DecodeString(d.E)
		if err != nil {
			return fmt.Errorf("bad exponent: %w", err)
		}
		mant, err := hex.DecodeString(d.M)
		if err != nil {
			return fmt.Errorf("bad mantissa: %w", err)
		}
		v, err := fromWire[L](wireFields{Neg: d.S, Exp: exp, Mant: mant})
		if err != nil {
			return err
		}
		*f = v
		return nil
	case '"':
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("bad json string: %w", err)
		}
		data = []byte(strings.TrimSpace(s))
	}
	v, err := FromString[L](string(data))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalCBOR encodes f as a CBOR array [sign, exponent bytes, mantissa bytes].
func (f Float[L]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(f.wire())
}

// UnmarshalCBOR decodes a value produced by MarshalCBOR.
func (f *Float[L]) UnmarshalCBOR(data []byte) error {
	var w wireFields
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("cbor: %w", err)
	}
	v, err := fromWire[L](w)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalMsg appends f to b as a MessagePack array [sign, exponent bytes, mantissa bytes].
func (f Float[L]) MarshalMsg(b []byte) ([]byte, error) {
	w := f.wire()
	b = msgp.AppendArrayHeader(b, 3)
	b = msgp.AppendBool(b, w.Neg)
	b = msgp.AppendBytes(b, w.Exp)
	return msgp.AppendBytes(b, w.Mant), nil
}

// UnmarshalMsg reads a value produced by MarshalMsg and returns the remaining bytes.
func (f *Float[L]) UnmarshalMsg(b []byte) ([]byte, error) {
	sz, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return b, err
	}
	if sz != 3 {
		return b, msgp.ArrayError{Wanted: 3, Got: sz}
	}
	var w wireFields
	if w.Neg, b, err = msgp.ReadBoolBytes(b); err != nil {
		return b, err
	}
	if w.Exp, b, err = msgp.ReadBytesBytes(b, nil); err != nil {
		return b, err
	}
	if w.Mant, b, err = msgp.ReadBytesBytes(b, nil); err != nil {
		return b, err
	}
	v, err := fromWire[L](w)
	if err != nil {
		return b, err
	}
	*f = v
	return b, nil
}

// Msgsize returns an upper bound of the MessagePack size of f.
func (f Float[L]) Msgsize() int {
	mb, eb := widths[L]()
	return msgp.ArrayHeaderSize + msgp.BoolSize +
		2*msgp.BytesPrefixSize + mathutil.BytesFor(eb) + mathutil.BytesFor(mb)
}
