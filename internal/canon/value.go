// Package canon defines the canonical value model golden fixtures are
// expressed in, and the normalization of arbitrary decoded values into
// it.
//
// Fixtures are compared by exact equality across independent decoder
// reimplementations, so every decoded value must collapse into one of
// a small closed set of shapes regardless of how the decoder
// represented it in memory.
package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Kind discriminates the canonical value shapes.
type Kind string

const (
	KindText   Kind = "text"
	KindBinary Kind = "binary"
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindDouble Kind = "double"
)

// BinaryRef describes binary content by length and digest instead of
// the raw bytes, keeping fixtures small while still detecting any
// content change.
type BinaryRef struct {
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// Value is one canonical value. Kind fully determines which payload
// field is meaningful.
type Value struct {
	Kind   Kind
	Text   []string
	Binary BinaryRef
	Bool   bool
	Int    int64
	Double float64
}

// NewText builds a text value. The slice is stored as-is: order is
// preserved and duplicates are kept.
func NewText(values []string) Value {
	if values == nil {
		values = []string{}
	}
	return Value{Kind: KindText, Text: values}
}

// NewBinary builds a binary value over the exact byte content.
func NewBinary(data []byte) Value {
	sum := sha256.Sum256(data)
	return Value{Kind: KindBinary, Binary: BinaryRef{
		Size:   int64(len(data)),
		SHA256: hex.EncodeToString(sum[:]),
	}}
}

// NewBool builds a bool value.
func NewBool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NewInt builds an int value.
func NewInt(n int64) Value { return Value{Kind: KindInt, Int: n} }

// NewDouble builds a double value. The caller must ensure f is finite.
func NewDouble(f float64) Value { return Value{Kind: KindDouble, Double: f} }

// MarshalJSON serializes the value as {"kind": ..., "value": ...} with
// the payload shape fixed by the kind.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.Kind {
	case KindText:
		texts := v.Text
		if texts == nil {
			texts = []string{}
		}
		payload = texts
	case KindBinary:
		payload = v.Binary
	case KindBool:
		payload = v.Bool
	case KindInt:
		payload = v.Int
	case KindDouble:
		payload = v.Double
	default:
		return nil, fmt.Errorf("canon: cannot marshal value of kind %q", v.Kind)
	}
	return json.Marshal(struct {
		Kind  Kind `json:"kind"`
		Value any  `json:"value"`
	}{Kind: v.Kind, Value: payload})
}
