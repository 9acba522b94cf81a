package decoder

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is one decoded tag or info value of unknown concrete shape.
//
// Decoder libraries return many incompatible representations for
// conceptually similar data (text frame lists, raw strings, byte blobs,
// typed wrappers). Value is the common base: every value has a generic
// string form. Richer shapes are expressed through the optional
// capability interfaces below, which the normalizer queries in a fixed
// priority order.
type Value interface {
	String() string
}

// ImageValue exposes embedded artwork as raw image bytes.
type ImageValue interface {
	Value
	ImageData() []byte
}

// TextListValue exposes an ordered list of textual frames. Conversion
// may fail for malformed frames; callers fall through to other
// capabilities on error rather than failing.
type TextListValue interface {
	Value
	TextList() ([]string, error)
}

// BytesValue exposes a raw byte payload.
type BytesValue interface {
	Value
	Bytes() []byte
}

// ListValue exposes an ordered sequence of primitive items.
type ListValue interface {
	Value
	Items() []Item
}

// BoolValue exposes a single boolean.
type BoolValue interface {
	Value
	Bool() bool
}

// IntValue exposes a single integer.
type IntValue interface {
	Value
	Int() int64
}

// FloatValue exposes a single floating-point number.
type FloatValue interface {
	Value
	Float() float64
}

// ItemKind discriminates the primitive shapes a ListValue element can take.
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemBytes
	ItemInt
	ItemFloat
	ItemBool
)

// Item is one element of a ListValue.
type Item struct {
	Kind  ItemKind
	Text  string
	Data  []byte
	Int   int64
	Float float64
	Bool  bool
}

// String converts the item to its text form. Byte items are decoded as
// UTF-8 with invalid sequences replaced.
func (it Item) String() string {
	switch it.Kind {
	case ItemText:
		return it.Text
	case ItemBytes:
		return strings.ToValidUTF8(string(it.Data), "�")
	case ItemInt:
		return strconv.FormatInt(it.Int, 10)
	case ItemFloat:
		return strconv.FormatFloat(it.Float, 'g', -1, 64)
	case ItemBool:
		return strconv.FormatBool(it.Bool)
	default:
		return ""
	}
}

// TextItem wraps a string as a list item.
func TextItem(s string) Item { return Item{Kind: ItemText, Text: s} }

// BytesItem wraps a byte payload as a list item.
func BytesItem(b []byte) Item { return Item{Kind: ItemBytes, Data: b} }

// IntItem wraps an integer as a list item.
func IntItem(n int64) Item { return Item{Kind: ItemInt, Int: n} }

// FloatItem wraps a float as a list item.
func FloatItem(f float64) Item { return Item{Kind: ItemFloat, Float: f} }

// BoolItem wraps a boolean as a list item.
func BoolItem(b bool) Item { return Item{Kind: ItemBool, Bool: b} }

// Concrete value constructors. These cover every capability the
// normalizer dispatches on; decoder adapters and tests build the value
// graph from them.

type imageValue struct{ data []byte }

func (v imageValue) ImageData() []byte { return v.data }
func (v imageValue) String() string    { return fmt.Sprintf("<image %d bytes>", len(v.data)) }

// Image builds a value carrying raw artwork bytes.
func Image(data []byte) ImageValue { return imageValue{data: data} }

type textListValue struct {
	frames []string
	err    error
}

func (v textListValue) TextList() ([]string, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.frames, nil
}

func (v textListValue) String() string { return strings.Join(v.frames, " / ") }

// TextList builds a value exposing ordered text frames.
func TextList(frames ...string) TextListValue { return textListValue{frames: frames} }

// BrokenTextList builds a text-list value whose conversion fails,
// forcing normalization to fall through to later rules.
func BrokenTextList(err error) TextListValue { return textListValue{err: err} }

type bytesValue struct{ data []byte }

func (v bytesValue) Bytes() []byte  { return v.data }
func (v bytesValue) String() string { return strings.ToValidUTF8(string(v.data), "�") }

// Binary builds a raw byte value.
func Binary(data []byte) BytesValue { return bytesValue{data: data} }

type listValue struct{ items []Item }

func (v listValue) Items() []Item { return v.items }

func (v listValue) String() string {
	parts := make([]string, len(v.items))
	for i, it := range v.items {
		parts[i] = it.String()
	}
	return strings.Join(parts, " / ")
}

// List builds an ordered sequence value from primitive items.
func List(items ...Item) ListValue { return listValue{items: items} }

type boolValue bool

func (v boolValue) Bool() bool     { return bool(v) }
func (v boolValue) String() string { return strconv.FormatBool(bool(v)) }

// Bool builds a boolean value.
func Bool(b bool) BoolValue { return boolValue(b) }

type intValue int64

func (v intValue) Int() int64     { return int64(v) }
func (v intValue) String() string { return strconv.FormatInt(int64(v), 10) }

// Int builds an integer value.
func Int(n int64) IntValue { return intValue(n) }

type floatValue float64

func (v floatValue) Float() float64 { return float64(v) }
func (v floatValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// Float builds a floating-point value.
func Float(f float64) FloatValue { return floatValue(f) }

type textValue string

func (v textValue) String() string { return string(v) }

// Text builds a plain value with only a generic string form.
func Text(s string) Value { return textValue(s) }
