package canon

import (
	"math"

	"github.com/listenupapp/goldenfix/internal/decoder"
)

// Normalize converts one decoded value into its canonical form. The
// second return is false when normalization yields no value; callers
// must then omit the key entirely rather than store a placeholder.
//
// Capabilities are queried in a fixed priority order because decoded
// shapes overlap: an artwork frame may also stringify, a text frame
// list is also a generic value. First matching rule wins.
func Normalize(v decoder.Value) (Value, bool) {
	if v == nil {
		return Value{}, false
	}

	if img, ok := v.(decoder.ImageValue); ok {
		return NewBinary(img.ImageData()), true
	}

	if tl, ok := v.(decoder.TextListValue); ok {
		// Malformed frames fall through to the remaining rules.
		if texts, err := tl.TextList(); err == nil {
			return NewText(texts), true
		}
	}

	if b, ok := v.(decoder.BytesValue); ok {
		return NewBinary(b.Bytes()), true
	}

	if list, ok := v.(decoder.ListValue); ok {
		if out, ok := normalizeList(list.Items()); ok {
			return out, true
		}
	}

	if b, ok := v.(decoder.BoolValue); ok {
		return NewBool(b.Bool()), true
	}

	if n, ok := v.(decoder.IntValue); ok {
		return NewInt(n.Int()), true
	}

	if f, ok := v.(decoder.FloatValue); ok {
		if math.IsNaN(f.Float()) || math.IsInf(f.Float(), 0) {
			return Value{}, false
		}
		return NewDouble(f.Float()), true
	}

	if text := v.String(); text != "" {
		return NewText([]string{text}), true
	}
	return Value{}, false
}

// normalizeList handles sequence values. A non-empty all-bytes
// sequence hashes as one concatenated binary payload; otherwise every
// element converts to its string form. An empty sequence is an empty
// text list, not absence.
func normalizeList(items []decoder.Item) (Value, bool) {
	if len(items) > 0 && allBytes(items) {
		var joined []byte
		for _, it := range items {
			joined = append(joined, it.Data...)
		}
		return NewBinary(joined), true
	}

	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = it.String()
	}
	return NewText(texts), true
}

func allBytes(items []decoder.Item) bool {
	for _, it := range items {
		if it.Kind != decoder.ItemBytes {
			return false
		}
	}
	return true
}
