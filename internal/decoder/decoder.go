// Package decoder defines the interface the fixture generator consumes
// from an audio metadata decoder, along with the polymorphic value
// model decoded tags are expressed in.
//
// The generator never parses audio itself; it normalizes whatever a
// Decoder already produced.
package decoder

import "context"

// Decoder parses one audio file into its decoded metadata.
type Decoder interface {
	// Decode parses the file at path. A nil *File with a nil error is
	// the no-result sentinel: the decoder ran but recognized nothing.
	Decode(ctx context.Context, path string) (*File, error)
}

// Func adapts a plain function to the Decoder interface.
type Func func(ctx context.Context, path string) (*File, error)

// Decode calls f.
func (f Func) Decode(ctx context.Context, path string) (*File, error) {
	return f(ctx, path)
}

// File is a decoded audio file: an optional ordered tag container and
// an optional technical-info object.
type File struct {
	// Tags is the decoded tag container in stable enumeration order.
	// Nil means the file exposes no tag container at all.
	Tags []Tag

	// Info holds named technical attributes, or nil when the decoder
	// reports none.
	Info *Info
}

// Tag is one entry of a decoded tag container.
type Tag struct {
	Key   string
	Value Value
}

// Info is an open set of named technical attributes. Which attributes
// exist varies by format decoder; callers look them up by name.
type Info struct {
	attrs map[string]Value
}

// NewInfo creates an empty info object.
func NewInfo() *Info {
	return &Info{attrs: make(map[string]Value)}
}

// Set records an attribute. A nil value is ignored, matching decoders
// that report an attribute slot without a usable value.
func (i *Info) Set(name string, v Value) *Info {
	if v != nil {
		i.attrs[name] = v
	}
	return i
}

// Attr reports the named attribute and whether the decoder exposes it.
func (i *Info) Attr(name string) (Value, bool) {
	if i == nil {
		return nil, false
	}
	v, ok := i.attrs[name]
	return v, ok
}
