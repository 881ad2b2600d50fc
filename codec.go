// Package codec is the public facade over the link-notation object
// codec: two entry points, Encode and Decode, plus the Value type
// callers build their graphs from. The engine that does the actual
// work lives in internal/value, internal/linknotation,
// internal/refs, internal/encoder and internal/decoder; this package
// only re-exports the internal engine's types via aliases and wraps
// its constructors, so callers never need to import an internal
// package directly.
package codec

import (
	"math/big"

	"github.com/link-foundation/link-notation-objects-codec/internal/encoder"
	"github.com/link-foundation/link-notation-objects-codec/internal/decoder"
	"github.com/link-foundation/link-notation-objects-codec/internal/linknotation"
	"github.com/link-foundation/link-notation-objects-codec/internal/value"
)

type (
	// Value is the tagged-variant value graph this codec serializes:
	// Null, Bool, Int, Float, Str, Seq or Map.
	Value = value.Value
	// Kind discriminates Value's seven variants.
	Kind = value.Kind
	// Entry is a single (key, value) pair in a Map, in insertion order.
	Entry = value.Entry
)

const (
	KindNull  = value.KindNull
	KindBool  = value.KindBool
	KindInt   = value.KindInt
	KindFloat = value.KindFloat
	KindStr   = value.KindStr
	KindSeq   = value.KindSeq
	KindMap   = value.KindMap
)

// NewNull returns the absent value.
func NewNull() *Value { return value.NewNull() }

// NewBool constructs a Bool. Construct it explicitly — an integer 0/1
// is never treated as a boolean by this package.
func NewBool(b bool) *Value { return value.NewBool(b) }

// NewInt constructs an Int from a native integer.
func NewInt(n int64) *Value { return value.NewInt(n) }

// NewBigInt constructs an Int from an arbitrary-precision integer.
func NewBigInt(n *big.Int) *Value { return value.NewBigInt(n) }

// NewFloat constructs a Float, including NaN and +/-Inf.
func NewFloat(f float64) *Value { return value.NewFloat(f) }

// NewStr constructs a Str from any Unicode string.
func NewStr(s string) *Value { return value.NewStr(s) }

// NewSeq constructs a Seq containing items, in order.
func NewSeq(items ...*Value) *Value { return value.NewSeq(items...) }

// NewEmptySeq constructs an empty Seq whose items are appended later
// with AppendItem — useful for building self-referential structures.
func NewEmptySeq() *Value { return value.NewEmptySeq() }

// NewMap constructs a Map from entries, in order.
func NewMap(entries ...Entry) *Value { return value.NewMap(entries...) }

// NewEmptyMap constructs an empty Map whose entries are set later
// with SetEntry — useful for building self-referential structures.
func NewEmptyMap() *Value { return value.NewEmptyMap() }

// Equal reports whether a and b are structurally equal, independent
// of identity, with NaN treated as equal-for-round-trip.
func Equal(a, b *Value) bool { return value.Equal(a, b) }

// Encode serializes v to link notation. It is total for any finite
// value graph and fails only with UnsupportedType for a value outside
// the seven supported variants.
func Encode(v *Value) (string, error) {
	tree, err := encoder.Encode(v)
	if err != nil {
		return "", err
	}
	return linknotation.Format(tree), nil
}

// Decode reconstructs a value graph from link notation text,
// preserving shared identity and cycles. Decode returns Null for
// empty input.
func Decode(text string) (*Value, error) {
	return decoder.Decode(text)
}
