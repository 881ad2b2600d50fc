// Package value defines the universal tagged-variant value model the
// codec encodes and decodes. Null, Bool, Int, Float and Str are
// value-typed scalars; Seq and Map are the only variants with
// identity, carried by Go pointer identity rather than a separate
// handle type.
package value

import (
	"math/big"
)

// Kind discriminates the seven variants a Value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindSeq
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindStr:
		return "Str"
	case KindSeq:
		return "Seq"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Entry is a single (key, value) pair in a Map, in insertion order.
type Entry struct {
	Key   *Value
	Value *Value
}

// Value is the tagged variant. Scalars are held inline; aggregates
// hold their children by pointer so that sharing and cycles in the
// caller's graph are representable directly as Go reference sharing —
// no separate arena/handle indirection is needed, since Go's Seq/Map
// fields are already references rather than owned storage.
type Value struct {
	kind Kind

	b bool
	i *big.Int
	f float64
	s string

	seq []*Value
	ent []Entry
}

// NewNull returns the absent value.
func NewNull() *Value {
	return &Value{kind: KindNull}
}

// NewBool constructs a Bool. Callers must use this explicitly; an
// integer 0/1 is never treated as a boolean by this package.
func NewBool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// NewInt constructs an Int from a native integer.
func NewInt(n int64) *Value {
	return &Value{kind: KindInt, i: big.NewInt(n)}
}

// NewBigInt constructs an Int from an arbitrary-precision integer. The
// argument is copied; the codec never retains or mutates caller state.
func NewBigInt(n *big.Int) *Value {
	return &Value{kind: KindInt, i: new(big.Int).Set(n)}
}

// NewFloat constructs a Float, including NaN and +/-Inf.
func NewFloat(f float64) *Value {
	return &Value{kind: KindFloat, f: f}
}

// NewStr constructs a Str from any Unicode string, including empty
// strings and control characters.
func NewStr(s string) *Value {
	return &Value{kind: KindStr, s: s}
}

// NewSeq constructs a Seq containing items, in order. The slice is
// copied so later mutation by the caller does not alias the Value.
func NewSeq(items ...*Value) *Value {
	v := &Value{kind: KindSeq}
	if len(items) > 0 {
		v.seq = append(v.seq, items...)
	}
	return v
}

// NewEmptySeq constructs an empty, identified Seq whose items are
// appended incrementally — used by the decoder so that an aggregate's
// table entry can exist before its children are decoded.
func NewEmptySeq() *Value {
	return &Value{kind: KindSeq}
}

// NewMap constructs a Map from entries, in order. Later entries with a
// key equal (by Equal) to an earlier one overwrite that entry's value
// in place rather than appending a duplicate.
func NewMap(entries ...Entry) *Value {
	v := &Value{kind: KindMap}
	for _, e := range entries {
		v.SetEntry(e.Key, e.Value)
	}
	return v
}

// NewEmptyMap constructs an empty Map whose entries are set
// incrementally — used by the decoder for the same reason as
// NewEmptySeq.
func NewEmptyMap() *Value {
	return &Value{kind: KindMap}
}

// Kind reports which of the seven variants v holds.
func (v *Value) Kind() Kind { return v.kind }

// IsAggregate reports whether v is a Seq or Map — the only variants
// with identity.
func (v *Value) IsAggregate() bool {
	return v.kind == KindSeq || v.kind == KindMap
}

// Bool returns the boolean payload; only meaningful when Kind() ==
// KindBool.
func (v *Value) Bool() bool { return v.b }

// Int returns the integer payload; only meaningful when Kind() ==
// KindInt. The returned value must not be mutated by the caller.
func (v *Value) Int() *big.Int { return v.i }

// Float returns the float payload; only meaningful when Kind() ==
// KindFloat.
func (v *Value) Float() float64 { return v.f }

// Str returns the string payload; only meaningful when Kind() ==
// KindStr.
func (v *Value) Str() string { return v.s }

// SeqItems returns a copy of the sequence's children, in order; only
// meaningful when Kind() == KindSeq.
func (v *Value) SeqItems() []*Value {
	out := make([]*Value, len(v.seq))
	copy(out, v.seq)
	return out
}

// MapEntries returns a copy of the map's entries, in insertion order;
// only meaningful when Kind() == KindMap.
func (v *Value) MapEntries() []Entry {
	out := make([]Entry, len(v.ent))
	copy(out, v.ent)
	return out
}

// AppendItem appends item to a Seq under construction. Used by the
// decoder while incrementally filling an aggregate already installed
// in its identifier table, so that back-references resolve mid-build.
func (v *Value) AppendItem(item *Value) {
	v.seq = append(v.seq, item)
}

// SetEntry appends (key, value) to a Map under construction, or
// overwrites the value of an existing entry whose key is Equal to
// key — "last write wins" without disturbing entry order.
func (v *Value) SetEntry(key, val *Value) {
	for i := range v.ent {
		if Equal(v.ent[i].Key, key) {
			v.ent[i].Value = val
			return
		}
	}
	v.ent = append(v.ent, Entry{Key: key, Value: val})
}
