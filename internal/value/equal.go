package value

import "math"

// pair identifies two Values being compared, used to short-circuit
// cycles during Equal: if we are already in the middle of comparing
// this exact pair, assume equal and let the enclosing comparison
// decide the rest.
type pair struct {
	a, b *Value
}

// Equal reports whether a and b are structurally equal: same kind,
// same scalar payload (NaN equal to NaN for round-trip purposes,
// following IEEE "equal-for-round-trip" rather than IEEE "=="), and
// for aggregates, equal children in the same order. Equal does not
// require a and b to share identity — two separately constructed
// equal scalars or aggregates compare equal.
//
// Equal is safe to call on cyclic graphs: a seen-pairs set breaks the
// recursion once a pair is revisited.
func Equal(a, b *Value) bool {
	return equal(a, b, make(map[pair]bool))
}

func equal(a, b *Value, seen map[pair]bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind {
		return false
	}

	p := pair{a, b}
	if seen[p] {
		return true
	}
	seen[p] = true

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i.Cmp(b.i) == 0
	case KindFloat:
		if math.IsNaN(a.f) && math.IsNaN(b.f) {
			return true
		}
		return a.f == b.f
	case KindStr:
		return a.s == b.s
	case KindSeq:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !equal(a.seq[i], b.seq[i], seen) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.ent) != len(b.ent) {
			return false
		}
		for i := range a.ent {
			if !equal(a.ent[i].Key, b.ent[i].Key, seen) {
				return false
			}
			if !equal(a.ent[i].Value, b.ent[i].Value, seen) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
