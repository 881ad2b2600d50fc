package decoder

import (
	"math/big"
	"testing"

	"github.com/link-foundation/link-notation-objects-codec/internal/value"
)

func TestDecodeEmptyInputIsNull(t *testing.T) {
	v, err := Decode("")
	if err != nil {
		t.Fatalf("Decode(\"\"): %v", err)
	}
	if v.Kind() != value.KindNull {
		t.Errorf("got kind %v, want Null", v.Kind())
	}
}

func TestDecodeScalars(t *testing.T) {
	none, err := Decode("(None)")
	if err != nil || none.Kind() != value.KindNull {
		t.Errorf("(None) -> %v, %v", none, err)
	}

	b, err := Decode("(bool True)")
	if err != nil || b.Kind() != value.KindBool || !b.Bool() {
		t.Errorf("(bool True) -> %v, %v", b, err)
	}

	i, err := Decode("(int 42)")
	if err != nil || i.Kind() != value.KindInt || i.Int().Cmp(big.NewInt(42)) != 0 {
		t.Errorf("(int 42) -> %v, %v", i, err)
	}

	f, err := Decode("(float 3.14)")
	if err != nil || f.Kind() != value.KindFloat || f.Float() != 3.14 {
		t.Errorf("(float 3.14) -> %v, %v", f, err)
	}

	s, err := Decode("(str aGVsbG8=)")
	if err != nil || s.Kind() != value.KindStr || s.Str() != "hello" {
		t.Errorf("(str aGVsbG8=) -> %v, %v", s, err)
	}
}

func TestDecodeNonSharedList(t *testing.T) {
	v, err := Decode("(list (int 1) (int 2) (int 3))")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	items := v.SeqItems()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for idx, want := range []int64{1, 2, 3} {
		if items[idx].Int().Int64() != want {
			t.Errorf("items[%d] = %v, want %d", idx, items[idx].Int(), want)
		}
	}
}

func TestDecodeSelfReferentialList(t *testing.T) {
	v, err := Decode("(obj_0: list obj_0)")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	items := v.SeqItems()
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0] != v {
		t.Error("L[0] must be identical to L")
	}
}

func TestDecodeSelfReferentialMap(t *testing.T) {
	v, err := Decode("(obj_0: dict ((str c2VsZg==) obj_0))")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	entries := v.MapEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Key.Str() != "self" {
		t.Errorf("key = %q, want self", entries[0].Key.Str())
	}
	if entries[0].Value != v {
		t.Error("M[\"self\"] must be identical to M")
	}
}

func TestDecodeMutualCycle(t *testing.T) {
	v, err := Decode("(obj_0: list (int 1) (int 2) (obj_1: list (int 3) (int 4) obj_0))")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	a := v.SeqItems()
	if len(a) != 3 {
		t.Fatalf("A has %d items, want 3", len(a))
	}
	b := a[2].SeqItems()
	if len(b) != 3 {
		t.Fatalf("B has %d items, want 3", len(b))
	}
	if b[2] != v {
		t.Error("A[2][2] must be identical to A")
	}
}

func TestDecodeSharedNoCycle(t *testing.T) {
	v, err := Decode("(list (obj_0: dict ((str az==) (str dg==))) obj_0 obj_0)")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	items := v.SeqItems()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0] != items[1] || items[1] != items[2] {
		t.Error("all three positions must share identity")
	}
	entries := items[0].MapEntries()
	if len(entries) != 1 || entries[0].Key.Str() != "k" || entries[0].Value.Str() != "v" {
		t.Errorf("got entries %+v, want [k:v]", entries)
	}
}

func TestDecodeLegacyListFormat(t *testing.T) {
	v, err := Decode("(list obj_0 (int 1) obj_0)")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	items := v.SeqItems()
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[1] != v {
		t.Error("legacy-format self reference must resolve to the same list")
	}
}

func TestDecodeDanglingReferenceIsTolerant(t *testing.T) {
	v, err := Decode("(list obj_99)")
	if err != nil {
		t.Fatalf("Decode should tolerate dangling references, got error: %v", err)
	}
	items := v.SeqItems()
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Kind() != value.KindSeq || len(items[0].SeqItems()) != 0 {
		t.Errorf("dangling reference should resolve to an empty sequence placeholder, got %+v", items[0])
	}
}

func TestDecodeMalformedPair(t *testing.T) {
	if _, err := Decode("(dict ((str YQ==) (int 1) (int 2)))"); err == nil {
		t.Error("expected MalformedPair for a dict entry with 3 children")
	}
}

func TestDecodeUnknownTypeTag(t *testing.T) {
	if _, err := Decode("(frobnicate 1)"); err == nil {
		t.Error("expected UnknownTypeTag for an unrecognized tag")
	}
}

func TestDecodeWrapperUnwrap(t *testing.T) {
	// A single top-level, id-less group wrapping one obj_-prefixed
	// child must be unwrapped before dispatch.
	v, err := Decode("((obj_0: list obj_0))")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	items := v.SeqItems()
	if len(items) != 1 || items[0] != v {
		t.Errorf("got %+v, want a self-referential single-item list", items)
	}
}

func TestDecodeTwoPhaseSiblingLinks(t *testing.T) {
	v, err := Decode("(obj_0: list (int 1) obj_1) (obj_1: list (int 2) obj_0)")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	a := v.SeqItems()
	if len(a) != 2 {
		t.Fatalf("A has %d items, want 2", len(a))
	}
	b := a[1].SeqItems()
	if len(b) != 2 || b[1] != v {
		t.Errorf("B[1] must resolve back to A via the sibling forward reference, got %+v", b)
	}
}

func TestDecodeBareIdentifierIsDegenerate(t *testing.T) {
	v, err := Decode("plain_token")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v.Kind() != value.KindStr || v.Str() != "plain_token" {
		t.Errorf("got %+v, want Str(plain_token)", v)
	}
}
