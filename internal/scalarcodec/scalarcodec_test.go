package scalarcodec

import (
	"math"
	"math/big"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	cases := []string{"", "hello", "with spaces ()", "control\x00char", "unicode 日本語"}
	for _, s := range cases {
		encoded := EncodeString(s)
		decoded, err := DecodeString(encoded)
		if err != nil {
			t.Fatalf("DecodeString(%q): %v", encoded, err)
		}
		if decoded != s {
			t.Errorf("round trip %q -> %q -> %q", s, encoded, decoded)
		}
	}
}

func TestDecodeStringMalformed(t *testing.T) {
	if _, err := DecodeString("not base64!!"); err == nil {
		t.Error("expected MalformedScalar error for invalid base64")
	}
}

func TestFloatRoundTrip(t *testing.T) {
	cases := []float64{0, 1, -1, 3.14, 1e300, -1e-300, math.MaxFloat64}
	for _, f := range cases {
		encoded := EncodeFloat(f)
		decoded, err := DecodeFloat(encoded)
		if err != nil {
			t.Fatalf("DecodeFloat(%q): %v", encoded, err)
		}
		if decoded != f {
			t.Errorf("round trip %v -> %q -> %v", f, encoded, decoded)
		}
	}
}

func TestFloatSpecialValues(t *testing.T) {
	if got := EncodeFloat(math.NaN()); got != "NaN" {
		t.Errorf("EncodeFloat(NaN) = %q, want NaN", got)
	}
	if got := EncodeFloat(math.Inf(1)); got != "Infinity" {
		t.Errorf("EncodeFloat(+Inf) = %q, want Infinity", got)
	}
	if got := EncodeFloat(math.Inf(-1)); got != "-Infinity" {
		t.Errorf("EncodeFloat(-Inf) = %q, want -Infinity", got)
	}

	decoded, err := DecodeFloat("NaN")
	if err != nil || !math.IsNaN(decoded) {
		t.Errorf("DecodeFloat(NaN) = %v, %v", decoded, err)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	if EncodeBool(true) != "True" || EncodeBool(false) != "False" {
		t.Fatal("bool spellings must be capitalized True/False")
	}
	v, err := DecodeBool("True")
	if err != nil || v != true {
		t.Errorf("DecodeBool(True) = %v, %v", v, err)
	}
	if _, err := DecodeBool("true"); err == nil {
		t.Error("DecodeBool must reject lowercase true")
	}
}

func TestIntRoundTrip(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	cases := []*big.Int{big.NewInt(0), big.NewInt(-1), big.NewInt(42), huge}
	for _, n := range cases {
		encoded := EncodeInt(n)
		decoded, err := DecodeInt(encoded)
		if err != nil {
			t.Fatalf("DecodeInt(%q): %v", encoded, err)
		}
		if decoded.Cmp(n) != 0 {
			t.Errorf("round trip %v -> %q -> %v", n, encoded, decoded)
		}
	}
}

func TestDecodeIntMalformed(t *testing.T) {
	if _, err := DecodeInt("not-a-number"); err == nil {
		t.Error("expected MalformedScalar error for non-numeric integer")
	}
}
