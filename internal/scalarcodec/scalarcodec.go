// Package scalarcodec implements lossless text encodings for strings,
// floats, booleans and integers, one symmetric encode/decode pair per
// kind, targeting link-notation identifier tokens rather than a
// general-purpose wire format.
package scalarcodec

import (
	"encoding/base64"
	"math"
	"math/big"
	"strconv"

	"github.com/link-foundation/link-notation-objects-codec/internal/codecerr"
)

// EncodeString base64-encodes the UTF-8 bytes of s with the standard
// alphabet, sidestepping every lexical hazard of the link-notation
// surface syntax (whitespace, parentheses, colons).
func EncodeString(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeString reverses EncodeString.
func DecodeString(payload string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", codecerr.MalformedScalar("str", payload, err)
	}
	return string(raw), nil
}

// EncodeFloat spells a float64 as the shortest decimal that round
// trips back to the same bit pattern, or one of the three reserved
// non-finite spellings.
func EncodeFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// DecodeFloat reverses EncodeFloat.
func DecodeFloat(payload string) (float64, error) {
	switch payload {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	default:
		f, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			return 0, codecerr.MalformedScalar("float", payload, err)
		}
		return f, nil
	}
}

// EncodeBool spells a bool using the capitalized literal tokens the
// surface syntax reserves.
func EncodeBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// DecodeBool reverses EncodeBool.
func DecodeBool(payload string) (bool, error) {
	switch payload {
	case "True":
		return true, nil
	case "False":
		return false, nil
	default:
		return false, codecerr.MalformedScalar("bool", payload, errNotATruthToken)
	}
}

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

var errNotATruthToken = sentinelError("expected True or False")

// EncodeInt spells an arbitrary-precision integer in decimal.
func EncodeInt(n *big.Int) string {
	return n.String()
}

// DecodeInt reverses EncodeInt.
func DecodeInt(payload string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(payload, 10)
	if !ok {
		return nil, codecerr.MalformedScalar("int", payload, errNotADecimalInt)
	}
	return n, nil
}

var errNotADecimalInt = sentinelError("expected a signed decimal integer")
