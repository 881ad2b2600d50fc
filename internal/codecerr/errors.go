// Package codecerr defines the encode/decode failure taxonomy shared
// by internal/encoder and internal/decoder.
package codecerr

import "fmt"

// Error is the codec's error taxonomy: a Kind identifying the failure
// class, plus a human-readable Message.
type Error struct {
	Kind    string
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("codec error (%v): %v", e.Kind, e.Message)
}

// UnsupportedType reports that the encoder was given a value outside
// the seven supported variants.
func UnsupportedType(got string) error {
	return Error{
		Kind:    "UnsupportedType",
		Message: fmt.Sprintf("unsupported value type: %v", got),
	}
}

// UnknownTypeTag reports that the decoder saw a type tag outside the
// reserved set (None, bool, int, float, str, list, dict).
func UnknownTypeTag(tag string) error {
	return Error{
		Kind:    "UnknownTypeTag",
		Message: fmt.Sprintf("unknown type tag: %q", tag),
	}
}

// MalformedScalar reports that a scalar payload failed to parse.
func MalformedScalar(kind, payload string, cause error) error {
	return Error{
		Kind:    "MalformedScalar",
		Message: fmt.Sprintf("malformed %s payload %q: %v", kind, payload, cause),
	}
}

// MalformedPair reports that a dict child did not have exactly two
// subchildren.
func MalformedPair(got int) error {
	return Error{
		Kind:    "MalformedPair",
		Message: fmt.Sprintf("dict entry must have exactly 2 children, got %d", got),
	}
}

// DanglingReference reports a reference whose target is not present
// anywhere in the document. Exported for callers building a strict
// decode mode; the decoder in this module recovers from this
// condition rather than raising it (see DESIGN.md).
func DanglingReference(id string) error {
	return Error{
		Kind:    "DanglingReference",
		Message: fmt.Sprintf("reference %q has no matching definition", id),
	}
}

// IntegerOverflow reports that an integer could not be round-tripped
// through the chosen decimal representation. Unreachable in this
// module, whose Int is backed by math/big — exported for parity with
// the rest of the taxonomy and for callers layering a narrower integer
// type on top of this package.
func IntegerOverflow(decimal string) error {
	return Error{
		Kind:    "IntegerOverflow",
		Message: fmt.Sprintf("integer %q cannot be round-tripped", decimal),
	}
}
