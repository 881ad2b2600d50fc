// Package encoder implements the encoder: a traversal of a value
// graph that produces a link tree, minting obj_<k> identifiers for
// the aggregates internal/refs flags as needing one and emitting
// references in their place on every subsequent visit.
package encoder

import (
	"fmt"

	"github.com/link-foundation/link-notation-objects-codec/internal/codecerr"
	"github.com/link-foundation/link-notation-objects-codec/internal/linknotation"
	"github.com/link-foundation/link-notation-objects-codec/internal/refs"
	"github.com/link-foundation/link-notation-objects-codec/internal/scalarcodec"
	"github.com/link-foundation/link-notation-objects-codec/internal/value"
)

const (
	tagNone = "None"
	tagBool = "bool"
	tagInt  = "int"
	tagFlt  = "float"
	tagStr  = "str"
	tagList = "list"
	tagDict = "dict"
)

// encoder holds the per-call scratch state: which aggregates need an
// id (from the analyzer), the assigned ids so far, and which
// aggregates are currently being descended into (to recognize back
// edges). Every call to Encode constructs a fresh encoder — no state
// is shared across calls or goroutines.
type encoder struct {
	needsID map[*value.Value]bool
	memo    map[*value.Value]string
	onStack map[*value.Value]bool
	counter int
}

// Encode runs the reference analysis pass followed by the emission
// pass and returns the resulting link tree.
func Encode(root *value.Value) (*linknotation.Node, error) {
	e := &encoder{
		needsID: refs.NeedsID(root),
		memo:    make(map[*value.Value]string),
		onStack: make(map[*value.Value]bool),
	}
	return e.encode(root)
}

func (e *encoder) encode(v *value.Value) (*linknotation.Node, error) {
	if v.IsAggregate() {
		return e.encodeAggregate(v)
	}
	return e.encodeScalar(v)
}

func (e *encoder) encodeAggregate(v *value.Value) (*linknotation.Node, error) {
	if id, assigned := e.memo[v]; assigned && !e.onStack[v] {
		// Already fully emitted at an earlier position: reference it.
		return linknotation.Ref(id), nil
	}
	if e.onStack[v] {
		// Back edge: v is an ancestor of itself in the current
		// traversal. The analyzer guarantees v is in needsID, so it
		// must already have an assigned id.
		id, ok := e.memo[v]
		if !ok {
			return nil, fmt.Errorf("internal error: cyclic node %p has no assigned id", v)
		}
		return linknotation.Ref(id), nil
	}

	hasID := false
	var id string
	if e.needsID[v] {
		id = fmt.Sprintf("obj_%d", e.counter)
		e.counter++
		e.memo[v] = id
		hasID = true
	}

	e.onStack[v] = true
	body, err := e.encodeBody(v)
	delete(e.onStack, v)
	if err != nil {
		return nil, err
	}

	return linknotation.Group(id, hasID, body...), nil
}

func (e *encoder) encodeBody(v *value.Value) ([]*linknotation.Node, error) {
	switch v.Kind() {
	case value.KindSeq:
		items := v.SeqItems()
		body := make([]*linknotation.Node, 0, len(items)+1)
		body = append(body, linknotation.Ref(tagList))
		for _, item := range items {
			encoded, err := e.encode(item)
			if err != nil {
				return nil, err
			}
			body = append(body, encoded)
		}
		return body, nil

	case value.KindMap:
		entries := v.MapEntries()
		body := make([]*linknotation.Node, 0, len(entries)+1)
		body = append(body, linknotation.Ref(tagDict))
		for _, entry := range entries {
			keyNode, err := e.encode(entry.Key)
			if err != nil {
				return nil, err
			}
			valNode, err := e.encode(entry.Value)
			if err != nil {
				return nil, err
			}
			body = append(body, linknotation.Group("", false, keyNode, valNode))
		}
		return body, nil

	default:
		return nil, codecerr.UnsupportedType(v.Kind().String())
	}
}

func (e *encoder) encodeScalar(v *value.Value) (*linknotation.Node, error) {
	switch v.Kind() {
	case value.KindNull:
		return linknotation.Group("", false, linknotation.Ref(tagNone)), nil
	case value.KindBool:
		return linknotation.Group("", false, linknotation.Ref(tagBool), linknotation.Ref(scalarcodec.EncodeBool(v.Bool()))), nil
	case value.KindInt:
		return linknotation.Group("", false, linknotation.Ref(tagInt), linknotation.Ref(scalarcodec.EncodeInt(v.Int()))), nil
	case value.KindFloat:
		return linknotation.Group("", false, linknotation.Ref(tagFlt), linknotation.Ref(scalarcodec.EncodeFloat(v.Float()))), nil
	case value.KindStr:
		return linknotation.Group("", false, linknotation.Ref(tagStr), linknotation.Ref(scalarcodec.EncodeString(v.Str()))), nil
	default:
		return nil, codecerr.UnsupportedType(v.Kind().String())
	}
}
