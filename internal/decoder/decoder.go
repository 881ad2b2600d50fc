// Package decoder implements the decoder: reconstructing a value
// graph from a link tree, resolving identifiers — including forward
// references among sibling top-level links — while building cyclic
// structures incrementally.
package decoder

import (
	"strings"

	"github.com/link-foundation/link-notation-objects-codec/internal/codecerr"
	"github.com/link-foundation/link-notation-objects-codec/internal/linknotation"
	"github.com/link-foundation/link-notation-objects-codec/internal/scalarcodec"
	"github.com/link-foundation/link-notation-objects-codec/internal/value"
)

const objPrefix = "obj_"

// decoder holds the per-call scratch state: table resolves an id to
// the Value already constructed for it (installed before an
// aggregate's children are decoded, so cycles resolve), and allLinks
// indexes every top-level identified group for two-phase, sideways
// forward-reference resolution.
type decoder struct {
	table    map[string]*value.Value
	allLinks map[string]*linknotation.Node
}

// Decode parses notation, normalizes away a parser-introduced wrapper
// group if present, and reconstructs the value graph it describes.
// Decode returns Null for empty input.
func Decode(notation string) (*value.Value, error) {
	links, err := linknotation.Parse(notation)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return value.NewNull(), nil
	}

	top := links
	if len(top) == 1 {
		if unwrapped, ok := unwrap(top[0]); ok {
			top = []*linknotation.Node{unwrapped}
		}
	}

	d := &decoder{
		table:    make(map[string]*value.Value),
		allLinks: make(map[string]*linknotation.Node),
	}
	for _, n := range top {
		if n.Kind == linknotation.GroupKind && n.HasID {
			d.allLinks[n.ID] = n
		}
	}

	return d.decode(top[0])
}

// unwrap detects the parser-introduced wrapper: a group with no id
// and exactly one child, that child itself a group carrying an
// obj_-prefixed id.
func unwrap(n *linknotation.Node) (*linknotation.Node, bool) {
	if n.Kind != linknotation.GroupKind || n.HasID || len(n.Children) != 1 {
		return nil, false
	}
	inner := n.Children[0]
	if inner.Kind == linknotation.GroupKind && inner.HasID && strings.HasPrefix(inner.ID, objPrefix) {
		return inner, true
	}
	return nil, false
}

func (d *decoder) decode(n *linknotation.Node) (*value.Value, error) {
	if n.Kind == linknotation.RefKind {
		return d.decodeRef(n.ID)
	}
	return d.decodeGroup(n)
}

func (d *decoder) decodeRef(id string) (*value.Value, error) {
	if v, ok := d.table[id]; ok {
		return v, nil
	}
	if strings.HasPrefix(id, objPrefix) {
		if link, ok := d.allLinks[id]; ok {
			return d.decode(link)
		}
		// Unknown obj_* identifier: tolerant fallback — install an
		// empty sequence as the placeholder target.
		placeholder := value.NewEmptySeq()
		d.table[id] = placeholder
		return placeholder, nil
	}
	// Degenerate case: a bare identifier that names neither a table
	// entry nor a obj_* link is decoded as its own literal text.
	return value.NewStr(id), nil
}

func (d *decoder) decodeGroup(n *linknotation.Node) (*value.Value, error) {
	if len(n.Children) == 0 {
		if n.HasID {
			return d.decodeRef(n.ID)
		}
		return value.NewNull(), nil
	}

	tag := n.Children[0]
	if tag.Kind != linknotation.RefKind || tag.ID == "" {
		return value.NewNull(), nil
	}

	switch tag.ID {
	case "None":
		return value.NewNull(), nil

	case "bool":
		if len(n.Children) < 2 {
			return value.NewBool(false), nil
		}
		payload, err := childID(n.Children[1])
		if err != nil {
			return nil, err
		}
		b, err := scalarcodec.DecodeBool(payload)
		if err != nil {
			return nil, err
		}
		return value.NewBool(b), nil

	case "int":
		if len(n.Children) < 2 {
			return value.NewInt(0), nil
		}
		payload, err := childID(n.Children[1])
		if err != nil {
			return nil, err
		}
		i, err := scalarcodec.DecodeInt(payload)
		if err != nil {
			return nil, err
		}
		return value.NewBigInt(i), nil

	case "float":
		if len(n.Children) < 2 {
			return value.NewFloat(0), nil
		}
		payload, err := childID(n.Children[1])
		if err != nil {
			return nil, err
		}
		f, err := scalarcodec.DecodeFloat(payload)
		if err != nil {
			return nil, err
		}
		return value.NewFloat(f), nil

	case "str":
		if len(n.Children) < 2 {
			return value.NewStr(""), nil
		}
		payload, err := childID(n.Children[1])
		if err != nil {
			return nil, err
		}
		s, err := scalarcodec.DecodeString(payload)
		if err != nil {
			return nil, err
		}
		return value.NewStr(s), nil

	case "list":
		return d.decodeList(n)

	case "dict":
		return d.decodeDict(n)

	default:
		return nil, codecerr.UnknownTypeTag(tag.ID)
	}
}

// childID requires n to be a bare identifier and returns it; scalar
// payloads and the old-format obj_ marker are both bare identifiers.
func childID(n *linknotation.Node) (string, error) {
	if n.Kind != linknotation.RefKind {
		return "", codecerr.MalformedScalar("payload", "", errNotAToken)
	}
	return n.ID, nil
}

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

var errNotAToken = sentinelError("expected a bare identifier payload")

// startIndexAndID applies the legacy-format compatibility rule: a node
// with no id whose tag is list/dict but whose second child is an
// obj_-prefixed Ref adopts that as its id and starts consuming
// elements from index 2 instead of 1. A Ref naming an id that is
// already in table or allLinks is a reference to that node, so it
// stays an ordinary first element.
func (d *decoder) startIndexAndID(n *linknotation.Node) (start int, id string, hasID bool) {
	if n.HasID {
		return 1, n.ID, true
	}
	if len(n.Children) > 1 {
		second := n.Children[1]
		if second.Kind == linknotation.RefKind && strings.HasPrefix(second.ID, objPrefix) {
			_, inTable := d.table[second.ID]
			_, inLinks := d.allLinks[second.ID]
			if !inTable && !inLinks {
				return 2, second.ID, true
			}
		}
	}
	return 1, "", false
}

func (d *decoder) decodeList(n *linknotation.Node) (*value.Value, error) {
	start, id, hasID := d.startIndexAndID(n)

	result := value.NewEmptySeq()
	if hasID {
		// Install before recursing so back-references resolve to
		// this exact instance — the critical ordering invariant.
		d.table[id] = result
	}

	for _, child := range n.Children[start:] {
		item, err := d.decode(child)
		if err != nil {
			return nil, err
		}
		result.AppendItem(item)
	}
	return result, nil
}

func (d *decoder) decodeDict(n *linknotation.Node) (*value.Value, error) {
	start, id, hasID := d.startIndexAndID(n)

	result := value.NewEmptyMap()
	if hasID {
		d.table[id] = result
	}

	for _, pairNode := range n.Children[start:] {
		if pairNode.Kind != linknotation.GroupKind || len(pairNode.Children) != 2 {
			got := 0
			if pairNode.Kind == linknotation.GroupKind {
				got = len(pairNode.Children)
			}
			return nil, codecerr.MalformedPair(got)
		}
		key, err := d.decode(pairNode.Children[0])
		if err != nil {
			return nil, err
		}
		val, err := d.decode(pairNode.Children[1])
		if err != nil {
			return nil, err
		}
		result.SetEntry(key, val)
	}
	return result, nil
}
