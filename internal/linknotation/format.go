package linknotation

import "strings"

// Format renders a link tree back to surface syntax: a bare
// identifier for a RefKind node, or a parenthesised, space-separated
// group — "<id>: " prefixed when the group carries an id — for a
// GroupKind node.
func Format(n *Node) string {
	if n.Kind == RefKind {
		return n.ID
	}

	pieces := make([]string, len(n.Children))
	for i, c := range n.Children {
		pieces[i] = Format(c)
	}
	inner := strings.Join(pieces, " ")

	var b strings.Builder
	b.WriteByte('(')
	if n.HasID {
		b.WriteString(n.ID)
		b.WriteString(": ")
	}
	b.WriteString(inner)
	b.WriteByte(')')
	return b.String()
}
