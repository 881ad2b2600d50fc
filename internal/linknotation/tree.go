package linknotation

// Kind discriminates the two link-tree node shapes: a bare reference
// token, or a parenthesised group that may carry an id.
type Kind int

const (
	// RefKind is a bare identifier token — LinkRef(id).
	RefKind Kind = iota
	// GroupKind is a parenthesised group, optionally "<id>:"-prefixed —
	// LinkNode{id?, children}.
	GroupKind
)

// Node is the link tree exchanged with the encoder/decoder: the only
// abstract syntax the rest of the codec is aware of. The participle
// grammar and its AST types are private to this package.
type Node struct {
	Kind     Kind
	ID       string // the reference id (RefKind) or the group's id (GroupKind, if HasID)
	HasID    bool   // meaningful only for GroupKind
	Children []*Node
}

// Ref constructs a bare identifier token.
func Ref(id string) *Node {
	return &Node{Kind: RefKind, ID: id}
}

// Group constructs a parenthesised group. Pass id == "" and
// hasID == false for an unidentified group.
func Group(id string, hasID bool, children ...*Node) *Node {
	return &Node{Kind: GroupKind, ID: id, HasID: hasID, Children: children}
}

func fromLinkAST(l *linkAST) *Node {
	if l.Ref != nil {
		return Ref(*l.Ref)
	}
	return fromGroupAST(l.Group)
}

func fromGroupAST(g *groupAST) *Node {
	n := &Node{Kind: GroupKind}
	if g.ID != nil {
		n.HasID = true
		n.ID = *g.ID
	}
	n.Children = make([]*Node, len(g.Children))
	for i, c := range g.Children {
		n.Children[i] = fromLinkAST(c)
	}
	return n
}
