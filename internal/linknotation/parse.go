package linknotation

// Parse lexes and parses notation into the top-level sequence of
// links it contains — usually one, but more when the input places
// sibling definitions side by side for forward/sideways references.
func Parse(notation string) ([]*Node, error) {
	ast, err := notationParser.ParseString("", notation)
	if err != nil {
		return nil, SyntaxError{Kind: "InvalidSyntax", Message: err.Error()}
	}

	links := make([]*Node, len(ast.Links))
	for i, l := range ast.Links {
		links[i] = fromLinkAST(l)
	}
	return links, nil
}
