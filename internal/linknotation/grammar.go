package linknotation

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// notationLexer tokenizes link notation: parentheses group, a colon
// introduces an identifier prefix, and an identifier is any run of
// characters containing no whitespace, no parenthesis and no colon.
var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Ident", Pattern: `[^\s():]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// documentAST is the top-level parse result: a sequence of
// sibling links, which is what a document containing multiple
// top-level definitions (forward/sideways references) parses to.
type documentAST struct {
	Links []*linkAST `parser:"@@*"`
}

// linkAST dispatches on a bare identifier (a LinkRef) versus a
// parenthesised group (a LinkNode).
type linkAST struct {
	Ref   *string  `parser:"  @Ident"`
	Group *groupAST `parser:"| @@"`
}

// groupAST is "(" followed by an optional "<id>:" prefix, zero or
// more child links, and a closing ")". The literal tokens are
// co-located with the field whose capture follows them, the same
// style internal/dsl/grammar.go uses for CreateEdgeAST and friends.
type groupAST struct {
	ID       *string    `parser:"\"(\" ( @Ident \":\" )?"`
	Children []*linkAST `parser:"@@* \")\""`
}

var notationParser = participle.MustBuild[documentAST](
	participle.Lexer(notationLexer),
	participle.Elide("Whitespace"),
)
