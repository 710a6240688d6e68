package ast

import "github.com/cypher-lang/cypherparser/position"

// NewLineComment constructs a "// ..." comment node; text excludes the
// leading "//" and any trailing line terminator.
func (a *Arena) NewLineComment(rng position.Range, text string) (*Node, error) {
	return a.build(spec{kind: KindLineComment, rng: rng, text: text})
}

// NewBlockComment constructs a "/* ... */" comment node; text excludes
// the delimiters. unterminated records whether the closing "*/" was
// missing (the lexer still produces a token covering to EOF per §4.2).
func (a *Arena) NewBlockComment(rng position.Range, text string, unterminated bool) (*Node, error) {
	return a.build(spec{kind: KindBlockComment, rng: rng, text: text, flagA: unterminated})
}

// CommentText returns a LineComment or BlockComment node's text.
func (n *Node) CommentText() string { return n.text }

// Unterminated reports whether a BlockComment's closing "*/" was missing.
func (n *Node) Unterminated() bool { return n.flagA }
