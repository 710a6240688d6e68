package ast

import "github.com/cypher-lang/cypherparser/position"

// NewIdentifier constructs an Identifier leaf node; name is the raw
// identifier text (escaped backquotes already resolved by the lexer).
func (a *Arena) NewIdentifier(rng position.Range, name string) (*Node, error) {
	return a.build(spec{kind: KindIdentifier, rng: rng, text: name})
}

// Name returns an Identifier node's name.
func (n *Node) Name() string { return n.text }

// NewParameter constructs a Parameter leaf node; name is the parameter
// name without its leading '$' or surrounding braces.
func (a *Arena) NewParameter(rng position.Range, name string) (*Node, error) {
	return a.build(spec{kind: KindParameter, rng: rng, text: name})
}

// NewString constructs a String literal node; value is the decoded text
// (escapes already resolved).
func (a *Arena) NewString(rng position.Range, value string) (*Node, error) {
	return a.build(spec{kind: KindString, rng: rng, text: value})
}

// StringValue returns a String node's decoded value.
func (n *Node) StringValue() string { return n.text }

// NewInteger constructs an Integer literal node; literal is the raw
// source text of the number (e.g. "0x1F", "042", "7").
func (a *Arena) NewInteger(rng position.Range, literal string) (*Node, error) {
	return a.build(spec{kind: KindInteger, rng: rng, text: literal})
}

// NewFloat constructs a Float literal node; literal is the raw source
// text of the number.
func (a *Arena) NewFloat(rng position.Range, literal string) (*Node, error) {
	return a.build(spec{kind: KindFloat, rng: rng, text: literal})
}

// Literal returns the raw source text of an Integer or Float node.
func (n *Node) Literal() string { return n.text }

// NewTrue and NewFalse construct the singleton-shaped boolean leaves.
func (a *Arena) NewTrue(rng position.Range) (*Node, error) {
	return a.build(spec{kind: KindTrue, rng: rng})
}

func (a *Arena) NewFalse(rng position.Range) (*Node, error) {
	return a.build(spec{kind: KindFalse, rng: rng})
}

// NewNull constructs the NULL leaf.
func (a *Arena) NewNull(rng position.Range) (*Node, error) {
	return a.build(spec{kind: KindNull, rng: rng})
}

// NewLabel, NewRelType, NewPropName, NewFunctionName, NewIndexName, and
// NewProcName construct the promoted name leaves described in
// SPEC_FULL.md's supplemented-features section: every name token gets its
// own ranged node instead of a bare string.
func (a *Arena) NewLabel(rng position.Range, name string) (*Node, error) {
	return a.build(spec{kind: KindLabel, rng: rng, text: name})
}

func (a *Arena) NewRelType(rng position.Range, name string) (*Node, error) {
	return a.build(spec{kind: KindRelType, rng: rng, text: name})
}

func (a *Arena) NewPropName(rng position.Range, name string) (*Node, error) {
	return a.build(spec{kind: KindPropName, rng: rng, text: name})
}

func (a *Arena) NewFunctionName(rng position.Range, name string) (*Node, error) {
	return a.build(spec{kind: KindFunctionName, rng: rng, text: name})
}

func (a *Arena) NewIndexName(rng position.Range, name string) (*Node, error) {
	return a.build(spec{kind: KindIndexName, rng: rng, text: name})
}

func (a *Arena) NewProcName(rng position.Range, name string) (*Node, error) {
	return a.build(spec{kind: KindProcName, rng: rng, text: name})
}
