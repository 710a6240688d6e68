package ast

import "github.com/cypher-lang/cypherparser/position"

// NewCommand constructs a client command directive (spec §4.3.1): a name
// and zero or more whitespace-separated argument words. Unlike a
// Statement, Command carries category directive only — it is never a
// query.
func (a *Arena) NewCommand(rng position.Range, name string, args []string) (*Node, error) {
	return a.build(spec{kind: KindCommand, rng: rng, text: name, strList: args})
}

// CommandName returns a Command node's name (without the leading ':').
func (n *Node) CommandName() string { return n.text }

// Arguments returns a Command node's argument words, double-quoted
// arguments already unescaped by parser.ScanCommand.
func (n *Node) Arguments() []string { return n.strList }
