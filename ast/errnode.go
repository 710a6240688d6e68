package ast

import "github.com/cypher-lang/cypherparser/position"

// NewErrorNode constructs the placeholder emitted by error recovery
// (spec §4.3.2) covering the skipped input range. value is the raw
// skipped text, kept so tooling can still inspect what was discarded.
// ErrorNode carries no category: instance_of against any category must
// return false for a recovered region.
func (a *Arena) NewErrorNode(rng position.Range, value string) (*Node, error) {
	return a.build(spec{kind: KindError, rng: rng, text: value})
}

// ErrorValue returns an Error node's raw skipped source text.
func (n *Node) ErrorValue() string { return n.text }
