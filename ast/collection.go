package ast

import (
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
)

// NewCollection constructs a list literal "[e1, e2, ...]".
func (a *Arena) NewCollection(rng position.Range, elements []*Node) (*Node, error) {
	for _, e := range elements {
		if err := requireCategory(KindCollection, "element", e, CategoryExpression); err != nil {
			return nil, err
		}
	}
	return a.build(spec{
		kind: KindCollection, rng: rng, children: elements,
		ranges: map[role][2]int{roleExpression: {0, len(elements)}},
	})
}

// Elements returns a Collection node's elements.
func (n *Node) Elements() []*Node { return n.roleChildren(roleExpression) }

// NewMap constructs a map literal "{k1: v1, k2: v2, ...}"; keys and
// values must have the same length and are paired positionally. Keys are
// plain property names, stored as the node's string-list attribute since
// (unlike pattern/projection names) the original library does not expose
// them as their own ranged nodes.
func (a *Arena) NewMap(rng position.Range, keys []string, values []*Node) (*Node, error) {
	if len(keys) != len(values) {
		return nil, perr.ErrInvalidRoleCount.New("map", len(keys), len(values))
	}
	for _, v := range values {
		if err := requireCategory(KindMap, "value", v, CategoryExpression); err != nil {
			return nil, err
		}
	}
	return a.build(spec{
		kind: KindMap, rng: rng, children: values, strList: keys,
		ranges: map[role][2]int{roleExpression: {0, len(values)}},
	})
}

// Keys returns a Map node's property names, positionally aligned with
// Values (and with Elements, the generic child accessor).
func (n *Node) Keys() []string { return n.strList }

// Values returns a Map node's value expressions, positionally aligned
// with Keys.
func (n *Node) Values() []*Node { return n.roleChildren(roleExpression) }
