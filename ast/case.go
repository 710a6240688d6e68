package ast

import (
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
)

// CaseAlternative is one WHEN predicate THEN value pair of a Case node.
// Design note §9 calls out the original's flat, must-be-even alternative
// list as an implementation hazard; this module exposes pairs instead and
// keeps the optional ELSE in its own accessor.
type CaseAlternative struct {
	Predicate *Node
	Value     *Node
}

// NewCase constructs a CASE node. caseExpr is non-nil only for the
// "simple" form (CASE expr WHEN v THEN r ...); when nil this is the
// "generic" form (CASE WHEN pred THEN r ...), and each alternative's
// Predicate is itself a boolean expression rather than a value to match
// against caseExpr. defaultValue is the optional ELSE clause.
func (a *Arena) NewCase(rng position.Range, caseExpr *Node, alternatives []CaseAlternative, defaultValue *Node) (*Node, error) {
	if len(alternatives) == 0 {
		return nil, perr.ErrInvalidRoleCount.New("case", 1, 0)
	}
	var children []*Node
	roles := map[role]int{}
	if caseExpr != nil {
		if err := requireCategory(KindCase, "case expression", caseExpr, CategoryExpression); err != nil {
			return nil, err
		}
		roles[roleExpression] = len(children)
		children = append(children, caseExpr)
	}
	altStart := len(children)
	for _, alt := range alternatives {
		if err := requireCategory(KindCase, "when predicate", alt.Predicate, CategoryExpression); err != nil {
			return nil, err
		}
		if err := requireCategory(KindCase, "then value", alt.Value, CategoryExpression); err != nil {
			return nil, err
		}
		children = append(children, alt.Predicate, alt.Value)
	}
	ranges := map[role][2]int{roleAlternatives: {altStart, len(children)}}
	if defaultValue != nil {
		if err := requireCategory(KindCase, "else value", defaultValue, CategoryExpression); err != nil {
			return nil, err
		}
		roles[roleElseDefault] = len(children)
		children = append(children, defaultValue)
	}
	return a.build(spec{kind: KindCase, rng: rng, children: children, roles: roles, ranges: ranges})
}

// CaseExpression returns the matched expression of a "simple" CASE, or
// nil for the "generic" form.
func (n *Node) CaseExpression() *Node { return n.roleChild(roleExpression) }

// Alternatives returns a Case node's WHEN/THEN pairs in source order.
func (n *Node) Alternatives() []CaseAlternative {
	flat := n.roleChildren(roleAlternatives)
	out := make([]CaseAlternative, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out = append(out, CaseAlternative{Predicate: flat[i], Value: flat[i+1]})
	}
	return out
}

// Default returns a Case node's optional ELSE value.
func (n *Node) Default() *Node { return n.roleChild(roleElseDefault) }
