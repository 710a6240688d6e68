package ast

import "github.com/cypher-lang/cypherparser/position"

// buildComprehension builds the shape shared by list-comprehension-shaped
// nodes: [var IN expr WHERE predicate | eval]. predicate and eval are
// both optional for ListComprehension; Filter/Extract/All/Any/Single/None
// each fix which of predicate/eval is present (spec §9's deprecated-alias
// note: Filter and Extract are accepted and tagged with their own primary
// kind rather than folded into ListComprehension).
func (a *Arena) buildComprehension(kind Kind, rng position.Range, ident, inExpr, predicate, eval *Node) (*Node, error) {
	if err := requireCategory(kind, "identifier", ident, CategoryExpression); err != nil {
		return nil, err
	}
	if err := requireCategory(kind, "range expression", inExpr, CategoryExpression); err != nil {
		return nil, err
	}
	children := []*Node{ident, inExpr}
	roles := map[role]int{roleIdentifier: 0, roleExpression: 1}
	if predicate != nil {
		roles[rolePredicate] = len(children)
		children = append(children, predicate)
	}
	if eval != nil {
		roles[roleElseDefault] = len(children)
		children = append(children, eval)
	}
	return a.build(spec{kind: kind, rng: rng, children: children, roles: roles})
}

// ComprehensionIdentifier returns the bound identifier of a
// comprehension-shaped node.
func (n *Node) ComprehensionIdentifier() *Node { return n.roleChild(roleIdentifier) }

// InExpression returns the collection expression being iterated.
func (n *Node) InExpression() *Node { return n.roleChild(roleExpression) }

// Predicate returns the optional WHERE predicate of a comprehension-shaped
// node, a Match clause, or a With clause.
func (n *Node) Predicate() *Node { return n.roleChild(rolePredicate) }

// Eval returns the optional "| expr" evaluation of a ListComprehension,
// Filter, or Extract node.
func (n *Node) Eval() *Node { return n.roleChild(roleElseDefault) }

// NewListComprehension constructs "[var IN expr WHERE pred | eval]".
func (a *Arena) NewListComprehension(rng position.Range, ident, inExpr, predicate, eval *Node) (*Node, error) {
	return a.buildComprehension(KindListComprehension, rng, ident, inExpr, predicate, eval)
}

// NewFilter constructs the deprecated filter(var IN expr WHERE pred) alias
// of a predicate-only list comprehension (spec §9 Open Question: accepted
// for legacy input, tagged with its own primary kind).
func (a *Arena) NewFilter(rng position.Range, ident, inExpr, predicate *Node) (*Node, error) {
	return a.buildComprehension(KindFilter, rng, ident, inExpr, predicate, nil)
}

// NewExtract constructs the deprecated extract(var IN expr | eval) alias.
func (a *Arena) NewExtract(rng position.Range, ident, inExpr, eval *Node) (*Node, error) {
	return a.buildComprehension(KindExtract, rng, ident, inExpr, nil, eval)
}

// NewAll, NewAny, NewSingle, NewNone construct the predicate quantifiers
// all(var IN expr WHERE pred), any(...), single(...), none(...).
func (a *Arena) NewAll(rng position.Range, ident, inExpr, predicate *Node) (*Node, error) {
	return a.buildComprehension(KindAll, rng, ident, inExpr, predicate, nil)
}

func (a *Arena) NewAny(rng position.Range, ident, inExpr, predicate *Node) (*Node, error) {
	return a.buildComprehension(KindAny, rng, ident, inExpr, predicate, nil)
}

func (a *Arena) NewSingle(rng position.Range, ident, inExpr, predicate *Node) (*Node, error) {
	return a.buildComprehension(KindSingle, rng, ident, inExpr, predicate, nil)
}

func (a *Arena) NewNone(rng position.Range, ident, inExpr, predicate *Node) (*Node, error) {
	return a.buildComprehension(KindNone, rng, ident, inExpr, predicate, nil)
}

// NewReduce constructs reduce(acc = init, var IN expr | eval).
func (a *Arena) NewReduce(rng position.Range, acc, init, ident, inExpr, eval *Node) (*Node, error) {
	for roleName, child := range map[string]*Node{"accumulator": acc, "initial value": init, "identifier": ident, "range expression": inExpr, "eval": eval} {
		if err := requireCategory(KindReduce, roleName, child, CategoryExpression); err != nil {
			return nil, err
		}
	}
	children := []*Node{acc, init, ident, inExpr, eval}
	roles := map[role]int{roleLeft: 0, roleRight: 1, roleIdentifier: 2, roleExpression: 3, roleElseDefault: 4}
	return a.build(spec{kind: KindReduce, rng: rng, children: children, roles: roles})
}

// Accumulator and InitialValue return a Reduce node's accumulator
// identifier and its initializer expression.
func (n *Node) Accumulator() *Node   { return n.roleChild(roleLeft) }
func (n *Node) InitialValue() *Node  { return n.roleChild(roleRight) }
