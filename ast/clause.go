package ast

import (
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
)

// NewMatch constructs a MATCH (or OPTIONAL MATCH, when optional is set)
// clause: a pattern, zero or more hints, and an optional WHERE predicate.
func (a *Arena) NewMatch(rng position.Range, optional bool, pattern *Node, hints []*Node, predicate *Node) (*Node, error) {
	if pattern == nil || pattern.kind != KindPattern {
		return nil, perr.ErrInvalidArgument.New("pattern", "pattern")
	}
	children := []*Node{pattern}
	roles := map[role]int{rolePattern: 0}
	hintStart := len(children)
	children = append(children, hints...)
	ranges := map[role][2]int{roleHints: {hintStart, len(children)}}
	if predicate != nil {
		roles[rolePredicate] = len(children)
		children = append(children, predicate)
	}
	return a.build(spec{kind: KindMatch, rng: rng, flagA: optional, children: children, roles: roles, ranges: ranges})
}

// Optional reports the OPTIONAL flag of a Match clause.
func (n *Node) Optional() bool { return n.flagA }

// Hints returns a Match clause's USING INDEX/JOIN/SCAN hints.
func (n *Node) Hints() []*Node { return n.roleChildren(roleHints) }

// NewCreate constructs a CREATE clause.
func (a *Arena) NewCreate(rng position.Range, pattern *Node) (*Node, error) {
	if pattern == nil || pattern.kind != KindPattern {
		return nil, perr.ErrInvalidArgument.New("pattern", "pattern")
	}
	return a.build(spec{kind: KindCreate, rng: rng, children: []*Node{pattern}, roles: map[role]int{rolePattern: 0}})
}

// NewMerge constructs a MERGE clause: one pattern path plus interleaved
// ON MATCH/ON CREATE actions, in source order.
func (a *Arena) NewMerge(rng position.Range, path *Node, actions []*Node) (*Node, error) {
	children := []*Node{path}
	roles := map[role]int{rolePattern: 0}
	actionStart := len(children)
	children = append(children, actions...)
	ranges := map[role][2]int{roleMergeActions: {actionStart, len(children)}}
	return a.build(spec{kind: KindMerge, rng: rng, children: children, roles: roles, ranges: ranges})
}

// MergeActions returns a Merge clause's ON MATCH/ON CREATE actions.
func (n *Node) MergeActions() []*Node { return n.roleChildren(roleMergeActions) }

// NewOnMatch and NewOnCreate construct a MERGE action wrapping a list of
// SET items, applied when the pattern already existed or was just
// created respectively.
func (a *Arena) NewOnMatch(rng position.Range, setItems []*Node) (*Node, error) {
	return a.build(spec{kind: KindOnMatch, rng: rng, children: setItems, ranges: map[role][2]int{roleSetItems: {0, len(setItems)}}})
}

func (a *Arena) NewOnCreate(rng position.Range, setItems []*Node) (*Node, error) {
	return a.build(spec{kind: KindOnCreate, rng: rng, children: setItems, ranges: map[role][2]int{roleSetItems: {0, len(setItems)}}})
}

// SetItems returns a MERGE action's or a SET clause's items.
func (n *Node) SetItems() []*Node { return n.roleChildren(roleSetItems) }

// NewSet constructs a SET clause from its disambiguated items (spec
// §4.3's one-token-lookahead rule for which SetItem subkind applies runs
// in the parser; the builder only validates the resulting category).
func (a *Arena) NewSet(rng position.Range, items []*Node) (*Node, error) {
	for _, it := range items {
		if err := requireCategory(KindSet, "item", it, CategorySetItem); err != nil {
			return nil, err
		}
	}
	return a.build(spec{kind: KindSet, rng: rng, children: items, ranges: map[role][2]int{roleSetItems: {0, len(items)}}})
}

// NewSetProperty constructs "target.prop = value".
func (a *Arena) NewSetProperty(rng position.Range, target, value *Node) (*Node, error) {
	if target == nil || target.kind != KindPropertyOperator {
		return nil, perr.ErrInvalidArgument.New("target", "property-operator")
	}
	return a.build(spec{
		kind: KindSetProperty, rng: rng, children: []*Node{target, value},
		roles: map[role]int{roleLeft: 0, roleRight: 1},
	})
}

// NewSetAllProperties constructs "ident = {props}" or "ident = $param".
func (a *Arena) NewSetAllProperties(rng position.Range, ident, value *Node) (*Node, error) {
	return a.build(spec{
		kind: KindSetAllProperties, rng: rng, children: []*Node{ident, value},
		roles: map[role]int{roleIdentifier: 0, roleRight: 1},
	})
}

// NewMergeProperties constructs "ident += {props}".
func (a *Arena) NewMergeProperties(rng position.Range, ident, value *Node) (*Node, error) {
	return a.build(spec{
		kind: KindMergeProperties, rng: rng, children: []*Node{ident, value},
		roles: map[role]int{roleIdentifier: 0, roleRight: 1},
	})
}

// Value returns the right-hand value of a SetAllProperties,
// MergeProperties, or SetProperty node, or the source expression of an
// Unwind clause.
func (n *Node) Value() *Node { return n.roleChild(roleRight) }

// NewSetLabels constructs "ident:Label1:Label2".
func (a *Arena) NewSetLabels(rng position.Range, ident *Node, labels []*Node) (*Node, error) {
	children := append([]*Node{ident}, labels...)
	return a.build(spec{
		kind: KindSetLabels, rng: rng, children: children,
		roles: map[role]int{roleIdentifier: 0}, ranges: map[role][2]int{roleLabels: {1, len(children)}},
	})
}

// NewDelete constructs a DELETE (or DETACH DELETE, when detach is set)
// clause over one or more expressions.
func (a *Arena) NewDelete(rng position.Range, detach bool, expressions []*Node) (*Node, error) {
	return a.build(spec{
		kind: KindDelete, rng: rng, flagA: detach, children: expressions,
		ranges: map[role][2]int{roleExpression: {0, len(expressions)}},
	})
}

// Detach reports the DETACH flag of a Delete clause.
func (n *Node) Detach() bool { return n.flagA }

// Expressions returns a Delete clause's expression list.
func (n *Node) Expressions() []*Node { return n.roleChildren(roleExpression) }

// NewRemove constructs a REMOVE clause.
func (a *Arena) NewRemove(rng position.Range, items []*Node) (*Node, error) {
	for _, it := range items {
		if err := requireCategory(KindRemove, "item", it, CategoryRemoveItem); err != nil {
			return nil, err
		}
	}
	return a.build(spec{kind: KindRemove, rng: rng, children: items, ranges: map[role][2]int{roleRemoveItems: {0, len(items)}}})
}

// RemoveItems returns a Remove clause's items.
func (n *Node) RemoveItems() []*Node { return n.roleChildren(roleRemoveItems) }

// NewRemoveLabels constructs "ident:Label1:Label2" as a REMOVE item.
func (a *Arena) NewRemoveLabels(rng position.Range, ident *Node, labels []*Node) (*Node, error) {
	children := append([]*Node{ident}, labels...)
	return a.build(spec{
		kind: KindRemoveLabels, rng: rng, children: children,
		roles: map[role]int{roleIdentifier: 0}, ranges: map[role][2]int{roleLabels: {1, len(children)}},
	})
}

// NewRemoveProperty constructs "target.prop" as a REMOVE item.
func (a *Arena) NewRemoveProperty(rng position.Range, target *Node) (*Node, error) {
	return a.build(spec{kind: KindRemoveProperty, rng: rng, children: []*Node{target}, roles: map[role]int{roleExpression: 0}})
}

// PropertyTarget returns a RemoveProperty item's target property-operator.
func (n *Node) PropertyTarget() *Node { return n.roleChild(roleExpression) }

// NewForeach constructs "FOREACH (ident IN expr | clauses)".
func (a *Arena) NewForeach(rng position.Range, ident, inExpr *Node, clauses []*Node) (*Node, error) {
	children := []*Node{ident, inExpr}
	roles := map[role]int{roleIdentifier: 0, roleExpression: 1}
	clauseStart := len(children)
	children = append(children, clauses...)
	ranges := map[role][2]int{roleClauses: {clauseStart, len(children)}}
	return a.build(spec{kind: KindForeach, rng: rng, children: children, roles: roles, ranges: ranges})
}

// Foreach's iterated-over expression is read with InExpression, shared
// with list comprehensions since both use the "ident IN expr" shape.

// Clauses returns a Foreach node's nested update clauses, or a Query's
// clause list (context determines which).
func (n *Node) Clauses() []*Node { return n.roleChildren(roleClauses) }

// NewUnwind constructs "UNWIND expr AS ident".
func (a *Arena) NewUnwind(rng position.Range, expr, ident *Node) (*Node, error) {
	return a.build(spec{
		kind: KindUnwind, rng: rng, children: []*Node{expr, ident},
		roles: map[role]int{roleRight: 0, roleIdentifier: 1},
	})
}

// NewCall constructs "CALL proc.name(args) YIELD items".
func (a *Arena) NewCall(rng position.Range, procName *Node, args, yieldItems []*Node) (*Node, error) {
	children := []*Node{procName}
	roles := map[role]int{roleProcName: 0}
	argStart := len(children)
	children = append(children, args...)
	ranges := map[role][2]int{roleArgs: {argStart, len(children)}}
	yieldStart := len(children)
	children = append(children, yieldItems...)
	ranges[roleYieldItems] = [2]int{yieldStart, len(children)}
	return a.build(spec{kind: KindCall, rng: rng, children: children, roles: roles, ranges: ranges})
}

// ProcName returns a Call clause's procedure name leaf.
func (n *Node) ProcName() *Node { return n.roleChild(roleProcName) }

// CallArgs returns a Call clause's argument expressions.
func (n *Node) CallArgs() []*Node { return n.roleChildren(roleArgs) }

// YieldItems returns a Call clause's YIELD identifiers.
func (n *Node) YieldItems() []*Node { return n.roleChildren(roleYieldItems) }

// NewReturn constructs a RETURN clause.
func (a *Arena) NewReturn(rng position.Range, distinct bool, projections []*Node, orderBy, skip, limit *Node) (*Node, error) {
	return a.build(projectionSpec(KindReturn, rng, distinct, projections, nil, orderBy, skip, limit))
}

// NewWith constructs a WITH clause, which additionally accepts WHERE.
func (a *Arena) NewWith(rng position.Range, distinct bool, projections []*Node, predicate, orderBy, skip, limit *Node) (*Node, error) {
	return a.build(projectionSpec(KindWith, rng, distinct, projections, predicate, orderBy, skip, limit))
}

func projectionSpec(kind Kind, rng position.Range, distinct bool, projections []*Node, predicate, orderBy, skip, limit *Node) spec {
	var children []*Node
	roles := map[role]int{}
	projStart := 0
	children = append(children, projections...)
	ranges := map[role][2]int{roleProjections: {projStart, len(children)}}
	if predicate != nil {
		roles[rolePredicate] = len(children)
		children = append(children, predicate)
	}
	if orderBy != nil {
		roles[roleOrderBy] = len(children)
		children = append(children, orderBy)
	}
	if skip != nil {
		roles[roleSkip] = len(children)
		children = append(children, skip)
	}
	if limit != nil {
		roles[roleLimit] = len(children)
		children = append(children, limit)
	}
	return spec{kind: kind, rng: rng, flagA: distinct, children: children, roles: roles, ranges: ranges}
}

// Projections returns a Return or With clause's projection list.
func (n *Node) Projections() []*Node { return n.roleChildren(roleProjections) }

// OrderByClause returns a Return or With clause's optional ORDER BY.
func (n *Node) OrderByClause() *Node { return n.roleChild(roleOrderBy) }

// Skip and Limit return a Return or With clause's optional SKIP/LIMIT
// expressions.
func (n *Node) Skip() *Node  { return n.roleChild(roleSkip) }
func (n *Node) Limit() *Node { return n.roleChild(roleLimit) }

// NewUnion constructs a UNION (or UNION ALL, when all is set) marker
// clause, interleaved between single-query clause runs in a Query's
// clause list.
func (a *Arena) NewUnion(rng position.Range, all bool) (*Node, error) {
	return a.build(spec{kind: KindUnion, rng: rng, flagA: all})
}

// All reports the ALL flag of a Union node.
func (n *Node) All() bool { return n.flagA }

// NewProjection constructs one RETURN/WITH projection item: expr, with an
// optional AS alias.
func (a *Arena) NewProjection(rng position.Range, expr, alias *Node) (*Node, error) {
	if err := requireCategory(KindProjection, "expression", expr, CategoryExpression); err != nil {
		return nil, err
	}
	children := []*Node{expr}
	roles := map[role]int{roleExpression: 0}
	if alias != nil {
		roles[roleIdentifier] = len(children)
		children = append(children, alias)
	}
	return a.build(spec{kind: KindProjection, rng: rng, children: children, roles: roles})
}

// ProjectionExpression returns a Projection's underlying expression.
func (n *Node) ProjectionExpression() *Node { return n.roleChild(roleExpression) }

// Alias returns a Projection's optional AS alias identifier.
func (n *Node) Alias() *Node { return n.roleChild(roleIdentifier) }

// NewOrderBy constructs an ORDER BY clause from its sort items.
func (a *Arena) NewOrderBy(rng position.Range, items []*Node) (*Node, error) {
	return a.build(spec{kind: KindOrderBy, rng: rng, children: items, ranges: map[role][2]int{roleProjections: {0, len(items)}}})
}

// SortItems returns an OrderBy node's sort items.
func (n *Node) SortItems() []*Node { return n.roleChildren(roleProjections) }

// NewSortItem constructs one ORDER BY item: expr [ASC|DESC]; ascending
// defaults to true.
func (a *Arena) NewSortItem(rng position.Range, expr *Node, ascending bool) (*Node, error) {
	if err := requireCategory(KindSortItem, "expression", expr, CategoryExpression); err != nil {
		return nil, err
	}
	return a.build(spec{kind: KindSortItem, rng: rng, flagA: ascending, children: []*Node{expr}, roles: map[role]int{roleExpression: 0}})
}

// Ascending reports a SortItem's direction (true for ASC, the default).
func (n *Node) Ascending() bool { return n.flagA }

// NewLoadCSV constructs "LOAD CSV [WITH HEADERS] FROM url AS ident
// [FIELDTERMINATOR sep]".
func (a *Arena) NewLoadCSV(rng position.Range, withHeaders bool, url, ident, fieldTerminator *Node) (*Node, error) {
	children := []*Node{url, ident}
	roles := map[role]int{roleExpression: 0, roleIdentifier: 1}
	if fieldTerminator != nil {
		roles[roleFieldTerminator] = len(children)
		children = append(children, fieldTerminator)
	}
	return a.build(spec{kind: KindLoadCSV, rng: rng, flagA: withHeaders, children: children, roles: roles})
}

// WithHeaders reports the WITH HEADERS flag of a LoadCSV clause.
func (n *Node) WithHeaders() bool { return n.flagA }

// URL returns a LoadCSV clause's source expression.
func (n *Node) URL() *Node { return n.roleChild(roleExpression) }

// FieldTerminator returns a LoadCSV clause's optional separator literal.
func (n *Node) FieldTerminator() *Node { return n.roleChild(roleFieldTerminator) }
