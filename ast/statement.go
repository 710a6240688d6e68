package ast

import "github.com/cypher-lang/cypherparser/position"

// NewStatement constructs the root of a directive: zero or more
// statement options (CYPHER/EXPLAIN/PROFILE) followed by a body, which
// is either a Query or a schema command.
func (a *Arena) NewStatement(rng position.Range, options []*Node, body *Node) (*Node, error) {
	for _, o := range options {
		if err := requireCategory(KindStatement, "option", o, CategoryStatementOption); err != nil {
			return nil, err
		}
	}
	if body == nil || (body.kind != KindQuery && !body.Is(CategorySchemaCommand)) {
		return nil, argErr(KindStatement, "body must be a query or schema command")
	}
	children := append(append([]*Node{}, options...), body)
	return a.build(spec{
		kind: KindStatement, rng: rng, children: children,
		roles:  map[role]int{roleBody: len(children) - 1},
		ranges: map[role][2]int{roleOptions: {0, len(options)}},
	})
}

// Options returns a Statement's CYPHER/EXPLAIN/PROFILE options.
func (n *Node) Options() []*Node { return n.roleChildren(roleOptions) }

// Body returns a Statement's query or schema-command body.
func (n *Node) Body() *Node { return n.roleChild(roleBody) }

// NewCypherOption constructs a "CYPHER [version] [param=value ...]"
// option.
func (a *Arena) NewCypherOption(rng position.Range, version *Node, params []*Node) (*Node, error) {
	var children []*Node
	roles := map[role]int{}
	if version != nil {
		roles[roleVersion] = len(children)
		children = append(children, version)
	}
	paramStart := len(children)
	children = append(children, params...)
	return a.build(spec{
		kind: KindCypherOption, rng: rng, children: children, roles: roles,
		ranges: map[role][2]int{roleOptionParams: {paramStart, len(children)}},
	})
}

// Version returns a CypherOption's optional version identifier.
func (n *Node) Version() *Node { return n.roleChild(roleVersion) }

// OptionParams returns a CypherOption's "name=value" parameters.
func (n *Node) OptionParams() []*Node { return n.roleChildren(roleOptionParams) }

// NewCypherOptionParam constructs one "name=value" CYPHER option param.
func (a *Arena) NewCypherOptionParam(rng position.Range, name, value *Node) (*Node, error) {
	return a.build(spec{
		kind: KindCypherOptionParam, rng: rng, children: []*Node{name, value},
		roles: map[role]int{roleIdentifier: 0, roleRight: 1},
	})
}

// ParamName returns a CypherOptionParam's name leaf.
func (n *Node) ParamName() *Node { return n.roleChild(roleIdentifier) }

// ParamValue returns a CypherOptionParam's value leaf.
func (n *Node) ParamValue() *Node { return n.roleChild(roleRight) }

// NewExplainOption and NewProfileOption construct the EXPLAIN/PROFILE
// statement options; both are zero-child markers.
func (a *Arena) NewExplainOption(rng position.Range) (*Node, error) {
	return a.build(spec{kind: KindExplainOption, rng: rng})
}

func (a *Arena) NewProfileOption(rng position.Range) (*Node, error) {
	return a.build(spec{kind: KindProfileOption, rng: rng})
}

// NewQuery constructs a query body: zero or more query options
// (USING PERIODIC COMMIT) followed by one or more clauses.
func (a *Arena) NewQuery(rng position.Range, options, clauses []*Node) (*Node, error) {
	for _, o := range options {
		if err := requireCategory(KindQuery, "option", o, CategoryQueryOption); err != nil {
			return nil, err
		}
	}
	for _, c := range clauses {
		if err := requireCategory(KindQuery, "clause", c, CategoryQueryClause); err != nil {
			return nil, err
		}
	}
	children := append(append([]*Node{}, options...), clauses...)
	ranges := map[role][2]int{
		roleOptions: {0, len(options)},
		roleClauses: {len(options), len(children)},
	}
	return a.build(spec{kind: KindQuery, rng: rng, children: children, ranges: ranges})
}

// QueryOptions returns a Query's USING PERIODIC COMMIT options.
func (n *Node) QueryOptions() []*Node { return n.roleChildren(roleOptions) }

// QueryClauses returns a Query's clause list in source order, including
// any interleaved Union markers.
func (n *Node) QueryClauses() []*Node { return n.roleChildren(roleClauses) }

// NewUsingPeriodicCommit constructs "USING PERIODIC COMMIT [limit]".
func (a *Arena) NewUsingPeriodicCommit(rng position.Range, limit *Node) (*Node, error) {
	var children []*Node
	roles := map[role]int{}
	if limit != nil {
		roles[roleLimit] = len(children)
		children = append(children, limit)
	}
	return a.build(spec{kind: KindUsingPeriodicCommit, rng: rng, children: children, roles: roles})
}

// PeriodicCommitLimit returns a UsingPeriodicCommit node's optional batch
// size, or nil if unspecified.
func (n *Node) PeriodicCommitLimit() *Node { return n.roleChild(roleLimit) }

// NewStart constructs a legacy START clause: one or more start points
// plus an optional WHERE predicate.
func (a *Arena) NewStart(rng position.Range, points []*Node, predicate *Node) (*Node, error) {
	for _, p := range points {
		if err := requireCategory(KindStart, "start point", p, CategoryStartPoint); err != nil {
			return nil, err
		}
	}
	children := append([]*Node{}, points...)
	ranges := map[role][2]int{roleStartPoints: {0, len(children)}}
	roles := map[role]int{}
	if predicate != nil {
		roles[rolePredicate] = len(children)
		children = append(children, predicate)
	}
	return a.build(spec{kind: KindStart, rng: rng, children: children, roles: roles, ranges: ranges})
}

// StartPoints returns a Start clause's start points.
func (n *Node) StartPoints() []*Node { return n.roleChildren(roleStartPoints) }

// NewNodeIndexLookup constructs "ident = node:index(propName = lookup)".
func (a *Arena) NewNodeIndexLookup(rng position.Range, ident, indexName, propName, lookup *Node) (*Node, error) {
	return a.build(spec{
		kind: KindNodeIndexLookup, rng: rng, children: []*Node{ident, indexName, propName, lookup},
		roles: map[role]int{roleIdentifier: 0, roleIndexName: 1, rolePropName: 2, roleRight: 3},
	})
}

// NewRelIndexLookup constructs "ident = relationship:index(propName = lookup)".
func (a *Arena) NewRelIndexLookup(rng position.Range, ident, indexName, propName, lookup *Node) (*Node, error) {
	return a.build(spec{
		kind: KindRelIndexLookup, rng: rng, children: []*Node{ident, indexName, propName, lookup},
		roles: map[role]int{roleIdentifier: 0, roleIndexName: 1, rolePropName: 2, roleRight: 3},
	})
}

// IndexName returns a start point's index name leaf.
func (n *Node) IndexName() *Node { return n.roleChild(roleIndexName) }

// Lookup returns a NodeIndexLookup or RelIndexLookup's matched value
// expression.
func (n *Node) Lookup() *Node { return n.roleChild(roleRight) }

// NewNodeIndexQuery constructs "ident = node:index(query)".
func (a *Arena) NewNodeIndexQuery(rng position.Range, ident, indexName, query *Node) (*Node, error) {
	return a.build(spec{
		kind: KindNodeIndexQuery, rng: rng, children: []*Node{ident, indexName, query},
		roles: map[role]int{roleIdentifier: 0, roleIndexName: 1, roleRight: 2},
	})
}

// NewRelIndexQuery constructs "ident = relationship:index(query)".
func (a *Arena) NewRelIndexQuery(rng position.Range, ident, indexName, query *Node) (*Node, error) {
	return a.build(spec{
		kind: KindRelIndexQuery, rng: rng, children: []*Node{ident, indexName, query},
		roles: map[role]int{roleIdentifier: 0, roleIndexName: 1, roleRight: 2},
	})
}

// Query returns a NodeIndexQuery or RelIndexQuery's Lucene-style query
// expression.
func (n *Node) Query() *Node { return n.roleChild(roleRight) }

// NewNodeIDLookup constructs "ident = node(id1, id2, ...)".
func (a *Arena) NewNodeIDLookup(rng position.Range, ident *Node, ids []*Node) (*Node, error) {
	children := append([]*Node{ident}, ids...)
	return a.build(spec{
		kind: KindNodeIDLookup, rng: rng, children: children,
		roles: map[role]int{roleIdentifier: 0}, ranges: map[role][2]int{roleArgs: {1, len(children)}},
	})
}

// NewRelIDLookup constructs "ident = relationship(id1, id2, ...)".
func (a *Arena) NewRelIDLookup(rng position.Range, ident *Node, ids []*Node) (*Node, error) {
	children := append([]*Node{ident}, ids...)
	return a.build(spec{
		kind: KindRelIDLookup, rng: rng, children: children,
		roles: map[role]int{roleIdentifier: 0}, ranges: map[role][2]int{roleArgs: {1, len(children)}},
	})
}

// IDs returns a NodeIDLookup or RelIDLookup's looked-up ID expressions.
func (n *Node) IDs() []*Node { return n.roleChildren(roleArgs) }

// NewAllNodesScan constructs "ident = node(*)".
func (a *Arena) NewAllNodesScan(rng position.Range, ident *Node) (*Node, error) {
	return a.build(spec{kind: KindAllNodesScan, rng: rng, children: []*Node{ident}, roles: map[role]int{roleIdentifier: 0}})
}

// NewAllRelsScan constructs "ident = relationship(*)".
func (a *Arena) NewAllRelsScan(rng position.Range, ident *Node) (*Node, error) {
	return a.build(spec{kind: KindAllRelsScan, rng: rng, children: []*Node{ident}, roles: map[role]int{roleIdentifier: 0}})
}

// NewUsingIndex constructs "USING INDEX ident:Label(propName)".
func (a *Arena) NewUsingIndex(rng position.Range, ident, label, propName *Node) (*Node, error) {
	return a.build(spec{
		kind: KindUsingIndex, rng: rng, children: []*Node{ident, label, propName},
		roles: map[role]int{roleIdentifier: 0, roleLabels: 1, rolePropName: 2},
	})
}

// Label returns a UsingIndex or UsingScan hint's indexed label leaf.
func (n *Node) Label() *Node { return n.roleChild(roleLabels) }

// NewUsingJoin constructs "USING JOIN ON ident1, ident2, ...".
func (a *Arena) NewUsingJoin(rng position.Range, idents []*Node) (*Node, error) {
	return a.build(spec{kind: KindUsingJoin, rng: rng, children: idents, ranges: map[role][2]int{roleIdentifier: {0, len(idents)}}})
}

// JoinIdentifiers returns a UsingJoin hint's join identifiers.
func (n *Node) JoinIdentifiers() []*Node { return n.roleChildren(roleIdentifier) }

// NewUsingScan constructs "USING SCAN ident:Label".
func (a *Arena) NewUsingScan(rng position.Range, ident, label *Node) (*Node, error) {
	return a.build(spec{
		kind: KindUsingScan, rng: rng, children: []*Node{ident, label},
		roles: map[role]int{roleIdentifier: 0, roleLabels: 1},
	})
}

// NewCreateNodePropIndex constructs "CREATE INDEX ON :Label(propName)".
func (a *Arena) NewCreateNodePropIndex(rng position.Range, label, propName *Node) (*Node, error) {
	return a.build(spec{
		kind: KindCreateNodePropIndex, rng: rng, children: []*Node{label, propName},
		roles: map[role]int{roleLabels: 0, rolePropName: 1},
	})
}

// NewDropNodePropIndex constructs "DROP INDEX ON :Label(propName)".
func (a *Arena) NewDropNodePropIndex(rng position.Range, label, propName *Node) (*Node, error) {
	return a.build(spec{
		kind: KindDropNodePropIndex, rng: rng, children: []*Node{label, propName},
		roles: map[role]int{roleLabels: 0, rolePropName: 1},
	})
}

// NewCreateNodePropConstraint constructs
// "CREATE CONSTRAINT ON (ident:Label) ASSERT expr IS [NODE] UNIQUE".
// unique distinguishes UNIQUE from the non-unique EXISTS-style form.
func (a *Arena) NewCreateNodePropConstraint(rng position.Range, ident, label, expr *Node, unique bool) (*Node, error) {
	return a.build(spec{
		kind: KindCreateNodePropConstraint, rng: rng, flagA: unique,
		children: []*Node{ident, label, expr},
		roles:    map[role]int{roleIdentifier: 0, roleLabels: 1, roleExpression: 2},
	})
}

// NewDropNodePropConstraint constructs the DROP CONSTRAINT counterpart of
// NewCreateNodePropConstraint.
func (a *Arena) NewDropNodePropConstraint(rng position.Range, ident, label, expr *Node, unique bool) (*Node, error) {
	return a.build(spec{
		kind: KindDropNodePropConstraint, rng: rng, flagA: unique,
		children: []*Node{ident, label, expr},
		roles:    map[role]int{roleIdentifier: 0, roleLabels: 1, roleExpression: 2},
	})
}

// NewCreateRelPropConstraint and NewDropRelPropConstraint are the
// relationship-typed analogues, keyed by reltype instead of label.
func (a *Arena) NewCreateRelPropConstraint(rng position.Range, ident, reltype, expr *Node, unique bool) (*Node, error) {
	return a.build(spec{
		kind: KindCreateRelPropConstraint, rng: rng, flagA: unique,
		children: []*Node{ident, reltype, expr},
		roles:    map[role]int{roleIdentifier: 0, roleReltypes: 1, roleExpression: 2},
	})
}

func (a *Arena) NewDropRelPropConstraint(rng position.Range, ident, reltype, expr *Node, unique bool) (*Node, error) {
	return a.build(spec{
		kind: KindDropRelPropConstraint, rng: rng, flagA: unique,
		children: []*Node{ident, reltype, expr},
		roles:    map[role]int{roleIdentifier: 0, roleReltypes: 1, roleExpression: 2},
	})
}

// RelType returns a relationship constraint command's constrained reltype
// leaf.
func (n *Node) RelType() *Node { return n.roleChild(roleReltypes) }

// IsUnique reports the UNIQUE flag of a schema constraint command.
func (n *Node) IsUnique() bool { return n.flagA }

// ConstraintExpression returns a schema constraint command's asserted
// expression.
func (n *Node) ConstraintExpression() *Node { return n.roleChild(roleExpression) }
