package ast

import (
	"strconv"

	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
)

// NewPattern constructs the top-level container of one or more
// comma-separated pattern paths in a MATCH/CREATE/MERGE (the parent the
// distilled taxonomy table leaves implicit; see SPEC_FULL.md).
func (a *Arena) NewPattern(rng position.Range, paths []*Node) (*Node, error) {
	if len(paths) == 0 {
		return nil, perr.ErrInvalidRoleCount.New("pattern", 1, 0)
	}
	for _, p := range paths {
		if err := requireCategory(KindPattern, "pattern path", p, CategoryPatternPath); err != nil {
			return nil, err
		}
	}
	return a.build(spec{kind: KindPattern, rng: rng, children: paths, ranges: map[role][2]int{rolePatternPaths: {0, len(paths)}}})
}

// PatternPaths returns a Pattern node's constituent pattern paths.
func (n *Node) PatternPaths() []*Node { return n.roleChildren(rolePatternPaths) }

// NewPatternPath constructs a non-empty alternation of node-pattern and
// rel-pattern nodes, starting and ending with node-patterns (spec §4.3).
func (a *Arena) NewPatternPath(rng position.Range, elements []*Node) (*Node, error) {
	if len(elements) == 0 || len(elements)%2 == 0 {
		return nil, perr.ErrInvalidPattern.New("pattern path must have an odd number of alternating node/rel elements")
	}
	for i, e := range elements {
		wantNode := i%2 == 0
		if wantNode && e.kind != KindNodePattern {
			return nil, perr.ErrInvalidPattern.New("expected node pattern at position " + strconv.Itoa(i))
		}
		if !wantNode && e.kind != KindRelPattern {
			return nil, perr.ErrInvalidPattern.New("expected relationship pattern at position " + strconv.Itoa(i))
		}
	}
	return a.build(spec{kind: KindPatternPath, rng: rng, children: elements, ranges: map[role][2]int{roleElements: {0, len(elements)}}})
}

// PathElements returns a PatternPath's alternating node/rel-pattern sequence.
func (n *Node) PathElements() []*Node { return n.roleChildren(roleElements) }

// NewNamedPath constructs "ident = patternPath".
func (a *Arena) NewNamedPath(rng position.Range, ident, path *Node) (*Node, error) {
	if err := requireCategory(KindNamedPath, "identifier", ident, CategoryExpression); err != nil {
		return nil, err
	}
	if err := requireCategory(KindNamedPath, "path", path, CategoryPatternPath); err != nil {
		return nil, err
	}
	return a.build(spec{
		kind: KindNamedPath, rng: rng, children: []*Node{ident, path},
		roles: map[role]int{roleIdentifier: 0, rolePattern: 1},
	})
}

// PathIdentifier returns a NamedPath's bound identifier.
func (n *Node) PathIdentifier() *Node { return n.roleChild(roleIdentifier) }

// Path returns a NamedPath or ShortestPath node's underlying pattern path.
func (n *Node) Path() *Node { return n.roleChild(rolePattern) }

// NewShortestPath constructs shortestPath(path) or allShortestPaths(path);
// single distinguishes the two (true for shortestPath).
func (a *Arena) NewShortestPath(rng position.Range, path *Node, single bool) (*Node, error) {
	if err := requireCategory(KindShortestPath, "path", path, CategoryPatternPath); err != nil {
		return nil, err
	}
	return a.build(spec{
		kind: KindShortestPath, rng: rng, flagA: single,
		children: []*Node{path}, roles: map[role]int{rolePattern: 0},
	})
}

// Single reports whether a ShortestPath node is the single-path
// shortestPath() form (true) rather than allShortestPaths() (false).
func (n *Node) Single() bool { return n.flagA }

// NewNodePattern constructs "(var:Label1:Label2 {props})".
func (a *Arena) NewNodePattern(rng position.Range, variable *Node, labels []*Node, properties *Node) (*Node, error) {
	var children []*Node
	roles := map[role]int{}
	if variable != nil {
		roles[roleIdentifier] = len(children)
		children = append(children, variable)
	}
	labelStart := len(children)
	children = append(children, labels...)
	ranges := map[role][2]int{roleLabels: {labelStart, len(children)}}
	if properties != nil {
		if err := requireCategory(KindNodePattern, "properties", properties, CategoryExpression); err != nil {
			return nil, err
		}
		roles[roleProperties] = len(children)
		children = append(children, properties)
	}
	return a.build(spec{kind: KindNodePattern, rng: rng, children: children, roles: roles, ranges: ranges})
}

// Variable returns a NodePattern or RelPattern node's bound identifier, or
// nil if the pattern is anonymous.
func (n *Node) Variable() *Node { return n.roleChild(roleIdentifier) }

// Properties returns a NodePattern/RelPattern/Map-bearing node's property
// map or parameter, or nil.
func (n *Node) Properties() *Node { return n.roleChild(roleProperties) }

// NewRelPattern constructs "-[var:TYPE1|TYPE2*min..max {props}]->" (or
// <-...- / -...- per dir).
func (a *Arena) NewRelPattern(rng position.Range, dir Direction, variable *Node, reltypes []*Node, varLength *Node, properties *Node) (*Node, error) {
	var children []*Node
	roles := map[role]int{}
	if variable != nil {
		roles[roleIdentifier] = len(children)
		children = append(children, variable)
	}
	rtStart := len(children)
	children = append(children, reltypes...)
	ranges := map[role][2]int{roleReltypes: {rtStart, len(children)}}
	if varLength != nil {
		if varLength.kind != KindRange {
			return nil, perr.ErrInvalidArgument.New("variable length", "range")
		}
		roles[roleVariableLength] = len(children)
		children = append(children, varLength)
	}
	if properties != nil {
		roles[roleProperties] = len(children)
		children = append(children, properties)
	}
	return a.build(spec{kind: KindRelPattern, rng: rng, direction: dir, children: children, roles: roles, ranges: ranges})
}

// RelTypes returns a RelPattern node's "|"-separated relationship types.
func (n *Node) RelTypes() []*Node { return n.roleChildren(roleReltypes) }

// VariableLength returns a RelPattern node's optional "*min..max" Range
// node, or nil for a fixed-length relationship.
func (n *Node) VariableLength() *Node { return n.roleChild(roleVariableLength) }

// NewRange constructs the "*min..max" variable-length quantifier; either
// bound may be absent (hasMin/hasMax false) to leave it open.
func (a *Arena) NewRange(rng position.Range, min, max int, hasMin, hasMax bool) (*Node, error) {
	return a.build(spec{kind: KindRange, rng: rng, numA: min, numB: max, hasNumA: hasMin, hasNumB: hasMax})
}

// Min and Max return a Range node's bounds and whether each was present
// in the source (an absent bound is unconstrained, not zero).
func (n *Node) Min() (int, bool) { return n.numA, n.hasNumA }
func (n *Node) Max() (int, bool) { return n.numB, n.hasNumB }
