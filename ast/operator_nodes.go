package ast

import (
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
)

// NewUnaryOperator constructs a prefix (NOT, unary +/-) or postfix
// (IS NULL, IS NOT NULL) unary operator node over operand.
func (a *Arena) NewUnaryOperator(rng position.Range, op OperatorTag, operand *Node) (*Node, error) {
	if err := requireCategory(KindUnaryOperator, "operand", operand, CategoryExpression); err != nil {
		return nil, err
	}
	return a.build(spec{
		kind: KindUnaryOperator, rng: rng, operator: op,
		children: []*Node{operand},
		roles:    map[role]int{roleExpression: 0},
	})
}

// Operand returns a UnaryOperator node's single child.
func (n *Node) Operand() *Node { return n.roleChild(roleExpression) }

// NewBinaryOperator constructs a binary operator node (arithmetic,
// boolean, EQ/NEQ, REGEX, IN, STARTS_WITH, CONTAINS).
func (a *Arena) NewBinaryOperator(rng position.Range, op OperatorTag, left, right *Node) (*Node, error) {
	if err := requireCategory(KindBinaryOperator, "left", left, CategoryExpression); err != nil {
		return nil, err
	}
	if err := requireCategory(KindBinaryOperator, "right", right, CategoryExpression); err != nil {
		return nil, err
	}
	return a.build(spec{
		kind: KindBinaryOperator, rng: rng, operator: op,
		children: []*Node{left, right},
		roles:    map[role]int{roleLeft: 0, roleRight: 1},
	})
}

// Left and Right return a BinaryOperator or PropertyOperator node's
// operands.
func (n *Node) Left() *Node  { return n.roleChild(roleLeft) }
func (n *Node) Right() *Node { return n.roleChild(roleRight) }

// NewComparison folds a chain "a0 op0 a1 op1 ... op(n-1) an" into a single
// Comparison node with n operators and n+1 argument children (spec §4.3,
// the "comparison chain" construct), rather than a nested binary tree.
func (a *Arena) NewComparison(rng position.Range, operators []OperatorTag, args []*Node) (*Node, error) {
	if len(args) != len(operators)+1 {
		return nil, perr.ErrInvalidRoleCount.New("comparison", len(operators)+1, len(args))
	}
	for _, arg := range args {
		if err := requireCategory(KindComparison, "argument", arg, CategoryExpression); err != nil {
			return nil, err
		}
	}
	return a.build(spec{kind: KindComparison, rng: rng, operators: append([]OperatorTag(nil), operators...), children: args})
}

// Operands returns a Comparison node's n+1 operand children.
func (n *Node) Operands() []*Node { return n.children }

// NewApplyOperator constructs a function-call node: func(args...), or
// func(DISTINCT args...) when distinct is set.
func (a *Arena) NewApplyOperator(rng position.Range, funcName *Node, distinct bool, args []*Node) (*Node, error) {
	if funcName == nil || funcName.kind != KindFunctionName {
		return nil, perr.ErrInvalidArgument.New("function name", "function-name")
	}
	children := append([]*Node{funcName}, args...)
	roles := map[role]int{roleFuncName: 0}
	return a.build(spec{kind: KindApplyOperator, rng: rng, flagA: distinct, children: children, roles: roles})
}

// FunctionName returns an ApplyOperator/ApplyAllOperator node's function
// name leaf.
func (n *Node) FunctionName() *Node { return n.roleChild(roleFuncName) }

// Distinct reports the DISTINCT flag on an ApplyOperator, ApplyAllOperator,
// Return, or With node. A Union node's flag is its ALL flag; read it with
// All.
func (n *Node) Distinct() bool { return n.flagA }

// Args returns an ApplyOperator's argument expressions (every child after
// the function name).
func (n *Node) Args() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[1:]
}

// NewApplyAllOperator constructs func(*) or func(DISTINCT *).
func (a *Arena) NewApplyAllOperator(rng position.Range, funcName *Node, distinct bool) (*Node, error) {
	return a.build(spec{
		kind: KindApplyAllOperator, rng: rng, flagA: distinct,
		children: []*Node{funcName}, roles: map[role]int{roleFuncName: 0},
	})
}

// NewPropertyOperator constructs "expr.propName".
func (a *Arena) NewPropertyOperator(rng position.Range, expr, propName *Node) (*Node, error) {
	if err := requireCategory(KindPropertyOperator, "expression", expr, CategoryExpression); err != nil {
		return nil, err
	}
	return a.build(spec{
		kind: KindPropertyOperator, rng: rng, operator: OpProperty,
		children: []*Node{expr, propName},
		roles:    map[role]int{roleLeft: 0, rolePropName: 1},
	})
}

// PropName returns a PropertyOperator, NodeIndexLookup, or RelIndexLookup
// node's prop-name leaf.
func (n *Node) PropName() *Node { return n.roleChild(rolePropName) }

// NewSubscriptOperator constructs "expr[index]".
func (a *Arena) NewSubscriptOperator(rng position.Range, expr, index *Node) (*Node, error) {
	if err := requireCategory(KindSubscriptOperator, "expression", expr, CategoryExpression); err != nil {
		return nil, err
	}
	if err := requireCategory(KindSubscriptOperator, "index", index, CategoryExpression); err != nil {
		return nil, err
	}
	return a.build(spec{
		kind: KindSubscriptOperator, rng: rng, operator: OpSubscript,
		children: []*Node{expr, index}, roles: map[role]int{roleLeft: 0, roleRight: 1},
	})
}

// NewSliceOperator constructs "expr[from..to]"; either bound may be nil.
func (a *Arena) NewSliceOperator(rng position.Range, expr, from, to *Node) (*Node, error) {
	if err := requireCategory(KindSliceOperator, "expression", expr, CategoryExpression); err != nil {
		return nil, err
	}
	children := []*Node{expr}
	roles := map[role]int{roleLeft: 0}
	if from != nil {
		roles[roleRangeMin] = len(children)
		children = append(children, from)
	}
	if to != nil {
		roles[roleRangeMax] = len(children)
		children = append(children, to)
	}
	return a.build(spec{kind: KindSliceOperator, rng: rng, children: children, roles: roles})
}

// From and To return a SliceOperator node's bounds, either of which may
// be nil for an open-ended slice.
func (n *Node) From() *Node { return n.roleChild(roleRangeMin) }
func (n *Node) To() *Node   { return n.roleChild(roleRangeMax) }

// NewLabelsOperator constructs "expr:Label1:Label2..." used as a
// predicate expression (distinct from a node pattern's label list).
func (a *Arena) NewLabelsOperator(rng position.Range, expr *Node, labels []*Node) (*Node, error) {
	if err := requireCategory(KindLabelsOperator, "expression", expr, CategoryExpression); err != nil {
		return nil, err
	}
	children := append([]*Node{expr}, labels...)
	return a.build(spec{kind: KindLabelsOperator, rng: rng, operator: OpLabel, children: children, roles: map[role]int{roleLeft: 0}})
}

// Labels returns the label leaves of a LabelsOperator or NodePattern node.
func (n *Node) Labels() []*Node {
	switch n.kind {
	case KindLabelsOperator:
		if len(n.children) <= 1 {
			return nil
		}
		return n.children[1:]
	default:
		return n.roleChildren(roleLabels)
	}
}

