package ast

import (
	"fmt"
	"sync/atomic"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
)

// Arena is the single bump-allocated allocation area owning every Node
// (and its string payloads) produced by one parse. Nodes are immutable
// once constructed; the Arena is their only producer, which is what
// lets it centrally enforce spec §3.2's invariants (source-order
// children, role slots as indices, preorder ordinals, range containment).
//
// Segments retain the Arena by bumping refs; it is released, and every
// Node handle it owns invalidated, only once the last reference drops
// (spec §3.4, §5).
type Arena struct {
	nodes         []*Node
	nextOrdinal   int
	refs          int32
	maxNodes      int
}

// NewArena creates an Arena whose first node receives ordinal
// initialOrdinal (config option "initial ordinal", default 0). maxNodes
// of 0 means unbounded; a positive value simulates the allocator running
// out of memory, surfacing perr.ErrArenaExhausted as a resource error.
func NewArena(initialOrdinal, maxNodes int) *Arena {
	return &Arena{nextOrdinal: initialOrdinal, refs: 1, maxNodes: maxNodes}
}

// Retain increments the Arena's reference count. Call it when a caller
// wants a Segment's AST to outlive the callback that produced it.
func (a *Arena) Retain() {
	atomic.AddInt32(&a.refs, 1)
}

// Release decrements the Arena's reference count and frees its nodes once
// it reaches zero.
func (a *Arena) Release() {
	if atomic.AddInt32(&a.refs, -1) == 0 {
		a.nodes = nil
	}
}

// NodeCount returns how many nodes the Arena has allocated so far.
func (a *Arena) NodeCount() int {
	return len(a.nodes)
}

// spec struct gathers the arguments common to every node construction:
// the primary kind, its range, its ordered children, and which child
// index fills which role.
type spec struct {
	kind     Kind
	rng      position.Range
	children []*Node
	roles    map[role]int
	ranges   map[role][2]int

	text      string
	strList   []string
	operator  OperatorTag
	operators []OperatorTag
	direction Direction
	flagA     bool
	flagB     bool
	numA      int
	numB      int
	hasNumA   bool
	hasNumB   bool
}

// build validates role arguments, copies string payloads into arena-owned
// memory, allocates the node, assigns its ordinal, and gives it the
// category mask declared for its Kind (CategoriesOf). It is the only path
// by which a Node is ever created (spec §4.4).
func (a *Arena) build(s spec) (*Node, error) {
	if a.maxNodes > 0 && len(a.nodes) >= a.maxNodes {
		return nil, perr.ErrArenaExhausted.New(len(a.nodes))
	}

	for _, c := range s.children {
		if c == nil {
			continue
		}
		if !s.rng.Contains(c.rng) {
			return nil, argErr(s.kind, "child range %s is not contained in parent range %s", c.rng, s.rng)
		}
	}

	n := &Node{
		kind:       s.kind,
		rng:        s.rng,
		categories: CategoriesOf(s.kind),
		children:   s.children,
		roles:      s.roles,
		ranges:     s.ranges,
		text:       copyString(s.text),
		strList:    copyStrings(s.strList),
		operator:   s.operator,
		operators:  s.operators,
		direction:  s.direction,
		flagA:      s.flagA,
		flagB:      s.flagB,
		numA:       s.numA,
		numB:       s.numB,
		hasNumA:    s.hasNumA,
		hasNumB:    s.hasNumB,
	}
	n.ordinal = a.nextOrdinal
	a.nextOrdinal++
	a.nodes = append(a.nodes, n)
	return n, nil
}

// AssignOrdinals renumbers the subtree rooted at root into preorder, so
// that every parent's ordinal is smaller than each of its children's
// (spec §3.2's `ordinal(c) > ordinal(p)`, §8's "strictly increasing in
// preorder"). build above assigns ordinals in construction order, which
// for a recursive-descent parser is post-order: every child is built (and
// numbered) before the parent node that wraps it, leaving the root with
// the largest ordinal in its own subtree rather than the smallest.
//
// Because one root's subtree is always built to completion, depth-first,
// before the next root starts, root.ordinal is exactly the top of the
// contiguous ordinal range its subtree occupies; this walks that same
// range and redistributes it across the subtree in preorder, without
// disturbing any other root's ordinals or the arena's running counter.
//
// Call once per top-level root (a Statement or Command) after its whole
// subtree has finished construction.
func (a *Arena) AssignOrdinals(root *Node) {
	if root == nil {
		return
	}
	base := root.ordinal - subtreeSize(root) + 1
	next := base
	var walk func(*Node)
	walk = func(n *Node) {
		n.ordinal = next
		next++
		for _, c := range n.children {
			if c != nil {
				walk(c)
			}
		}
	}
	walk(root)
}

func subtreeSize(n *Node) int {
	count := 1
	for _, c := range n.children {
		if c != nil {
			count += subtreeSize(c)
		}
	}
	return count
}

func copyString(s string) string {
	if s == "" {
		return ""
	}
	b := make([]byte, len(s))
	copy(b, s)
	return string(b)
}

func copyStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = copyString(s)
	}
	return out
}

// requireCategory returns an argument error when child does not satisfy
// category want, implementing spec §4.4's role-argument validation.
func requireCategory(kind Kind, roleName string, child *Node, want Category) error {
	if child == nil {
		return argErr(kind, "missing required %s argument", roleName)
	}
	if !child.Is(want) {
		return perr.ErrInvalidArgument.New(roleName, want)
	}
	return nil
}

func argErr(kind Kind, format string, args ...interface{}) error {
	msg := kind.String() + ": " + fmt.Sprintf(format, args...)
	return errors.NewKind(msg).New()
}
