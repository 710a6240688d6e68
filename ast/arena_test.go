package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
)

func testRange(start, end int) position.Range {
	return position.Range{
		Start: position.Input{Offset: start},
		End:   position.Input{Offset: end},
	}
}

func TestArenaAssignsStrictlyIncreasingOrdinalsFromInitialOrdinal(t *testing.T) {
	a := NewArena(5, 0)
	n1, err := a.NewIdentifier(testRange(0, 1), "a")
	require.NoError(t, err)
	n2, err := a.NewIdentifier(testRange(1, 2), "b")
	require.NoError(t, err)

	require.Equal(t, 5, n1.Ordinal())
	require.Equal(t, 6, n2.Ordinal())
	require.Equal(t, 2, a.NodeCount())
}

func TestArenaBuildRejectsChildRangeOutsideParent(t *testing.T) {
	a := NewArena(0, 0)
	child, err := a.NewIdentifier(testRange(10, 20), "n")
	require.NoError(t, err)

	_, err = a.NewUnaryOperator(testRange(0, 5), OpUnaryMinus, child)
	require.Error(t, err)
}

func TestArenaBuildAcceptsContainedChildRange(t *testing.T) {
	a := NewArena(0, 0)
	child, err := a.NewIdentifier(testRange(2, 4), "n")
	require.NoError(t, err)

	parent, err := a.NewUnaryOperator(testRange(0, 5), OpUnaryMinus, child)
	require.NoError(t, err)
	require.Equal(t, 1, parent.NumChildren())
}

func TestArenaMaxNodesExhaustionSurfacesResourceError(t *testing.T) {
	a := NewArena(0, 1)
	_, err := a.NewIdentifier(testRange(0, 1), "a")
	require.NoError(t, err)

	_, err = a.NewIdentifier(testRange(1, 2), "b")
	require.Error(t, err)
	require.True(t, perr.ErrArenaExhausted.Is(err))
}

func TestArenaUnboundedWhenMaxNodesZero(t *testing.T) {
	a := NewArena(0, 0)
	for i := 0; i < 100; i++ {
		_, err := a.NewIdentifier(testRange(i, i+1), "n")
		require.NoError(t, err)
	}
	require.Equal(t, 100, a.NodeCount())
}

func TestArenaRetainReleaseFreesNodesOnLastRelease(t *testing.T) {
	a := NewArena(0, 0)
	_, err := a.NewIdentifier(testRange(0, 1), "n")
	require.NoError(t, err)

	a.Retain()
	a.Release()
	require.Equal(t, 1, a.NodeCount())

	a.Release()
	require.Equal(t, 0, a.NodeCount())
}

func TestRequireCategoryRejectsWrongCategory(t *testing.T) {
	a := NewArena(0, 0)
	ident, err := a.NewIdentifier(testRange(0, 1), "n")
	require.NoError(t, err)

	err = requireCategory(KindProjection, "expression", ident, CategoryQueryClause)
	require.Error(t, err)
}

func TestRequireCategoryRejectsNilChild(t *testing.T) {
	err := requireCategory(KindProjection, "expression", nil, CategoryExpression)
	require.Error(t, err)
}
