package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryHasIsSubsetTest(t *testing.T) {
	mask := CategoryQueryClause | CategoryExpression
	require.True(t, mask.Has(CategoryQueryClause))
	require.True(t, mask.Has(CategoryExpression))
	require.True(t, mask.Has(CategoryQueryClause|CategoryExpression))
	require.False(t, mask.Has(CategoryMergeAction))
}

func TestCategoryStringFallsBackForUnknownBits(t *testing.T) {
	require.Equal(t, "expression", CategoryExpression.String())
	require.Equal(t, "category", Category(0).String())
}

func TestCategoriesOfMatchNodeIs(t *testing.T) {
	a := NewArena(0, 0)
	ident, err := a.NewIdentifier(testRange(0, 1), "n")
	require.NoError(t, err)
	require.True(t, ident.Is(CategoryExpression))
	require.False(t, ident.Is(CategoryQueryClause))
	require.Equal(t, CategoriesOf(KindIdentifier), ident.Categories())
}

func TestCategoriesOfOutOfRangeKindIsZero(t *testing.T) {
	require.Equal(t, Category(0), CategoriesOf(Kind(-1)))
	require.Equal(t, Category(0), CategoriesOf(Kind(1<<20)))
}
