package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cypher-lang/cypherparser/ast"
	"github.com/cypher-lang/cypherparser/lexer"
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

// shape is a structural fingerprint of an AST subtree: its Kind and its
// children's shapes, recursively. Comparing two shapes with go-cmp gives a
// readable diff of an entire parsed tree, rather than a chain of one-field-
// at-a-time require.Equal calls that only pinpoint the first divergence.
type shape struct {
	Kind     string
	Children []shape
}

func shapeOf(n *ast.Node) shape {
	if n == nil {
		return shape{Kind: "<nil>"}
	}
	s := shape{Kind: n.Kind().String()}
	for i := 0; i < n.NumChildren(); i++ {
		s.Children = append(s.Children, shapeOf(n.Child(i)))
	}
	return s
}

func leaf(kind string) shape { return shape{Kind: kind} }

func node(kind string, children ...shape) shape {
	return shape{Kind: kind, Children: children}
}

// newTestParser builds a Parser over source with a fresh Arena and
// Collector, mirroring how the dispatcher wires one per directive.
func newTestParser(source string) (*Parser, *ast.Arena, *perr.Collector) {
	src := []byte(source)
	buf := position.NewBuffer(src, position.Default)
	errs := perr.NewCollector(nil)
	lex := lexer.New(buf, errs)
	arena := ast.NewArena(0, 0)
	return New(lex, arena, errs, src, false), arena, errs
}

func TestParseStatementReturnsStatementWrappingQuery(t *testing.T) {
	p, _, errs := newTestParser("RETURN 1")
	stmt := p.ParseStatement()
	require.Equal(t, 0, errs.Len())
	require.Equal(t, ast.KindStatement, stmt.Kind())
	require.Equal(t, ast.KindQuery, stmt.Body().Kind())
}

func TestParseStatementRecognizesExplainOption(t *testing.T) {
	p, _, errs := newTestParser("EXPLAIN RETURN 1")
	stmt := p.ParseStatement()
	require.Equal(t, 0, errs.Len())
	require.Len(t, stmt.Options(), 1)
	require.Equal(t, ast.KindExplainOption, stmt.Options()[0].Kind())
}

func TestParseClauseListDispatchesMatchAndReturn(t *testing.T) {
	p, _, errs := newTestParser("MATCH (n) RETURN n")
	stmt := p.ParseStatement()
	require.Equal(t, 0, errs.Len())
	clauses := stmt.Body().QueryClauses()
	require.Len(t, clauses, 2)
	require.Equal(t, ast.KindMatch, clauses[0].Kind())
	require.Equal(t, ast.KindReturn, clauses[1].Kind())
}

func TestComparisonChainPrecedenceBindsTighterThanAnd(t *testing.T) {
	p, _, errs := newTestParser("RETURN a < b AND c > d")
	stmt := p.ParseStatement()
	require.Equal(t, 0, errs.Len())

	ret := stmt.Body().QueryClauses()[0]
	expr := ret.Projections()[0].ProjectionExpression()
	require.Equal(t, ast.OpAnd, expr.Operator())

	want := node("binary-operator",
		node("comparison", leaf("identifier"), leaf("identifier")),
		node("comparison", leaf("identifier"), leaf("identifier")),
	)
	if diff := cmp.Diff(want, shapeOf(expr)); diff != "" {
		t.Fatalf("AND expression shape mismatch (-want +got):\n%s", diff)
	}
}

func TestAdditiveBindsTighterThanComparison(t *testing.T) {
	p, _, errs := newTestParser("RETURN 1 + 2 < 3 * 4")
	stmt := p.ParseStatement()
	require.Equal(t, 0, errs.Len())

	cmp := stmt.Body().QueryClauses()[0].Projections()[0].ProjectionExpression()
	require.Equal(t, ast.KindComparison, cmp.Kind())
	require.Equal(t, ast.KindBinaryOperator, cmp.Child(0).Kind())
	require.Equal(t, ast.OpPlus, cmp.Child(0).Operator())
	require.Equal(t, ast.KindBinaryOperator, cmp.Child(1).Kind())
	require.Equal(t, ast.OpMult, cmp.Child(1).Operator())
}

func TestUnaryMinusBindsTighterThanMultiplicative(t *testing.T) {
	p, _, errs := newTestParser("RETURN -1 * 2")
	stmt := p.ParseStatement()
	require.Equal(t, 0, errs.Len())

	mult := stmt.Body().QueryClauses()[0].Projections()[0].ProjectionExpression()
	require.Equal(t, ast.KindBinaryOperator, mult.Kind())
	require.Equal(t, ast.OpMult, mult.Operator())
	require.Equal(t, ast.KindUnaryOperator, mult.Child(0).Kind())
	require.Equal(t, ast.OpUnaryMinus, mult.Child(0).Operator())
}

func TestMatchPhraseConsumesStartsWithAsSingleOperator(t *testing.T) {
	p, _, errs := newTestParser("MATCH (n) WHERE n.name STARTS WITH 'A' RETURN n")
	stmt := p.ParseStatement()
	require.Equal(t, 0, errs.Len())

	match := stmt.Body().QueryClauses()[0]
	require.Equal(t, ast.KindMatch, match.Kind())
	pred := match.Predicate()
	require.NotNil(t, pred)
	require.Equal(t, ast.KindBinaryOperator, pred.Kind())
	require.Equal(t, ast.OpStartsWith, pred.Operator())
}

func TestPeekPhraseDoesNotConsumeOnPartialMatch(t *testing.T) {
	p, _, _ := newTestParser("STARTS RETURN")
	ok := p.peekPhrase(token.KwStartsWith, token.KwWith)
	require.False(t, ok)
	require.Equal(t, token.Keyword, p.cur().Kind)
}

func TestSynchronizeSkipsToNextClauseKeywordAndBuildsErrorNode(t *testing.T) {
	p, _, _ := newTestParser("@@@ RETURN n")
	rec := p.synchronize()
	require.NotNil(t, rec)
	require.Equal(t, ast.KindError, rec.Kind())
	require.True(t, p.isKeyword(token.KwReturn))
}

func TestSynchronizeReturnsNilWhenAlreadyAtClauseKeyword(t *testing.T) {
	p, _, _ := newTestParser("RETURN n")
	rec := p.synchronize()
	require.Nil(t, rec)
	require.True(t, p.isKeyword(token.KwReturn))
}

func TestUnrecognizedClauseTokenStopsClauseList(t *testing.T) {
	p, _, errs := newTestParser("MATCH (n) @@@ RETURN n")
	stmt := p.ParseStatement()
	// The lexer itself flags '@' as a stray character the moment the
	// clause loop peeks at it to decide whether it starts another clause.
	require.Equal(t, 1, errs.Len())
	clauses := stmt.Body().QueryClauses()
	require.Len(t, clauses, 1)
	require.Equal(t, ast.KindMatch, clauses[0].Kind())
	require.True(t, p.is(token.Illegal))
}

func TestExpectKindRecordsErrorButLeavesCursorInPlace(t *testing.T) {
	p, _, errs := newTestParser(")")
	_, ok := p.expectKind(token.LParen)
	require.False(t, ok)
	require.Equal(t, 1, errs.Len())
	require.Equal(t, token.RParen, p.cur().Kind)
}

func TestScanCommandReadsNameAndQuotedArguments(t *testing.T) {
	src := []byte(`help foo "bar baz"`)
	buf := position.NewBuffer(src, position.Default)
	arena := ast.NewArena(0, 0)
	n, err := ScanCommand(buf, arena)
	require.NoError(t, err)
	require.Equal(t, "help", n.CommandName())
	require.Equal(t, []string{"foo", "bar baz"}, n.Arguments())
}

func TestScanCommandStopsAtNewline(t *testing.T) {
	src := []byte("help foo\nRETURN 1")
	buf := position.NewBuffer(src, position.Default)
	arena := ast.NewArena(0, 0)
	n, err := ScanCommand(buf, arena)
	require.NoError(t, err)
	require.Equal(t, []string{"foo"}, n.Arguments())
	require.Equal(t, int('\n'), buf.Peek(0))
}

func TestSeedPreloadsFirstTokenWithoutRelexing(t *testing.T) {
	src := []byte("RETURN 1")
	buf := position.NewBuffer(src, position.Default)
	errs := perr.NewCollector(nil)
	lex := lexer.New(buf, errs)
	arena := ast.NewArena(0, 0)

	first := lex.Next()
	p := New(lex, arena, errs, src, false)
	p.Seed(first)

	stmt := p.ParseStatement()
	require.Equal(t, 0, errs.Len())
	require.Equal(t, ast.KindStatement, stmt.Kind())
}

func TestEndPosReflectsLastConsumedTokenNotLookahead(t *testing.T) {
	p, _, _ := newTestParser("MATCH (n) RETURN n")
	stmt := p.ParseStatement()
	end := p.EndPos()
	require.Equal(t, stmt.Range().End, end)
}
