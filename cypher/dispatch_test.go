// Copyright 2024 The cypherparser Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cypher

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cypher-lang/cypherparser/ast"
	"github.com/cypher-lang/cypherparser/config"
)

// shape is a structural fingerprint of an AST subtree, compared with
// go-cmp for a readable diff of an entire parsed tree rather than a chain
// of one-field-at-a-time assertions.
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

func TestParseReturnLiteral(t *testing.T) {
	result, err := Parse([]byte("RETURN 1;"), config.Defaults())
	require.NoError(t, err)
	defer result.Release()

	require.Len(t, result.Segments, 1)
	require.False(t, result.EOF)
	seg := result.Segments[0]
	require.Empty(t, seg.Errors)

	stmt := seg.Directive
	require.Equal(t, ast.KindStatement, stmt.Kind())
	query := stmt.Body()
	require.Equal(t, ast.KindQuery, query.Kind())
	require.Len(t, query.QueryClauses(), 1)

	ret := query.QueryClauses()[0]
	require.Equal(t, ast.KindReturn, ret.Kind())
	projections := ret.Projections()
	require.Len(t, projections, 1)

	lit := projections[0].ProjectionExpression()
	require.Equal(t, ast.KindInteger, lit.Kind())
	require.Equal(t, "1", lit.Text())
}

func TestParseMatchWithPropertyAccess(t *testing.T) {
	result, err := Parse([]byte("MATCH (n:Person {name:'Alice'}) RETURN n.age"), config.Defaults())
	require.NoError(t, err)
	defer result.Release()

	require.Len(t, result.Segments, 1)
	require.True(t, result.EOF)

	query := result.Segments[0].Directive.Body()
	clauses := query.QueryClauses()
	require.Len(t, clauses, 2)

	wantMatch := node("match",
		node("pattern",
			node("pattern-path",
				node("node-pattern",
					leaf("identifier"),
					leaf("label"),
					node("map", leaf("string")),
				),
			),
		),
	)
	if diff := cmp.Diff(wantMatch, shapeOf(clauses[0])); diff != "" {
		t.Fatalf("match clause shape mismatch (-want +got):\n%s", diff)
	}

	wantReturn := node("return",
		node("projection",
			node("property-operator", leaf("identifier"), leaf("prop-name")),
		),
	)
	if diff := cmp.Diff(wantReturn, shapeOf(clauses[1])); diff != "" {
		t.Fatalf("return clause shape mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEachStreamsOneSegmentPerDirective(t *testing.T) {
	var ranges []string
	err := ParseEach([]byte("RETURN 1; RETURN 2;"), config.Defaults(), func(seg *Segment) Signal {
		ranges = append(ranges, seg.Range.String())
		return Continue
	})
	require.NoError(t, err)
	require.Len(t, ranges, 2)
}

func TestParseEachAbortStopsEarly(t *testing.T) {
	count := 0
	err := ParseEach([]byte("RETURN 1; RETURN 2; RETURN 3;"), config.Defaults(), func(seg *Segment) Signal {
		count++
		return Abort
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestComparisonChainFoldsIntoSingleNode(t *testing.T) {
	result, err := Parse([]byte("MATCH () WHERE a < b <= c RETURN 1;"), config.Defaults())
	require.NoError(t, err)
	defer result.Release()

	query := result.Segments[0].Directive.Body()
	match := query.QueryClauses()[0]
	require.Equal(t, ast.KindMatch, match.Kind())

	// Walk down to the Comparison node under the WHERE predicate.
	var find func(n *ast.Node) *ast.Node
	find = func(n *ast.Node) *ast.Node {
		if n == nil {
			return nil
		}
		if n.Kind() == ast.KindComparison {
			return n
		}
		for i := 0; i < n.NumChildren(); i++ {
			if found := find(n.Child(i)); found != nil {
				return found
			}
		}
		return nil
	}
	cmp := find(match)
	require.NotNil(t, cmp)
	require.Equal(t, 3, cmp.NumChildren())
	require.Equal(t, []ast.OperatorTag{ast.OpLt, ast.OpLte}, cmp.Operators())
}

func TestClientCommand(t *testing.T) {
	result, err := Parse([]byte(`:help foo "bar baz"`), config.Defaults())
	require.NoError(t, err)
	defer result.Release()

	require.Len(t, result.Segments, 1)
	seg := result.Segments[0]
	require.True(t, seg.EOF)
	require.Equal(t, ast.KindCommand, seg.Directive.Kind())
	require.Equal(t, "help", seg.Directive.CommandName())
	require.Equal(t, []string{"foo", "bar baz"}, seg.Directive.Arguments())
}

func TestParseOnlyStatementsDisablesCommands(t *testing.T) {
	opts := config.Defaults()
	opts.ParseOnlyStatements = true
	result, err := Parse([]byte(`:help`), opts)
	require.NoError(t, err)
	defer result.Release()

	require.Len(t, result.Segments, 1)
	require.NotEqual(t, ast.KindCommand, result.Segments[0].Directive.Kind())
	require.NotEmpty(t, result.Segments[0].Errors)
}

func TestTruncatedMatchProducesErrorNode(t *testing.T) {
	result, err := Parse([]byte("MATCH (n"), config.Defaults())
	require.NoError(t, err)
	defer result.Release()

	require.Len(t, result.Segments, 1)
	seg := result.Segments[0]
	require.True(t, seg.EOF)
	require.NotEmpty(t, seg.Errors)
	last := seg.Errors[len(seg.Errors)-1]
	require.Contains(t, last.Message, ")")
}

func TestSegmentRangesTileWithoutGaps(t *testing.T) {
	source := "RETURN 1; // trailing comment\nRETURN 2;\n"
	result, err := Parse([]byte(source), config.Defaults())
	require.NoError(t, err)
	defer result.Release()

	require.Len(t, result.Segments, 2)
	require.Equal(t, 0, result.Segments[0].Range.Start.Offset)
	require.Equal(t, result.Segments[0].Range.End.Offset, result.Segments[1].Range.Start.Offset)
	require.Equal(t, len(source), result.Segments[1].Range.End.Offset)
}

func TestQuickParseMatchesFullParseBoundaries(t *testing.T) {
	source := []byte("RETURN 1; MATCH (n) RETURN n; :help\n")
	opts := config.Defaults()

	full, err := Parse(source, opts)
	require.NoError(t, err)
	defer full.Release()

	var quickRanges []string
	err = QuickParse(source, opts, func(seg QuickSegment) Signal {
		quickRanges = append(quickRanges, seg.Range.String())
		return Continue
	})
	require.NoError(t, err)

	require.Len(t, quickRanges, len(full.Segments))
	for i, seg := range full.Segments {
		require.Equal(t, seg.Range.String(), quickRanges[i])
	}
}

func TestOrdinalsStrictlyIncreasingInPreorder(t *testing.T) {
	result, err := Parse([]byte("MATCH (n:Person) RETURN n.age, n.name;"), config.Defaults())
	require.NoError(t, err)
	defer result.Release()

	var last = -1
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		require.Greater(t, n.Ordinal(), last)
		last = n.Ordinal()
		for i := 0; i < n.NumChildren(); i++ {
			walk(n.Child(i))
		}
	}
	for _, root := range result.Roots() {
		walk(root)
	}
}

func TestSingleDirectiveStopsAfterFirst(t *testing.T) {
	opts := config.Defaults()
	opts.SingleDirective = true
	result, err := Parse([]byte("RETURN 1; RETURN 2; RETURN 3;"), opts)
	require.NoError(t, err)
	defer result.Release()

	require.Len(t, result.Segments, 1)
}

type recordingAuditor struct {
	started  int
	segments int
	finished int
}

func (a *recordingAuditor) Started(string, int)                { a.started++ }
func (a *recordingAuditor) Segment(string, string, string, int) { a.segments++ }
func (a *recordingAuditor) Finished(string, int, error)         { a.finished++ }

func TestAuditorReceivesOneSegmentNotificationPerDirective(t *testing.T) {
	opts := config.Defaults()
	rec := &recordingAuditor{}
	opts.Auditor = rec

	result, err := Parse([]byte("RETURN 1; RETURN 2;"), opts)
	require.NoError(t, err)
	defer result.Release()

	require.Equal(t, 1, rec.started)
	require.Equal(t, 2, rec.segments)
	require.Equal(t, 1, rec.finished)
}

func TestMaxNodesExhaustionSurfacesResourceError(t *testing.T) {
	opts := config.Defaults()
	opts.MaxNodes = 1
	result, err := Parse([]byte("RETURN 1;"), opts)
	require.NoError(t, err)
	defer result.Release()

	require.NotEmpty(t, result.Errors())
}
