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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cypher-lang/cypherparser/ast"
	"github.com/cypher-lang/cypherparser/config"
)

// Render writes the node table spec §6.4 fixes the layout of: one row per
// node in preorder, columns for ordinal, range, type name and a short
// type-specific description. This is not a wire contract; it exists so a
// REPL or test harness can eyeball a tree the same way across
// implementations. The ANSI color palette §6.4 alludes to is not
// implemented here (out of scope, spec §1) — scheme may be nil, or a
// caller-supplied config.ColorScheme wrapping each column.
func Render(w io.Writer, root *ast.Node, scheme config.ColorScheme) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	var walk func(n *ast.Node, depth int)
	var walkErr error
	walk = func(n *ast.Node, depth int) {
		if n == nil || walkErr != nil {
			return
		}
		ordinal := colorize(scheme, "ordinal", fmt.Sprintf("%d", n.Ordinal()))
		rng := colorize(scheme, "range", fmt.Sprintf("@%d-%d", n.Range().Start.Offset, n.Range().End.Offset))
		kind := colorize(scheme, "type", fmt.Sprintf("%*s%s", depth*2, "", n.Kind().String()))
		desc := colorize(scheme, "desc", describe(n))
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ordinal, rng, kind, desc); err != nil {
			walkErr = err
			return
		}
		for i := 0; i < n.NumChildren(); i++ {
			walk(n.Child(i), depth+1)
		}
	}
	walk(root, 0)
	if walkErr != nil {
		return walkErr
	}
	return tw.Flush()
}

// RenderError appends one error's caret diagnostic below a node table,
// matching the three error classes §6.4 names: the offending token's
// position, its message, and an underlined excerpt of its context.
func RenderError(w io.Writer, pos string, message string, context string, contextOffset int, scheme config.ColorScheme) error {
	underline := make([]byte, len([]rune(context)))
	for i := range underline {
		underline[i] = ' '
	}
	if contextOffset >= 0 && contextOffset < len(underline) {
		underline[contextOffset] = '^'
	}
	_, err := fmt.Fprintf(w, "%s: %s\n%s\n%s\n",
		colorize(scheme, "error-token", pos),
		colorize(scheme, "error-message", message),
		colorize(scheme, "error-context", context),
		colorize(scheme, "error-underline", string(underline)))
	return err
}

func colorize(scheme config.ColorScheme, class, text string) string {
	if scheme == nil {
		return text
	}
	return scheme.Wrap(class, text)
}

// describe returns a short, kind-specific payload summary for Render's
// description column.
func describe(n *ast.Node) string {
	switch n.Kind() {
	case ast.KindIdentifier, ast.KindLabel, ast.KindRelType, ast.KindPropName,
		ast.KindFunctionName, ast.KindIndexName, ast.KindProcName,
		ast.KindString, ast.KindInteger, ast.KindFloat:
		return n.Text()
	case ast.KindCommand:
		return fmt.Sprintf("%s %v", n.CommandName(), n.Arguments())
	case ast.KindLineComment, ast.KindBlockComment:
		return n.CommentText()
	case ast.KindUnaryOperator, ast.KindBinaryOperator, ast.KindPropertyOperator,
		ast.KindSubscriptOperator, ast.KindSliceOperator, ast.KindLabelsOperator:
		return n.Operator().String()
	case ast.KindComparison:
		return fmt.Sprintf("%v", n.Operators())
	case ast.KindError:
		return n.ErrorValue()
	default:
		return ""
	}
}
