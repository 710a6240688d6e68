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

// Package ast is the typed, positionally annotated AST produced by the
// grammar engine. It follows design note §9: the source's multiple
// inheritance of node categories is re-expressed as a constant bitmask
// test (Node.Is) against a category set declared once per primary Kind,
// rather than a type hierarchy.
package ast

// Category is a bitmask of the abstract interfaces a node satisfies. A
// single node commonly belongs to several: a Filter node is both
// Expression and ListComprehension, a ShortestPath node is both
// PatternPath and Expression.
type Category uint32

const (
	CategoryStatementOption Category = 1 << iota
	CategorySchemaCommand
	CategoryQueryOption
	CategoryQueryClause
	CategoryStartPoint
	CategoryMatchHint
	CategoryMergeAction
	CategorySetItem
	CategoryRemoveItem
	CategoryExpression
	CategoryListComprehension
	CategoryPatternPath
	CategoryComment
	CategoryDirective
	CategoryBoolean
)

var categoryNames = map[Category]string{
	CategoryStatementOption:   "statement-option",
	CategorySchemaCommand:     "schema-command",
	CategoryQueryOption:       "query-option",
	CategoryQueryClause:       "query-clause",
	CategoryStartPoint:        "start-point",
	CategoryMatchHint:         "match-hint",
	CategoryMergeAction:       "merge-action",
	CategorySetItem:           "set-item",
	CategoryRemoveItem:        "remove-item",
	CategoryExpression:        "expression",
	CategoryListComprehension: "list-comprehension",
	CategoryPatternPath:       "pattern-path",
	CategoryComment:           "comment",
	CategoryDirective:         "directive",
	CategoryBoolean:           "boolean",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "category"
}

// Has reports whether mask includes every bit of c.
func (mask Category) Has(c Category) bool {
	return mask&c == c
}
