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

package parser

import (
	"strings"

	"github.com/cypher-lang/cypherparser/ast"
	"github.com/cypher-lang/cypherparser/token"
)

// parseAtom parses one primary expression: a literal, identifier,
// parenthesized expression, list/map literal, CASE, comprehension, or
// function-like form (all(), any(), filter(), extract(), reduce(), a
// plain function call, or shortestPath(...)/allShortestPaths(...)).
func (p *Parser) parseAtom() *ast.Node {
	t := p.cur()

	switch t.Kind {
	case token.Integer:
		p.advance()
		n, err := p.arena.NewInteger(t.Range, t.Text)
		return p.checkBuild(t.Range, n, err)
	case token.Float:
		p.advance()
		n, err := p.arena.NewFloat(t.Range, t.Text)
		return p.checkBuild(t.Range, n, err)
	case token.String:
		p.advance()
		n, err := p.arena.NewString(t.Range, t.Text)
		return p.checkBuild(t.Range, n, err)
	case token.Parameter:
		p.advance()
		n, err := p.arena.NewParameter(t.Range, t.Text)
		return p.checkBuild(t.Range, n, err)
	case token.LParen:
		return p.parseParenthesized()
	case token.LBracket:
		return p.parseListLiteralOrComprehension()
	case token.LBrace:
		return p.parseMapLiteral()
	}

	if t.Kind == token.Keyword {
		switch t.KeywordID {
		case token.KwTrue:
			p.advance()
			n, err := p.arena.NewTrue(t.Range)
			return p.checkBuild(t.Range, n, err)
		case token.KwFalse:
			p.advance()
			n, err := p.arena.NewFalse(t.Range)
			return p.checkBuild(t.Range, n, err)
		case token.KwNull:
			p.advance()
			n, err := p.arena.NewNull(t.Range)
			return p.checkBuild(t.Range, n, err)
		case token.KwCase:
			return p.parseCase()
		case token.KwFilter:
			return p.parseComprehensionForm(token.KwFilter)
		case token.KwExtract:
			return p.parseComprehensionForm(token.KwExtract)
		case token.KwAll:
			return p.parseComprehensionForm(token.KwAll)
		case token.KwAny:
			return p.parseComprehensionForm(token.KwAny)
		case token.KwSingle:
			return p.parseComprehensionForm(token.KwSingle)
		case token.KwNone:
			return p.parseComprehensionForm(token.KwNone)
		case token.KwReduce:
			return p.parseReduce()
		case token.KwShortestPath:
			return p.parseShortestPathFunction()
		}
	}

	if t.Kind == token.Identifier {
		if strings.EqualFold(t.Text, "allshortestpaths") {
			return p.parseAllShortestPathsFunction()
		}
		// identifier, optionally followed by '(' for a plain function call
		if p.peek(1).Kind == token.LParen {
			return p.parseFunctionCall()
		}
		p.advance()
		n, err := p.arena.NewIdentifier(t.Range, t.Text)
		return p.checkBuild(t.Range, n, err)
	}

	p.errUnexpected()
	return p.recoverAtom()
}

// recoverAtom builds an Error placeholder covering the single offending
// token and advances past it, so callers always get a non-nil node back.
func (p *Parser) recoverAtom() *ast.Node {
	t := p.advance()
	n, _ := p.arena.NewErrorNode(t.Range, t.Text)
	return n
}
