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
	"github.com/cypher-lang/cypherparser/ast"
	"github.com/cypher-lang/cypherparser/token"
)

// parseParenthesized parses "(" expr ")".
func (p *Parser) parseParenthesized() *ast.Node {
	p.advance() // '('
	inner := p.parseExpression()
	p.expectKind(token.RParen)
	return inner
}

// parseListLiteralOrComprehension parses "[" ... "]", disambiguating a
// plain list literal from "[var IN expr WHERE pred | eval]" by looking
// for the IN keyword after a leading identifier.
func (p *Parser) parseListLiteralOrComprehension() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // '['

	if p.is(token.Identifier) && p.peek(1).IsKeyword(token.KwIn) {
		identTok := p.advance()
		ident, err := p.arena.NewIdentifier(identTok.Range, identTok.Text)
		if err != nil {
			return p.recoverAtom()
		}
		p.advance() // IN
		inExpr := p.parseExpression()
		var predicate, eval *ast.Node
		if _, ok := p.matchKeyword(token.KwWhere); ok {
			predicate = p.parseExpression()
		}
		if _, ok := p.matchKind(token.Pipe); ok {
			eval = p.parseExpression()
		}
		p.expectKind(token.RBracket)
		rng := p.rangeSince(start)
		n, err := p.arena.NewListComprehension(rng, ident, inExpr, predicate, eval)
		return p.checkBuild(rng, n, err)
	}

	var elements []*ast.Node
	if !p.is(token.RBracket) {
		elements = append(elements, p.parseExpression())
		for {
			if _, ok := p.matchKind(token.Comma); !ok {
				break
			}
			elements = append(elements, p.parseExpression())
		}
	}
	p.expectKind(token.RBracket)
	rng := p.rangeSince(start)
	n, err := p.arena.NewCollection(rng, elements)
	return p.checkBuild(rng, n, err)
}

// parseMapLiteral parses "{" key ":" value ("," key ":" value)* "}", also
// used for node/relationship pattern property maps.
func (p *Parser) parseMapLiteral() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // '{'
	var keys []string
	var values []*ast.Node
	if !p.is(token.RBrace) {
		k, v := p.parseMapEntry()
		keys, values = append(keys, k), append(values, v)
		for {
			if _, ok := p.matchKind(token.Comma); !ok {
				break
			}
			k, v := p.parseMapEntry()
			keys, values = append(keys, k), append(values, v)
		}
	}
	p.expectKind(token.RBrace)
	rng := p.rangeSince(start)
	n, err := p.arena.NewMap(rng, keys, values)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseMapEntry() (string, *ast.Node) {
	var key string
	if t, ok := p.matchKind(token.Identifier); ok {
		key = t.Text
	} else if t, ok := p.matchKind(token.String); ok {
		key = t.Text
	} else {
		p.errExpected("map key")
	}
	p.expectKind(token.Colon)
	return key, p.parseExpression()
}

// parseCase parses CASE [expr] (WHEN pred THEN val)+ [ELSE val] END.
func (p *Parser) parseCase() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // CASE
	var caseExpr *ast.Node
	if !p.isKeyword(token.KwWhen) {
		caseExpr = p.parseExpression()
	}
	var alts []ast.CaseAlternative
	for {
		if _, ok := p.matchKeyword(token.KwWhen); !ok {
			break
		}
		pred := p.parseExpression()
		p.expectKeyword(token.KwThen, "THEN")
		val := p.parseExpression()
		alts = append(alts, ast.CaseAlternative{Predicate: pred, Value: val})
	}
	var elseVal *ast.Node
	if _, ok := p.matchKeyword(token.KwElse); ok {
		elseVal = p.parseExpression()
	}
	p.expectKeyword(token.KwEnd, "END")
	rng := p.rangeSince(start)
	n, err := p.arena.NewCase(rng, caseExpr, alts, elseVal)
	return p.checkBuild(rng, n, err)
}

// parseComprehensionForm parses all/any/single/none/filter/extract's
// shared shape: kw "(" var IN expr [WHERE pred] ["|" eval] ")".
func (p *Parser) parseComprehensionForm(id token.KeywordID) *ast.Node {
	start := p.cur().Range.Start
	p.advance() // keyword
	p.expectKind(token.LParen)
	identTok, _ := p.expectKind(token.Identifier)
	ident, err := p.arena.NewIdentifier(identTok.Range, identTok.Text)
	if err != nil {
		return p.recoverAtom()
	}
	p.expectKeyword(token.KwIn, "IN")
	inExpr := p.parseExpression()
	var predicate, eval *ast.Node
	if _, ok := p.matchKeyword(token.KwWhere); ok {
		predicate = p.parseExpression()
	}
	if _, ok := p.matchKind(token.Pipe); ok {
		eval = p.parseExpression()
	}
	p.expectKind(token.RParen)
	rng := p.rangeSince(start)

	var n *ast.Node
	switch id {
	case token.KwFilter:
		n, err = p.arena.NewFilter(rng, ident, inExpr, predicate)
	case token.KwExtract:
		n, err = p.arena.NewExtract(rng, ident, inExpr, eval)
	case token.KwAll:
		n, err = p.arena.NewAll(rng, ident, inExpr, predicate)
	case token.KwAny:
		n, err = p.arena.NewAny(rng, ident, inExpr, predicate)
	case token.KwSingle:
		n, err = p.arena.NewSingle(rng, ident, inExpr, predicate)
	case token.KwNone:
		n, err = p.arena.NewNone(rng, ident, inExpr, predicate)
	}
	return p.checkBuild(rng, n, err)
}

// parseReduce parses reduce(acc = init, var IN expr | eval).
func (p *Parser) parseReduce() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // REDUCE
	p.expectKind(token.LParen)
	accTok, _ := p.expectKind(token.Identifier)
	acc, err := p.arena.NewIdentifier(accTok.Range, accTok.Text)
	if err != nil {
		return p.recoverAtom()
	}
	p.expectKind(token.Eq)
	init := p.parseExpression()
	p.expectKind(token.Comma)
	identTok, _ := p.expectKind(token.Identifier)
	ident, err := p.arena.NewIdentifier(identTok.Range, identTok.Text)
	if err != nil {
		return p.recoverAtom()
	}
	p.expectKeyword(token.KwIn, "IN")
	inExpr := p.parseExpression()
	p.expectKind(token.Pipe)
	eval := p.parseExpression()
	p.expectKind(token.RParen)
	rng := p.rangeSince(start)
	n, err := p.arena.NewReduce(rng, acc, init, ident, inExpr, eval)
	return p.checkBuild(rng, n, err)
}

// parseFunctionCall parses name "(" [DISTINCT] [args|*] ")".
func (p *Parser) parseFunctionCall() *ast.Node {
	start := p.cur().Range.Start
	nameTok := p.advance()
	funcName, err := p.arena.NewFunctionName(nameTok.Range, nameTok.Text)
	if err != nil {
		return p.recoverAtom()
	}
	p.expectKind(token.LParen)
	distinct := false
	if _, ok := p.matchKeyword(token.KwDistinct); ok {
		distinct = true
	}
	if _, ok := p.matchKind(token.Star); ok {
		p.expectKind(token.RParen)
		rng := p.rangeSince(start)
		n, err := p.arena.NewApplyAllOperator(rng, funcName, distinct)
		return p.checkBuild(rng, n, err)
	}
	var args []*ast.Node
	if !p.is(token.RParen) {
		args = append(args, p.parseExpression())
		for {
			if _, ok := p.matchKind(token.Comma); !ok {
				break
			}
			args = append(args, p.parseExpression())
		}
	}
	p.expectKind(token.RParen)
	rng := p.rangeSince(start)
	n, err := p.arena.NewApplyOperator(rng, funcName, distinct, args)
	return p.checkBuild(rng, n, err)
}

// parseShortestPathFunction parses shortestPath(patternPath).
func (p *Parser) parseShortestPathFunction() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // shortestPath
	p.expectKind(token.LParen)
	path := p.parsePatternPath()
	p.expectKind(token.RParen)
	rng := p.rangeSince(start)
	n, err := p.arena.NewShortestPath(rng, path, true)
	return p.checkBuild(rng, n, err)
}

// parseAllShortestPathsFunction parses allShortestPaths(patternPath),
// recognized as a plain identifier by the lexer (no keyword table entry);
// the parser matches it case-insensitively here.
func (p *Parser) parseAllShortestPathsFunction() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // allShortestPaths
	p.expectKind(token.LParen)
	path := p.parsePatternPath()
	p.expectKind(token.RParen)
	rng := p.rangeSince(start)
	n, err := p.arena.NewShortestPath(rng, path, false)
	return p.checkBuild(rng, n, err)
}
