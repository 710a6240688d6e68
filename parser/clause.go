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

// parseClause dispatches to one query-clause production based on the
// current keyword, per spec §4.3's clause table. It returns nil when the
// current token starts no known clause, leaving the cursor untouched so
// the caller (parseClauseList) can stop the clause loop.
func (p *Parser) parseClause() *ast.Node {
	switch {
	case p.isKeyword(token.KwOptional), p.isKeyword(token.KwMatch):
		return p.parseMatch()
	case p.isKeyword(token.KwCreate):
		return p.parseCreate()
	case p.isKeyword(token.KwMerge):
		return p.parseMerge()
	case p.isKeyword(token.KwSet):
		return p.parseSet()
	case p.isKeyword(token.KwDelete), p.isKeyword(token.KwDetach):
		return p.parseDelete()
	case p.isKeyword(token.KwRemove):
		return p.parseRemove()
	case p.isKeyword(token.KwForeach):
		return p.parseForeach()
	case p.isKeyword(token.KwUnwind):
		return p.parseUnwind()
	case p.isKeyword(token.KwCall):
		return p.parseCall()
	case p.isKeyword(token.KwWith):
		return p.parseWith()
	case p.isKeyword(token.KwReturn):
		return p.parseReturn()
	case p.isKeyword(token.KwUnion):
		return p.parseUnion()
	case p.isKeyword(token.KwLoadCsv):
		return p.parseLoadCSV()
	case p.isKeyword(token.KwStart):
		return p.parseStart()
	}
	return nil
}

// parseWhere parses the optional "WHERE predicate" suffix many clauses
// share, returning nil when absent.
func (p *Parser) parseWhere() *ast.Node {
	if _, ok := p.matchKeyword(token.KwWhere); !ok {
		return nil
	}
	return p.parseExpression()
}

func (p *Parser) parseMatch() *ast.Node {
	start := p.cur().Range.Start
	optional := false
	if _, ok := p.matchKeyword(token.KwOptional); ok {
		optional = true
	}
	p.expectKeyword(token.KwMatch, "MATCH")

	var hints []*ast.Node
	for p.isKeyword(token.KwUsing) {
		hints = append(hints, p.parseHint())
	}
	pattern := p.parsePattern()
	predicate := p.parseWhere()
	rng := p.rangeSince(start)
	n, err := p.arena.NewMatch(rng, optional, pattern, hints, predicate)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseHint() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // USING
	switch {
	case p.isKeyword(token.KwIndex):
		p.advance()
		identTok, _ := p.expectKind(token.Identifier)
		ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
		p.expectKind(token.Colon)
		labelTok, _ := p.expectKind(token.Identifier)
		label, _ := p.arena.NewLabel(labelTok.Range, labelTok.Text)
		p.expectKind(token.LParen)
		propTok, _ := p.expectKind(token.Identifier)
		propName, _ := p.arena.NewPropName(propTok.Range, propTok.Text)
		p.expectKind(token.RParen)
		rng := p.rangeSince(start)
		n, err := p.arena.NewUsingIndex(rng, ident, label, propName)
		return p.checkBuild(rng, n, err)
	case p.isKeyword(token.KwJoin):
		p.advance()
		p.expectKeyword(token.KwOn, "ON")
		var idents []*ast.Node
		t, _ := p.expectKind(token.Identifier)
		ident, _ := p.arena.NewIdentifier(t.Range, t.Text)
		idents = append(idents, ident)
		for {
			if _, ok := p.matchKind(token.Comma); !ok {
				break
			}
			t, _ := p.expectKind(token.Identifier)
			ident, _ := p.arena.NewIdentifier(t.Range, t.Text)
			idents = append(idents, ident)
		}
		rng := p.rangeSince(start)
		n, err := p.arena.NewUsingJoin(rng, idents)
		return p.checkBuild(rng, n, err)
	case p.isKeyword(token.KwScan):
		p.advance()
		identTok, _ := p.expectKind(token.Identifier)
		ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
		p.expectKind(token.Colon)
		labelTok, _ := p.expectKind(token.Identifier)
		label, _ := p.arena.NewLabel(labelTok.Range, labelTok.Text)
		rng := p.rangeSince(start)
		n, err := p.arena.NewUsingScan(rng, ident, label)
		return p.checkBuild(rng, n, err)
	}
	p.errExpected("INDEX, JOIN, or SCAN")
	return p.recoverAtom()
}

func (p *Parser) parseCreate() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // CREATE
	pattern := p.parsePattern()
	rng := p.rangeSince(start)
	n, err := p.arena.NewCreate(rng, pattern)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseMerge() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // MERGE
	path := p.parsePatternPathOrVariant()
	var actions []*ast.Node
	for p.isKeyword(token.KwOn) {
		actions = append(actions, p.parseMergeAction())
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewMerge(rng, path, actions)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseMergeAction() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // ON
	onCreate := false
	if _, ok := p.matchKeyword(token.KwCreate); ok {
		onCreate = true
	} else {
		p.expectKeyword(token.KwMatch, "MATCH")
	}
	p.expectKeyword(token.KwSet, "SET")
	items := p.parseSetItems()
	rng := p.rangeSince(start)
	var n *ast.Node
	var err error
	if onCreate {
		n, err = p.arena.NewOnCreate(rng, items)
	} else {
		n, err = p.arena.NewOnMatch(rng, items)
	}
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseSet() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // SET
	items := p.parseSetItems()
	rng := p.rangeSince(start)
	n, err := p.arena.NewSet(rng, items)
	return p.checkBuild(rng, n, err)
}

// parseSetItems parses a comma-separated list of SET items, disambiguating
// "ident = {...}" (SetAllProperties), "ident += {...}" (MergeProperties),
// "ident:Label..." (SetLabels), and "expr.prop = value" (SetProperty) on
// one token of lookahead after the leading identifier (spec §4.3).
func (p *Parser) parseSetItems() []*ast.Node {
	var items []*ast.Node
	items = append(items, p.parseSetItem())
	for {
		if _, ok := p.matchKind(token.Comma); !ok {
			break
		}
		items = append(items, p.parseSetItem())
	}
	return items
}

func (p *Parser) parseSetItem() *ast.Node {
	start := p.cur().Range.Start
	if p.is(token.Identifier) && p.peek(1).Kind == token.Colon {
		identTok := p.advance()
		ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
		labels := p.parseLabelSuffix()
		rng := p.rangeSince(start)
		n, err := p.arena.NewSetLabels(rng, ident, labels)
		return p.checkBuild(rng, n, err)
	}
	if p.is(token.Identifier) && p.peek(1).Kind == token.Eq {
		identTok := p.advance()
		ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
		p.advance() // '='
		value := p.parseExpression()
		rng := p.rangeSince(start)
		n, err := p.arena.NewSetAllProperties(rng, ident, value)
		return p.checkBuild(rng, n, err)
	}
	if p.is(token.Identifier) && p.peek(1).Kind == token.PlusEq {
		identTok := p.advance()
		ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
		p.advance() // '+='
		value := p.parseExpression()
		rng := p.rangeSince(start)
		n, err := p.arena.NewMergeProperties(rng, ident, value)
		return p.checkBuild(rng, n, err)
	}
	target := p.parseExpression()
	p.expectKind(token.Eq)
	value := p.parseExpression()
	rng := p.rangeSince(start)
	n, err := p.arena.NewSetProperty(rng, target, value)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseDelete() *ast.Node {
	start := p.cur().Range.Start
	detach := false
	if _, ok := p.matchKeyword(token.KwDetach); ok {
		detach = true
	}
	p.expectKeyword(token.KwDelete, "DELETE")
	var exprs []*ast.Node
	exprs = append(exprs, p.parseExpression())
	for {
		if _, ok := p.matchKind(token.Comma); !ok {
			break
		}
		exprs = append(exprs, p.parseExpression())
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewDelete(rng, detach, exprs)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseRemove() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // REMOVE
	var items []*ast.Node
	items = append(items, p.parseRemoveItem())
	for {
		if _, ok := p.matchKind(token.Comma); !ok {
			break
		}
		items = append(items, p.parseRemoveItem())
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewRemove(rng, items)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseRemoveItem() *ast.Node {
	start := p.cur().Range.Start
	identTok, _ := p.expectKind(token.Identifier)
	ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
	if p.is(token.Colon) {
		labels := p.parseLabelSuffix()
		rng := p.rangeSince(start)
		n, err := p.arena.NewRemoveLabels(rng, ident, labels)
		return p.checkBuild(rng, n, err)
	}
	if p.is(token.Dot) {
		p.advance()
		nameTok, _ := p.expectKind(token.Identifier)
		propName, _ := p.arena.NewPropName(nameTok.Range, nameTok.Text)
		rng := p.rangeSince(start)
		target, err := p.arena.NewPropertyOperator(rng, ident, propName)
		target = p.checkBuild(rng, target, err)
		n, err := p.arena.NewRemoveProperty(rng, target)
		return p.checkBuild(rng, n, err)
	}
	p.errExpected("':' or '.'")
	return p.recoverAtom()
}

func (p *Parser) parseForeach() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // FOREACH
	p.expectKind(token.LParen)
	identTok, _ := p.expectKind(token.Identifier)
	ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
	p.expectKeyword(token.KwIn, "IN")
	inExpr := p.parseExpression()
	p.expectKind(token.Pipe)
	clauses := p.parseClauseList()
	p.expectKind(token.RParen)
	rng := p.rangeSince(start)
	n, err := p.arena.NewForeach(rng, ident, inExpr, clauses)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseUnwind() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // UNWIND
	expr := p.parseExpression()
	p.expectKeyword(token.KwAs, "AS")
	identTok, _ := p.expectKind(token.Identifier)
	ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
	rng := p.rangeSince(start)
	n, err := p.arena.NewUnwind(rng, expr, ident)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseCall() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // CALL
	nameTok, _ := p.expectKind(token.Identifier)
	nameText := nameTok.Text
	for p.is(token.Dot) {
		p.advance()
		part, _ := p.expectKind(token.Identifier)
		nameText += "." + part.Text
	}
	procName, _ := p.arena.NewProcName(nameTok.Range, nameText)
	var args []*ast.Node
	p.expectKind(token.LParen)
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
	var yields []*ast.Node
	if _, ok := p.matchKeyword(token.KwYield); ok {
		t, _ := p.expectKind(token.Identifier)
		ident, _ := p.arena.NewIdentifier(t.Range, t.Text)
		yields = append(yields, ident)
		for {
			if _, ok := p.matchKind(token.Comma); !ok {
				break
			}
			t, _ := p.expectKind(token.Identifier)
			ident, _ := p.arena.NewIdentifier(t.Range, t.Text)
			yields = append(yields, ident)
		}
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewCall(rng, procName, args, yields)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseProjections() (bool, []*ast.Node) {
	distinct := false
	if _, ok := p.matchKeyword(token.KwDistinct); ok {
		distinct = true
	}
	var projections []*ast.Node
	if _, ok := p.matchKind(token.Star); ok {
		// bare "*" projects all bound identifiers; the taxonomy has no node
		// or flag for it, so it yields an empty projection list.
		return distinct, projections
	}
	projections = append(projections, p.parseProjection())
	for {
		if _, ok := p.matchKind(token.Comma); !ok {
			break
		}
		projections = append(projections, p.parseProjection())
	}
	return distinct, projections
}

func (p *Parser) parseProjection() *ast.Node {
	start := p.cur().Range.Start
	expr := p.parseExpression()
	var alias *ast.Node
	if _, ok := p.matchKeyword(token.KwAs); ok {
		t, _ := p.expectKind(token.Identifier)
		alias, _ = p.arena.NewIdentifier(t.Range, t.Text)
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewProjection(rng, expr, alias)
	return p.checkBuild(rng, n, err)
}

// parseOrderSkipLimit parses the optional ORDER BY/SKIP/LIMIT tail shared
// by RETURN and WITH.
func (p *Parser) parseOrderSkipLimit() (orderBy, skip, limit *ast.Node) {
	if p.isKeyword(token.KwOrder) {
		orderBy = p.parseOrderBy()
	}
	if _, ok := p.matchKeyword(token.KwSkip); ok {
		skip = p.parseExpression()
	}
	if _, ok := p.matchKeyword(token.KwLimit); ok {
		limit = p.parseExpression()
	}
	return
}

func (p *Parser) parseOrderBy() *ast.Node {
	start := p.cur().Range.Start
	p.expectKeyword(token.KwOrder, "ORDER")
	p.expectKeyword(token.KwBy, "BY")
	var items []*ast.Node
	items = append(items, p.parseSortItem())
	for {
		if _, ok := p.matchKind(token.Comma); !ok {
			break
		}
		items = append(items, p.parseSortItem())
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewOrderBy(rng, items)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseSortItem() *ast.Node {
	start := p.cur().Range.Start
	expr := p.parseExpression()
	ascending := true
	switch {
	case p.isKeyword(token.KwAsc), p.isKeyword(token.KwAscending):
		p.advance()
	case p.isKeyword(token.KwDesc), p.isKeyword(token.KwDescending):
		p.advance()
		ascending = false
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewSortItem(rng, expr, ascending)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseReturn() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // RETURN
	distinct, projections := p.parseProjections()
	orderBy, skip, limit := p.parseOrderSkipLimit()
	rng := p.rangeSince(start)
	n, err := p.arena.NewReturn(rng, distinct, projections, orderBy, skip, limit)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseWith() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // WITH
	distinct, projections := p.parseProjections()
	predicate := p.parseWhere()
	orderBy, skip, limit := p.parseOrderSkipLimit()
	rng := p.rangeSince(start)
	n, err := p.arena.NewWith(rng, distinct, projections, predicate, orderBy, skip, limit)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseUnion() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // UNION
	all := false
	if _, ok := p.matchKeyword(token.KwAll); ok {
		all = true
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewUnion(rng, all)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseLoadCSV() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // LOAD
	p.expectKeyword(token.KwCsv, "CSV")
	withHeaders := false
	if p.isKeyword(token.KwWith) {
		if _, ok := p.matchPhrase(token.KwWith, token.KwHeaders); ok {
			withHeaders = true
		}
	}
	p.expectKeyword(token.KwFrom, "FROM")
	url := p.parseExpression()
	p.expectKeyword(token.KwAs, "AS")
	identTok, _ := p.expectKind(token.Identifier)
	ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
	var fieldTerm *ast.Node
	if _, ok := p.matchKeyword(token.KwFieldTerminator); ok {
		fieldTerm = p.parseExpression()
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewLoadCSV(rng, withHeaders, url, ident, fieldTerm)
	return p.checkBuild(rng, n, err)
}
