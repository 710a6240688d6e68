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

// ParseStatement parses one full directive: leading CYPHER/EXPLAIN/PROFILE
// options followed by either a schema command or a query body.
func (p *Parser) ParseStatement() *ast.Node {
	start := p.cur().Range.Start
	var options []*ast.Node
	for {
		switch {
		case p.isKeyword(token.KwCypher):
			options = append(options, p.parseCypherOption())
			continue
		case p.isKeyword(token.KwExplain):
			t := p.advance()
			n, err := p.arena.NewExplainOption(t.Range)
			options = append(options, p.checkBuild(t.Range, n, err))
			continue
		case p.isKeyword(token.KwProfile):
			t := p.advance()
			n, err := p.arena.NewProfileOption(t.Range)
			options = append(options, p.checkBuild(t.Range, n, err))
			continue
		}
		break
	}

	body := p.parseStatementBody()
	rng := p.rangeSince(start)
	n, err := p.arena.NewStatement(rng, options, body)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseCypherOption() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // CYPHER
	var version *ast.Node
	if t, ok := p.matchKind(token.Float); ok {
		version, _ = p.arena.NewString(t.Range, t.Text)
	} else if t, ok := p.matchKind(token.Integer); ok {
		version, _ = p.arena.NewString(t.Range, t.Text)
	}
	var params []*ast.Node
	for p.is(token.Identifier) && p.peek(1).Kind == token.Eq {
		params = append(params, p.parseCypherOptionParam())
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewCypherOption(rng, version, params)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseCypherOptionParam() *ast.Node {
	start := p.cur().Range.Start
	nameTok := p.advance()
	name, _ := p.arena.NewIdentifier(nameTok.Range, nameTok.Text)
	p.expectKind(token.Eq)
	value := p.parseAtom()
	rng := p.rangeSince(start)
	n, err := p.arena.NewCypherOptionParam(rng, name, value)
	return p.checkBuild(rng, n, err)
}

// parseStatementBody dispatches between the top-level schema commands
// (CREATE/DROP INDEX or CONSTRAINT) and the ordinary query body, since
// both CREATE INDEX... and a CREATE clause share the CREATE keyword.
func (p *Parser) parseStatementBody() *ast.Node {
	if p.isKeyword(token.KwCreate) && (p.peek(1).IsKeyword(token.KwIndex) || p.peek(1).IsKeyword(token.KwConstraint)) {
		return p.parseSchemaCommand(true)
	}
	if p.isKeyword(token.KwDrop) {
		return p.parseSchemaCommand(false)
	}
	return p.parseQuery()
}

// parseQuery parses "USING PERIODIC COMMIT" options followed by one or
// more clauses, with UNION [ALL] markers interleaved between single-query
// runs.
func (p *Parser) parseQuery() *ast.Node {
	start := p.cur().Range.Start
	var options []*ast.Node
	if p.isKeyword(token.KwUsing) && p.peek(1).IsKeyword(token.KwPeriodic) {
		options = append(options, p.parseUsingPeriodicCommit())
	}
	clauses := p.parseClauseList()
	if len(clauses) == 0 {
		p.errExpected("a clause")
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewQuery(rng, options, clauses)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseUsingPeriodicCommit() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // USING
	p.expectKeyword(token.KwPeriodic, "PERIODIC")
	p.expectKeyword(token.KwCommit, "COMMIT")
	var limit *ast.Node
	if t, ok := p.matchKind(token.Integer); ok {
		limit, _ = p.arena.NewInteger(t.Range, t.Text)
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewUsingPeriodicCommit(rng, limit)
	return p.checkBuild(rng, n, err)
}

// parseStart parses the legacy START clause: one or more start points plus
// an optional WHERE predicate.
func (p *Parser) parseStart() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // START
	var points []*ast.Node
	points = append(points, p.parseStartPoint())
	for {
		if _, ok := p.matchKind(token.Comma); !ok {
			break
		}
		points = append(points, p.parseStartPoint())
	}
	predicate := p.parseWhere()
	rng := p.rangeSince(start)
	n, err := p.arena.NewStart(rng, points, predicate)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseStartPoint() *ast.Node {
	start := p.cur().Range.Start
	identTok, _ := p.expectKind(token.Identifier)
	ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
	p.expectKind(token.Eq)

	isRel := false
	switch {
	case p.isKeyword(token.KwNode):
		p.advance()
	case p.isKeyword(token.KwRelationship):
		p.advance()
		isRel = true
	default:
		p.errExpected("node or relationship")
		return p.recoverAtom()
	}

	if _, ok := p.matchKind(token.Colon); ok {
		return p.parseIndexStartPoint(ident, isRel)
	}

	p.expectKind(token.LParen)
	if _, ok := p.matchKind(token.Star); ok {
		p.expectKind(token.RParen)
		rng := p.rangeSince(start)
		if isRel {
			n, err := p.arena.NewAllRelsScan(rng, ident)
			return p.checkBuild(rng, n, err)
		}
		n, err := p.arena.NewAllNodesScan(rng, ident)
		return p.checkBuild(rng, n, err)
	}
	var ids []*ast.Node
	ids = append(ids, p.parseExpression())
	for {
		if _, ok := p.matchKind(token.Comma); !ok {
			break
		}
		ids = append(ids, p.parseExpression())
	}
	p.expectKind(token.RParen)
	rng := p.rangeSince(start)
	if isRel {
		n, err := p.arena.NewRelIDLookup(rng, ident, ids)
		return p.checkBuild(rng, n, err)
	}
	n, err := p.arena.NewNodeIDLookup(rng, ident, ids)
	return p.checkBuild(rng, n, err)
}

// parseIndexStartPoint parses the "node:index(...)" and
// "relationship:index(...)" forms, distinguishing a property lookup
// ("prop = value") from a bare Lucene-style query string by one token of
// lookahead.
func (p *Parser) parseIndexStartPoint(ident *ast.Node, isRel bool) *ast.Node {
	nameTok, _ := p.expectKind(token.Identifier)
	indexName, _ := p.arena.NewIndexName(nameTok.Range, nameTok.Text)
	p.expectKind(token.LParen)

	if p.is(token.Identifier) && p.peek(1).Kind == token.Eq {
		propTok := p.advance()
		propName, _ := p.arena.NewPropName(propTok.Range, propTok.Text)
		p.advance() // '='
		lookup := p.parseExpression()
		p.expectKind(token.RParen)
		rng := p.rangeSince(ident.Range().Start)
		if isRel {
			n, err := p.arena.NewRelIndexLookup(rng, ident, indexName, propName, lookup)
			return p.checkBuild(rng, n, err)
		}
		n, err := p.arena.NewNodeIndexLookup(rng, ident, indexName, propName, lookup)
		return p.checkBuild(rng, n, err)
	}

	query := p.parseExpression()
	p.expectKind(token.RParen)
	rng := p.rangeSince(ident.Range().Start)
	if isRel {
		n, err := p.arena.NewRelIndexQuery(rng, ident, indexName, query)
		return p.checkBuild(rng, n, err)
	}
	n, err := p.arena.NewNodeIndexQuery(rng, ident, indexName, query)
	return p.checkBuild(rng, n, err)
}

// parseSchemaCommand parses the CREATE/DROP INDEX and CONSTRAINT forms.
// create distinguishes CREATE from DROP; both share the same shapes.
func (p *Parser) parseSchemaCommand(create bool) *ast.Node {
	start := p.cur().Range.Start
	p.advance() // CREATE or DROP
	if _, ok := p.matchKeyword(token.KwIndex); ok {
		p.expectKeyword(token.KwOn, "ON")
		p.expectKind(token.Colon)
		labelTok, _ := p.expectKind(token.Identifier)
		label, _ := p.arena.NewLabel(labelTok.Range, labelTok.Text)
		p.expectKind(token.LParen)
		propTok, _ := p.expectKind(token.Identifier)
		propName, _ := p.arena.NewPropName(propTok.Range, propTok.Text)
		p.expectKind(token.RParen)
		rng := p.rangeSince(start)
		var n *ast.Node
		var err error
		if create {
			n, err = p.arena.NewCreateNodePropIndex(rng, label, propName)
		} else {
			n, err = p.arena.NewDropNodePropIndex(rng, label, propName)
		}
		return p.checkBuild(rng, n, err)
	}

	p.expectKeyword(token.KwConstraint, "CONSTRAINT")
	p.expectKeyword(token.KwOn, "ON")

	if _, ok := p.matchKind(token.LParen); ok {
		identTok, _ := p.expectKind(token.Identifier)
		ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
		p.expectKind(token.Colon)
		labelTok, _ := p.expectKind(token.Identifier)
		label, _ := p.arena.NewLabel(labelTok.Range, labelTok.Text)
		p.expectKind(token.RParen)
		p.expectKeyword(token.KwAssert, "ASSERT")
		expr := p.parseExpression()
		p.expectKeyword(token.KwIs, "IS")
		p.matchKeyword(token.KwNode)
		unique := false
		if _, ok := p.matchKeyword(token.KwUnique); ok {
			unique = true
		}
		rng := p.rangeSince(start)
		var n *ast.Node
		var err error
		if create {
			n, err = p.arena.NewCreateNodePropConstraint(rng, ident, label, expr, unique)
		} else {
			n, err = p.arena.NewDropNodePropConstraint(rng, ident, label, expr, unique)
		}
		return p.checkBuild(rng, n, err)
	}

	// relationship form: ON ()-[ident:RelType]-()
	p.expectKind(token.LParen)
	p.expectKind(token.RParen)
	p.expectKind(token.Minus)
	p.expectKind(token.LBracket)
	identTok, _ := p.expectKind(token.Identifier)
	ident, _ := p.arena.NewIdentifier(identTok.Range, identTok.Text)
	p.expectKind(token.Colon)
	reltype := p.parseRelType()
	p.expectKind(token.RBracket)
	p.expectKind(token.Minus)
	p.expectKind(token.LParen)
	p.expectKind(token.RParen)
	p.expectKeyword(token.KwAssert, "ASSERT")
	expr := p.parseExpression()
	p.expectKeyword(token.KwIs, "IS")
	unique := false
	if _, ok := p.matchKeyword(token.KwUnique); ok {
		unique = true
	}
	rng := p.rangeSince(start)
	var n *ast.Node
	var err error
	if create {
		n, err = p.arena.NewCreateRelPropConstraint(rng, ident, reltype, expr, unique)
	} else {
		n, err = p.arena.NewDropRelPropConstraint(rng, ident, reltype, expr, unique)
	}
	return p.checkBuild(rng, n, err)
}
