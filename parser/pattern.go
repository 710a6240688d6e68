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
	"strconv"
	"strings"

	"github.com/cypher-lang/cypherparser/ast"
	"github.com/cypher-lang/cypherparser/token"
)

// parsePattern parses one or more comma-separated pattern paths, each of
// which may be a plain path, a named path ("p = (a)-->(b)"), or a
// shortestPath/allShortestPaths wrapper.
func (p *Parser) parsePattern() *ast.Node {
	start := p.cur().Range.Start
	var paths []*ast.Node
	paths = append(paths, p.parsePatternPathOrVariant())
	for {
		if _, ok := p.matchKind(token.Comma); !ok {
			break
		}
		paths = append(paths, p.parsePatternPathOrVariant())
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewPattern(rng, paths)
	return p.checkBuild(rng, n, err)
}

// parsePatternPathOrVariant dispatches between a plain pattern path, a
// named path, and shortestPath/allShortestPaths forms.
func (p *Parser) parsePatternPathOrVariant() *ast.Node {
	start := p.cur().Range.Start

	if p.isKeyword(token.KwShortestPath) {
		p.advance()
		p.expectKind(token.LParen)
		path := p.parsePatternPath()
		p.expectKind(token.RParen)
		rng := p.rangeSince(start)
		n, err := p.arena.NewShortestPath(rng, path, true)
		return p.checkBuild(rng, n, err)
	}
	if p.is(token.Identifier) && strings.EqualFold(p.cur().Text, "allshortestpaths") {
		p.advance()
		p.expectKind(token.LParen)
		path := p.parsePatternPath()
		p.expectKind(token.RParen)
		rng := p.rangeSince(start)
		n, err := p.arena.NewShortestPath(rng, path, false)
		return p.checkBuild(rng, n, err)
	}

	if p.is(token.Identifier) && p.peek(1).Kind == token.Eq {
		identTok := p.advance()
		ident, err := p.arena.NewIdentifier(identTok.Range, identTok.Text)
		if err != nil {
			return p.recoverAtom()
		}
		p.advance() // '='
		path := p.parsePatternPath()
		rng := p.rangeSince(start)
		n, err := p.arena.NewNamedPath(rng, ident, path)
		return p.checkBuild(rng, n, err)
	}

	return p.parsePatternPath()
}

// parsePatternPath parses a node pattern followed by zero or more
// (rel-pattern, node-pattern) pairs.
func (p *Parser) parsePatternPath() *ast.Node {
	start := p.cur().Range.Start
	elements := []*ast.Node{p.parseNodePattern()}
	for p.is(token.Minus) || p.is(token.Lt) {
		elements = append(elements, p.parseRelPattern())
		elements = append(elements, p.parseNodePattern())
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewPatternPath(rng, elements)
	return p.checkBuild(rng, n, err)
}

// parseNodePattern parses "(" [var] [":"Label]* [props] ")".
func (p *Parser) parseNodePattern() *ast.Node {
	start := p.cur().Range.Start
	p.expectKind(token.LParen)

	var variable *ast.Node
	if t, ok := p.matchKind(token.Identifier); ok {
		v, err := p.arena.NewIdentifier(t.Range, t.Text)
		if err == nil {
			variable = v
		}
	}
	labels := p.parseLabelSuffix()

	var properties *ast.Node
	if p.is(token.LBrace) {
		properties = p.parseMapLiteral()
	} else if p.is(token.Parameter) {
		t := p.advance()
		properties, _ = p.arena.NewParameter(t.Range, t.Text)
	}

	p.expectKind(token.RParen)
	rng := p.rangeSince(start)
	n, err := p.arena.NewNodePattern(rng, variable, labels, properties)
	return p.checkBuild(rng, n, err)
}

// parseRelPattern parses one relationship segment: "--", "-->", "<--",
// "-[...]-", "-[...]->", or "<-[...]-", inferring Direction from the
// leading/trailing arrowhead tokens (no dedicated arrow token exists;
// see lexer/symbols.go).
func (p *Parser) parseRelPattern() *ast.Node {
	start := p.cur().Range.Start
	dir := ast.DirNone
	if _, ok := p.matchKind(token.Lt); ok {
		dir = ast.DirInbound
	}
	p.expectKind(token.Minus)

	var variable *ast.Node
	var reltypes []*ast.Node
	var varLength *ast.Node
	var properties *ast.Node

	if _, ok := p.matchKind(token.LBracket); ok {
		if t, ok := p.matchKind(token.Identifier); ok {
			v, err := p.arena.NewIdentifier(t.Range, t.Text)
			if err == nil {
				variable = v
			}
		}
		if _, ok := p.matchKind(token.Colon); ok {
			reltypes = append(reltypes, p.parseRelType())
			for {
				if _, ok := p.matchKind(token.Pipe); !ok {
					break
				}
				p.matchKind(token.Colon) // some dialects repeat ':' per alternative
				reltypes = append(reltypes, p.parseRelType())
			}
		}
		if p.is(token.Star) {
			varLength = p.parseVariableLength()
		}
		if p.is(token.LBrace) {
			properties = p.parseMapLiteral()
		} else if p.is(token.Parameter) {
			t := p.advance()
			properties, _ = p.arena.NewParameter(t.Range, t.Text)
		}
		p.expectKind(token.RBracket)
	}

	p.expectKind(token.Minus)
	if _, ok := p.matchKind(token.Gt); ok {
		if dir == ast.DirInbound {
			p.errUnexpected() // "<-...->" is not a direction
		}
		dir = ast.DirOutbound
	}

	rng := p.rangeSince(start)
	n, err := p.arena.NewRelPattern(rng, dir, variable, reltypes, varLength, properties)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseRelType() *ast.Node {
	t, ok := p.expectKind(token.Identifier)
	if !ok {
		n, _ := p.arena.NewErrorNode(t.Range, t.Text)
		return n
	}
	n, _ := p.arena.NewRelType(t.Range, t.Text)
	return n
}

// parseVariableLength parses "*", "*n", or "*min..max" (either bound
// optional).
func (p *Parser) parseVariableLength() *ast.Node {
	start := p.cur().Range.Start
	p.advance() // '*'
	var min, max int
	var hasMin, hasMax bool
	if t, ok := p.matchKind(token.Integer); ok {
		min, _ = strconv.Atoi(t.Text)
		hasMin = true
		max, hasMax = min, true
	}
	if _, ok := p.matchKind(token.DotDot); ok {
		hasMax = false
		max = 0
		if t, ok := p.matchKind(token.Integer); ok {
			max, _ = strconv.Atoi(t.Text)
			hasMax = true
		}
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewRange(rng, min, max, hasMin, hasMax)
	return p.checkBuild(rng, n, err)
}
