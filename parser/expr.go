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

// parseExpression parses a full expression at the lowest precedence (OR),
// per the §4.3 precedence table:
//
//	OR < XOR < AND < NOT < comparison chain < + - < * / % < ^ <
//	unary + - < postfix (STARTS WITH, ENDS WITH, CONTAINS, =~, IN,
//	IS [NOT] NULL, property/subscript/slice/apply) < atom
func (p *Parser) parseExpression() *ast.Node {
	return p.parseOr()
}

func (p *Parser) parseOr() *ast.Node {
	left := p.parseXor()
	for {
		if _, ok := p.matchKeyword(token.KwOr); !ok {
			return left
		}
		right := p.parseXor()
		left = p.checkBuild3(ast.OpOr, left, right)
	}
}

func (p *Parser) parseXor() *ast.Node {
	left := p.parseAnd()
	for {
		if _, ok := p.matchKeyword(token.KwXor); !ok {
			return left
		}
		right := p.parseAnd()
		left = p.checkBuild3(ast.OpXor, left, right)
	}
}

func (p *Parser) parseAnd() *ast.Node {
	left := p.parseNot()
	for {
		if _, ok := p.matchKeyword(token.KwAnd); !ok {
			return left
		}
		right := p.parseNot()
		left = p.checkBuild3(ast.OpAnd, left, right)
	}
}

func (p *Parser) parseNot() *ast.Node {
	if t, ok := p.matchKeyword(token.KwNot); ok {
		operand := p.parseNot()
		rng := p.rangeSince(t.Range.Start)
		n, err := p.arena.NewUnaryOperator(rng, ast.OpNot, operand)
		return p.checkBuild(rng, n, err)
	}
	return p.parseComparisonChain()
}

var comparisonOps = map[token.Kind]ast.OperatorTag{
	token.Eq:  ast.OpEq,
	token.Neq: ast.OpNeq,
	token.Lt:  ast.OpLt,
	token.Gt:  ast.OpGt,
	token.Lte: ast.OpLte,
	token.Gte: ast.OpGte,
}

// parseComparisonChain folds "a0 op0 a1 op1 a2 ..." into a single
// ast.Comparison node rather than a nested binary tree (spec §4.3).
func (p *Parser) parseComparisonChain() *ast.Node {
	start := p.cur().Range.Start
	first := p.parseAdditive()
	var ops []ast.OperatorTag
	args := []*ast.Node{first}
	for {
		op, ok := comparisonOps[p.cur().Kind]
		if !ok {
			break
		}
		p.advance()
		ops = append(ops, op)
		args = append(args, p.parseAdditive())
	}
	if len(ops) == 0 {
		return first
	}
	rng := p.rangeSince(start)
	n, err := p.arena.NewComparison(rng, ops, args)
	return p.checkBuild(rng, n, err)
}

func (p *Parser) parseAdditive() *ast.Node {
	left := p.parseMultiplicative()
	for {
		var op ast.OperatorTag
		switch p.cur().Kind {
		case token.Plus:
			op = ast.OpPlus
		case token.Minus:
			op = ast.OpMinus
		default:
			return left
		}
		p.advance()
		right := p.parseMultiplicative()
		left = p.checkBuild3(op, left, right)
	}
}

func (p *Parser) parseMultiplicative() *ast.Node {
	left := p.parsePower()
	for {
		var op ast.OperatorTag
		switch p.cur().Kind {
		case token.Star:
			op = ast.OpMult
		case token.Slash:
			op = ast.OpDiv
		case token.Percent:
			op = ast.OpMod
		default:
			return left
		}
		p.advance()
		right := p.parsePower()
		left = p.checkBuild3(op, left, right)
	}
}

func (p *Parser) parsePower() *ast.Node {
	left := p.parseUnary()
	if _, ok := p.matchKind(token.Caret); ok {
		right := p.parsePower() // right-associative
		return p.checkBuild3(ast.OpPow, left, right)
	}
	return left
}

func (p *Parser) parseUnary() *ast.Node {
	start := p.cur().Range.Start
	switch p.cur().Kind {
	case token.Plus:
		p.advance()
		operand := p.parseUnary()
		rng := p.rangeSince(start)
		n, err := p.arena.NewUnaryOperator(rng, ast.OpUnaryPlus, operand)
		return p.checkBuild(rng, n, err)
	case token.Minus:
		p.advance()
		operand := p.parseUnary()
		rng := p.rangeSince(start)
		n, err := p.arena.NewUnaryOperator(rng, ast.OpUnaryMinus, operand)
		return p.checkBuild(rng, n, err)
	}
	return p.parsePostfix()
}

// parsePostfix handles the STARTS WITH / ENDS WITH / CONTAINS / =~ / IN /
// IS [NOT] NULL operators and the property/subscript/slice/apply
// productions, all of which bind tighter than the arithmetic operators but
// looser than a bare atom.
func (p *Parser) parsePostfix() *ast.Node {
	left := p.parseAtomChain()
	for {
		start := left.Range().Start
		switch {
		case p.isKeyword(token.KwStartsWith):
			if toks, ok := p.matchPhrase(token.KwStartsWith, token.KwWith); ok {
				_ = toks
				right := p.parseAtomChain()
				left = p.checkBuild3(ast.OpStartsWith, left, right)
				continue
			}
		case p.isKeyword(token.KwEndsWith):
			if _, ok := p.matchPhrase(token.KwEndsWith, token.KwWith); ok {
				right := p.parseAtomChain()
				left = p.checkBuild3(ast.OpEndsWith, left, right)
				continue
			}
		case p.isKeyword(token.KwContains):
			p.advance()
			right := p.parseAtomChain()
			left = p.checkBuild3(ast.OpContains, left, right)
			continue
		case p.is(token.Regex):
			p.advance()
			right := p.parseAtomChain()
			left = p.checkBuild3(ast.OpRegex, left, right)
			continue
		case p.isKeyword(token.KwIn):
			p.advance()
			right := p.parseAtomChain()
			left = p.checkBuild3(ast.OpIn, left, right)
			continue
		case p.isKeyword(token.KwIs):
			// IS NULL / IS NOT NULL: the lexer emits IS, NOT, NULL as three
			// separate keyword tokens (§4.2); the parser composes the phrase.
			if _, ok := p.matchPhrase(token.KwIs, token.KwNot, token.KwNull); ok {
				rng := p.rangeSince(start)
				n, err := p.arena.NewUnaryOperator(rng, ast.OpIsNotNull, left)
				left = p.checkBuild(rng, n, err)
				continue
			}
			if _, ok := p.matchPhrase(token.KwIs, token.KwNull); ok {
				rng := p.rangeSince(start)
				n, err := p.arena.NewUnaryOperator(rng, ast.OpIsNull, left)
				left = p.checkBuild(rng, n, err)
				continue
			}
		}
		return left
	}
}

// parseAtomChain parses an atom followed by zero or more property
// (.name), label (:Label...), subscript ([expr]), or slice ([a..b])
// suffixes.
func (p *Parser) parseAtomChain() *ast.Node {
	left := p.parseAtom()
	for {
		start := left.Range().Start
		switch {
		case p.is(token.Dot):
			p.advance()
			nameTok, ok := p.expectKind(token.Identifier)
			if !ok {
				return left
			}
			propName, err := p.arena.NewPropName(nameTok.Range, nameTok.Text)
			if err != nil {
				return left
			}
			rng := p.rangeSince(start)
			n, err := p.arena.NewPropertyOperator(rng, left, propName)
			left = p.checkBuild(rng, n, err)
		case p.is(token.Colon):
			labels := p.parseLabelSuffix()
			if len(labels) == 0 {
				return left
			}
			rng := p.rangeSince(start)
			n, err := p.arena.NewLabelsOperator(rng, left, labels)
			left = p.checkBuild(rng, n, err)
		case p.is(token.LBracket):
			left = p.parseSubscriptOrSlice(left)
		default:
			return left
		}
	}
}

// parseLabelSuffix consumes one or more ":Label" segments.
func (p *Parser) parseLabelSuffix() []*ast.Node {
	var labels []*ast.Node
	for p.is(token.Colon) {
		cp := p.stream.save()
		p.advance()
		nameTok, ok := p.matchKind(token.Identifier)
		if !ok {
			p.stream.restore(cp)
			break
		}
		label, err := p.arena.NewLabel(nameTok.Range, nameTok.Text)
		if err != nil {
			break
		}
		labels = append(labels, label)
	}
	return labels
}

func (p *Parser) parseSubscriptOrSlice(left *ast.Node) *ast.Node {
	lstart := left.Range().Start
	p.advance() // '['
	if _, ok := p.matchKind(token.DotDot); ok {
		to := p.parseExpression()
		p.expectKind(token.RBracket)
		rng := p.rangeSince(lstart)
		n, err := p.arena.NewSliceOperator(rng, left, nil, to)
		return p.checkBuild(rng, n, err)
	}
	first := p.parseExpression()
	if _, ok := p.matchKind(token.DotDot); ok {
		var to *ast.Node
		if !p.is(token.RBracket) {
			to = p.parseExpression()
		}
		p.expectKind(token.RBracket)
		rng := p.rangeSince(lstart)
		n, err := p.arena.NewSliceOperator(rng, left, first, to)
		return p.checkBuild(rng, n, err)
	}
	p.expectKind(token.RBracket)
	rng := p.rangeSince(lstart)
	n, err := p.arena.NewSubscriptOperator(rng, left, first)
	return p.checkBuild(rng, n, err)
}

// checkBuild3 is the common two-operand binary-operator build+error path
// shared by every left-associative precedence level.
func (p *Parser) checkBuild3(op ast.OperatorTag, left, right *ast.Node) *ast.Node {
	rng := p.rangeSince(left.Range().Start)
	n, err := p.arena.NewBinaryOperator(rng, op, left, right)
	return p.checkBuild(rng, n, err)
}
