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
	"github.com/cypher-lang/cypherparser/lexer"
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

// Parser is a recursive-descent predictive parser over one segment's worth
// of tokens. It is not safe for concurrent use and not meant to be reused
// across segments; the dispatcher constructs a fresh one (sharing the
// underlying Lexer, Arena and Collector) per directive.
type Parser struct {
	stream  *tokenStream
	arena   *ast.Arena
	errors  *perr.Collector
	source  []byte
	lex     *lexer.Lexer
	onlyStatements bool
}

// New creates a Parser reading tokens from lex, building nodes in arena,
// and recording errors in errors. onlyStatements disables client-command
// recognition (config's "parse-only-statements" flag, §4.7).
func New(lex *lexer.Lexer, arena *ast.Arena, errors *perr.Collector, source []byte, onlyStatements bool) *Parser {
	return &Parser{
		stream:         newTokenStream(lex),
		arena:          arena,
		errors:         errors,
		source:         source,
		lex:            lex,
		onlyStatements: onlyStatements,
	}
}

// Seed preloads t as the parser's first token, used by the segment
// dispatcher when it had to consult Lexer.NextTrivia to find the start of
// this directive and must not re-lex the token it already pulled.
func (p *Parser) Seed(t token.Token) { p.stream.seed(t) }

// EndPos returns the end of the last token this parser actually consumed
// (stream.pos, not however far its internal lookahead buffered ahead of
// it). The dispatcher seeks the shared buffer back to this position after
// a directive is parsed, discarding whatever the parser speculatively
// pulled past it, so the next segment's scan starts from exactly the byte
// the grammar committed to rather than wherever the lexer physically
// stopped.
func (p *Parser) EndPos() position.Input {
	if p.stream.pos > 0 {
		return p.stream.buf[p.stream.pos-1].Range.End
	}
	return p.stream.Current().Range.Start
}

func (p *Parser) cur() token.Token        { return p.stream.Current() }
func (p *Parser) peek(k int) token.Token  { return p.stream.Peek(k) }
func (p *Parser) advance() token.Token    { return p.stream.Advance() }
func (p *Parser) atEOF() bool             { return p.cur().Kind == token.EOF }

func (p *Parser) is(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) isKeyword(id token.KeywordID) bool { return p.cur().IsKeyword(id) }

// matchKind consumes and returns (token, true) if the current token has
// kind k, otherwise leaves the cursor untouched and returns (zero, false).
func (p *Parser) matchKind(k token.Kind) (token.Token, bool) {
	if p.is(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// matchKeyword consumes and returns (token, true) if the current token is
// keyword id.
func (p *Parser) matchKeyword(id token.KeywordID) (token.Token, bool) {
	if p.isKeyword(id) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// matchPhrase consumes a sequence of consecutive keywords if and only if
// every one matches in order; otherwise the cursor is left untouched
// (spec §4.2: multi-word keywords only commit once the whole sequence is
// present).
func (p *Parser) matchPhrase(ids ...token.KeywordID) ([]token.Token, bool) {
	cp := p.stream.save()
	toks := make([]token.Token, 0, len(ids))
	for _, id := range ids {
		t, ok := p.matchKeyword(id)
		if !ok {
			p.stream.restore(cp)
			return nil, false
		}
		toks = append(toks, t)
	}
	return toks, true
}

// peekPhrase reports whether the upcoming tokens match ids without
// consuming anything.
func (p *Parser) peekPhrase(ids ...token.KeywordID) bool {
	for i, id := range ids {
		t := p.peek(i)
		if !t.IsKeyword(id) {
			return false
		}
	}
	return true
}

// expectKind consumes the current token if it has kind k; otherwise it
// records a parse error (spec §4.3.2 step 1) and returns false, leaving
// the cursor in place so the caller's recovery logic can decide how far to
// skip.
func (p *Parser) expectKind(k token.Kind) (token.Token, bool) {
	if t, ok := p.matchKind(k); ok {
		return t, true
	}
	p.errExpected(k.String())
	return token.Token{}, false
}

// expectKeyword is expectKind's keyword counterpart.
func (p *Parser) expectKeyword(id token.KeywordID, label string) (token.Token, bool) {
	if t, ok := p.matchKeyword(id); ok {
		return t, true
	}
	p.errExpected(label)
	return token.Token{}, false
}

func (p *Parser) errExpected(expected string) {
	t := p.cur()
	if t.Kind == token.EOF {
		p.errors.Add(perr.NewError(perr.ErrUnexpectedEOF, t.Range.Start,
			perr.ErrUnexpectedEOF.New(expected).Error(), p.source))
		return
	}
	p.errors.Add(perr.NewError(perr.ErrExpectedToken, t.Range.Start,
		perr.ErrExpectedToken.New(expected, t.String()).Error(), p.source))
}

func (p *Parser) errUnexpected() {
	t := p.cur()
	p.errors.Add(perr.NewError(perr.ErrUnexpectedToken, t.Range.Start,
		perr.ErrUnexpectedToken.New(t.String()).Error(), p.source))
}

// rangeSince builds the position.Range spanning from start to the end of
// the last consumed token.
func (p *Parser) rangeSince(start position.Input) position.Range {
	end := start
	if p.stream.pos > 0 {
		end = p.stream.buf[p.stream.pos-1].Range.End
	}
	return position.Range{Start: start, End: end}
}

// checkBuild wraps an *ast.Node-constructing call: on argument-error it
// records a parse error and returns an Error placeholder node so the
// caller's tree stays well-formed (spec §4.3.2's "argument errors bubble
// up as a null node; the grammar engine converts them into a recorded
// error plus a placeholder").
func (p *Parser) checkBuild(rng position.Range, n *ast.Node, err error) *ast.Node {
	if err == nil {
		return n
	}
	p.errors.Add(perr.NewError(perr.ErrUnexpectedToken, rng.Start, err.Error(), p.source))
	errNode, buildErr := p.arena.NewErrorNode(rng, string(sliceSource(p.source, rng)))
	if buildErr != nil {
		return nil
	}
	return errNode
}

func sliceSource(source []byte, rng position.Range) []byte {
	start, end := rng.Start.Offset, rng.End.Offset
	if start < 0 {
		start = 0
	}
	if end > len(source) {
		end = len(source)
	}
	if start >= end {
		return nil
	}
	return source[start:end]
}
