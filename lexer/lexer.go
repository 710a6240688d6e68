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

// Package lexer turns a byte buffer into the on-demand token stream the
// grammar engine consumes (spec §4.2). It never looks ahead further than
// the grammar asks it to: every Next call scans exactly one token.
package lexer

import (
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

// Lexer scans tokens from a position.Buffer. It is not safe for concurrent
// use; each parse owns exactly one Lexer.
type Lexer struct {
	buf    *position.Buffer
	errors *perr.Collector
	source []byte
}

// New creates a Lexer over buf, reporting lex errors to errors.
func New(buf *position.Buffer, errors *perr.Collector) *Lexer {
	return &Lexer{buf: buf, errors: errors, source: buf.Bytes()}
}

// Next scans and returns the next significant token, silently skipping
// whitespace, line comments, and block comments. Use NextTrivia to recover
// comments explicitly when building an AST that records them.
func (l *Lexer) Next() token.Token {
	for {
		t := l.scanOne()
		if t.Kind == token.Whitespace || t.Kind == token.LineComment || t.Kind == token.BlockComment {
			continue
		}
		return t
	}
}

// Buffer returns the underlying position.Buffer, for callers (the client
// command scanner) that need to read raw bytes once the normal lexer's
// token-oriented rules stop applying.
func (l *Lexer) Buffer() *position.Buffer { return l.buf }

// NextTrivia scans and returns the next token without skipping trivia,
// used by the AST builder when it wants to attach comments to the tree and
// by the segment dispatcher when it needs to know exactly what bytes
// preceded a directive.
func (l *Lexer) NextTrivia() token.Token {
	return l.scanOne()
}

func (l *Lexer) scanOne() token.Token {
	start := l.buf.Position()
	c := l.buf.Peek(0)

	switch {
	case c == position.EOF:
		return l.tok(token.EOF, start, "")
	case isSpace(byte(c)):
		return l.scanWhitespace(start)
	case c == '/' && l.buf.Peek(1) == '/':
		return l.scanLineComment(start)
	case c == '/' && l.buf.Peek(1) == '*':
		return l.scanBlockComment(start)
	case c == '\'' || c == '"':
		return l.scanString(start, byte(c))
	case c == '`':
		return l.scanBackquoted(start)
	case c == '$':
		return l.scanParameter(start)
	case c == '{':
		if isParamBraceStart(l.buf) {
			return l.scanBraceParameter(start)
		}
		l.buf.Consume(1)
		return l.tok(token.LBrace, start, "{")
	case isDigit(byte(c)):
		return l.scanNumber(start)
	case c == '.' && isDigit(byte(l.buf.Peek(1))):
		return l.scanNumber(start)
	case isIdentStart(byte(c)):
		return l.scanIdentifierOrKeyword(start)
	default:
		return l.scanSymbol(start)
	}
}

func (l *Lexer) tok(kind token.Kind, start position.Input, text string) token.Token {
	return token.Token{Kind: kind, Text: text, Range: position.Range{Start: start, End: l.buf.Position()}}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func (l *Lexer) scanWhitespace(start position.Input) token.Token {
	n := 0
	for isSpace(byte(l.buf.Peek(n))) {
		n++
	}
	l.buf.Consume(n)
	return l.tok(token.Whitespace, start, "")
}
