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

// Package parser implements the recursive-descent grammar engine (spec
// §4.3): statements, clauses, a precedence-climbing expression parser,
// pattern-path parsing, and error recovery via synchronization points.
package parser

import (
	"github.com/cypher-lang/cypherparser/lexer"
	"github.com/cypher-lang/cypherparser/token"
)

// tokenStream buffers tokens pulled from a Lexer so the grammar engine can
// peek arbitrarily far ahead and checkpoint/restore its cursor for
// speculative matching (multi-word keywords, ambiguous pattern/map
// lookahead), mirroring component 4.1's buffer contract one level up: a
// Save is a single integer, Restore is O(1), Peek never re-lexes.
type tokenStream struct {
	lex *lexer.Lexer
	buf []token.Token
	pos int
}

func newTokenStream(lex *lexer.Lexer) *tokenStream {
	return &tokenStream{lex: lex}
}

// seed preloads t as the stream's first token, for callers (the segment
// dispatcher) that had to pull one token ahead via Lexer.NextTrivia to
// decide where a directive begins and must hand it to the Parser without
// re-lexing it.
func (s *tokenStream) seed(t token.Token) {
	s.buf = append(s.buf, t)
}

func (s *tokenStream) fill(upto int) {
	for len(s.buf) <= upto {
		s.buf = append(s.buf, s.lex.Next())
	}
}

// Peek returns the token k positions ahead of the cursor without consuming
// it; Peek(0) is the current token.
func (s *tokenStream) Peek(k int) token.Token {
	s.fill(s.pos + k)
	return s.buf[s.pos+k]
}

// Current returns the token at the cursor.
func (s *tokenStream) Current() token.Token { return s.Peek(0) }

// Advance consumes and returns the token at the cursor.
func (s *tokenStream) Advance() token.Token {
	t := s.Peek(0)
	s.pos++
	return t
}

// checkpoint is an opaque cursor snapshot.
type checkpoint struct{ pos int }

func (s *tokenStream) save() checkpoint     { return checkpoint{pos: s.pos} }
func (s *tokenStream) restore(c checkpoint) { s.pos = c.pos }
