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
	"github.com/cypher-lang/cypherparser/position"
)

// ScanCommand reads one client command directly from buf's raw bytes (spec
// §4.3.1): a name word followed by whitespace-separated argument words,
// terminated by newline or EOF. buf's cursor must already sit just past the
// leading ':'. Double-quoted arguments honor the same backslash-escape set
// as string literals (lexer/strings.go), minus the \u/\U forms a bare
// command word has no use for.
func ScanCommand(buf *position.Buffer, arena *ast.Arena) (*ast.Node, error) {
	start := buf.Position()
	name := scanCommandWord(buf)
	var args []string
	for {
		skipCommandSpaces(buf)
		if atCommandEnd(buf) {
			break
		}
		args = append(args, scanCommandArg(buf))
	}
	rng := position.Range{Start: start, End: buf.Position()}
	return arena.NewCommand(rng, name, args)
}

func atCommandEnd(buf *position.Buffer) bool {
	c := buf.Peek(0)
	return c == position.EOF || c == '\n' || c == '\r'
}

func skipCommandSpaces(buf *position.Buffer) {
	for {
		switch buf.Peek(0) {
		case ' ', '\t':
			buf.Consume(1)
		default:
			return
		}
	}
}

func scanCommandWord(buf *position.Buffer) string {
	skipCommandSpaces(buf)
	var b strings.Builder
	for {
		c := buf.Peek(0)
		if c == position.EOF || c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			break
		}
		b.WriteByte(byte(c))
		buf.Consume(1)
	}
	return b.String()
}

func scanCommandArg(buf *position.Buffer) string {
	if buf.Peek(0) == '"' {
		return scanCommandQuoted(buf)
	}
	return scanCommandWord(buf)
}

func scanCommandQuoted(buf *position.Buffer) string {
	buf.Consume(1) // opening quote
	var b strings.Builder
	for {
		c := buf.Peek(0)
		if c == position.EOF || c == '\n' || c == '\r' {
			break
		}
		if c == '"' {
			buf.Consume(1)
			break
		}
		if c == '\\' {
			buf.Consume(1)
			switch buf.Peek(0) {
			case '\\', '"', '\'':
				b.WriteByte(byte(buf.Peek(0)))
				buf.Consume(1)
			case 'b':
				b.WriteByte('\b')
				buf.Consume(1)
			case 'f':
				b.WriteByte('\f')
				buf.Consume(1)
			case 'n':
				b.WriteByte('\n')
				buf.Consume(1)
			case 'r':
				b.WriteByte('\r')
				buf.Consume(1)
			case 't':
				b.WriteByte('\t')
				buf.Consume(1)
			default:
				b.WriteByte('\\')
			}
			continue
		}
		b.WriteByte(byte(c))
		buf.Consume(1)
	}
	return b.String()
}
