package lexer

import (
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

// scanParameter consumes a $name parameter.
func (l *Lexer) scanParameter(start position.Input) token.Token {
	l.buf.Consume(1) // '$'
	n := 0
	for isIdentPart(byte(l.buf.Peek(n))) {
		n++
	}
	if n == 0 {
		if isDigit(byte(l.buf.Peek(0))) {
			for isDigit(byte(l.buf.Peek(n))) {
				n++
			}
		} else {
			l.errors.Add(perr.NewError(perr.ErrStrayCharacter, start, perr.ErrStrayCharacter.New("$").Error(), l.source))
			return l.tok(token.Illegal, start, "$")
		}
	}
	text := string(l.buf.Slice(start.Offset+1, start.Offset+1+n))
	l.buf.Consume(n)
	return l.tok(token.Parameter, start, text)
}

// isParamBraceStart reports whether the '{' at the cursor begins an
// old-style "{name}"/"{number}" parameter rather than a map literal: the
// brace's contents must be exactly one identifier or integer run followed
// immediately by '}', with no ':' in between.
func isParamBraceStart(buf *position.Buffer) bool {
	k := 1
	c := buf.Peek(k)
	if !isIdentStart(byte(c)) && !isDigit(byte(c)) {
		return false
	}
	for {
		c = buf.Peek(k)
		if c == '}' {
			return k > 1
		}
		if c == position.EOF || !isIdentPart(byte(c)) {
			return false
		}
		k++
	}
}

// scanBraceParameter consumes a "{name}" or "{number}" legacy parameter.
func (l *Lexer) scanBraceParameter(start position.Input) token.Token {
	l.buf.Consume(1) // '{'
	n := 0
	for isIdentPart(byte(l.buf.Peek(n))) {
		n++
	}
	text := string(l.buf.Slice(l.buf.Position().Offset, l.buf.Position().Offset+n))
	l.buf.Consume(n)
	l.buf.Consume(1) // '}'
	return l.tok(token.Parameter, start, text)
}
