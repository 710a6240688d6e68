package lexer

import (
	"strings"

	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

// scanString consumes a single- or double-quoted string, honoring the
// escape set in §4.2. Unterminated strings are reported but still produce
// a token covering everything up to the line's end, so the grammar engine
// can keep going.
func (l *Lexer) scanString(start position.Input, quote byte) token.Token {
	l.buf.Consume(1)
	var text strings.Builder
	for {
		c := l.buf.Peek(0)
		switch {
		case c == position.EOF || c == '\n' || c == '\r':
			l.errors.Add(perr.NewError(perr.ErrUnterminatedString, start, perr.ErrUnterminatedString.New(start).Error(), l.source))
			t := l.tok(token.String, start, text.String())
			t.Unterminated = true
			return t
		case c == int(quote):
			l.buf.Consume(1)
			t := l.tok(token.String, start, text.String())
			return t
		case c == '\\':
			l.scanEscape(&text)
		default:
			text.WriteByte(byte(c))
			l.buf.Consume(1)
		}
	}
}

func (l *Lexer) scanEscape(out *strings.Builder) {
	escStart := l.buf.Position()
	l.buf.Consume(1) // backslash
	c := l.buf.Peek(0)
	switch c {
	case '\\', '\'', '"':
		out.WriteByte(byte(c))
		l.buf.Consume(1)
	case 'b':
		out.WriteByte('\b')
		l.buf.Consume(1)
	case 'f':
		out.WriteByte('\f')
		l.buf.Consume(1)
	case 'n':
		out.WriteByte('\n')
		l.buf.Consume(1)
	case 'r':
		out.WriteByte('\r')
		l.buf.Consume(1)
	case 't':
		out.WriteByte('\t')
		l.buf.Consume(1)
	case 'u':
		l.scanUnicodeEscape(out, escStart, 4)
	case 'U':
		l.scanUnicodeEscape(out, escStart, 8)
	default:
		l.errors.Add(perr.NewError(perr.ErrInvalidEscape, escStart, perr.ErrInvalidEscape.New(rune(c)).Error(), l.source))
		out.WriteByte('\\')
	}
}

func (l *Lexer) scanUnicodeEscape(out *strings.Builder, escStart position.Input, digits int) {
	l.buf.Consume(1) // 'u' or 'U'
	var r rune
	for i := 0; i < digits; i++ {
		c := l.buf.Peek(0)
		v, ok := hexDigit(byte(c))
		if !ok {
			l.errors.Add(perr.NewError(perr.ErrInvalidEscape, escStart, perr.ErrInvalidEscape.New("\\u"+string(rune(c))).Error(), l.source))
			return
		}
		r = r*16 + rune(v)
		l.buf.Consume(1)
	}
	out.WriteRune(r)
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

func (l *Lexer) scanBackquoted(start position.Input) token.Token {
	l.buf.Consume(1)
	var text strings.Builder
	for {
		c := l.buf.Peek(0)
		switch c {
		case position.EOF, '\n', '\r':
			l.errors.Add(perr.NewError(perr.ErrUnterminatedString, start, perr.ErrUnterminatedString.New(start).Error(), l.source))
			t := l.tok(token.BackquotedIdentifier, start, text.String())
			t.Unterminated = true
			return t
		case '`':
			if l.buf.Peek(1) == '`' {
				text.WriteByte('`')
				l.buf.Consume(2)
				continue
			}
			l.buf.Consume(1)
			return l.tok(token.BackquotedIdentifier, start, text.String())
		default:
			text.WriteByte(byte(c))
			l.buf.Consume(1)
		}
	}
}
