package lexer

import (
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

func (l *Lexer) scanLineComment(start position.Input) token.Token {
	l.buf.Consume(2) // "//"
	n := 0
	for {
		c := l.buf.Peek(n)
		if c == position.EOF || c == '\n' || c == '\r' {
			break
		}
		n++
	}
	l.buf.Consume(n)
	return l.tok(token.LineComment, start, string(l.buf.Slice(start.Offset+2, start.Offset+2+n)))
}

// scanBlockComment consumes a /* ... */ comment. Nested openers must
// balance against closers (§4.2); an unterminated comment is reported but
// the token still covers everything up to EOF so the parser can continue.
func (l *Lexer) scanBlockComment(start position.Input) token.Token {
	l.buf.Consume(2) // "/*"
	depth := 1
	for depth > 0 {
		c := l.buf.Peek(0)
		if c == position.EOF {
			l.errors.Add(perr.NewError(perr.ErrUnterminatedComment, start, perr.ErrUnterminatedComment.New(start).Error(), l.source))
			t := l.tok(token.BlockComment, start, string(l.buf.Slice(start.Offset+2, l.buf.Position().Offset)))
			t.Unterminated = true
			return t
		}
		if c == '/' && l.buf.Peek(1) == '*' {
			l.buf.Consume(2)
			depth++
			continue
		}
		if c == '*' && l.buf.Peek(1) == '/' {
			l.buf.Consume(2)
			depth--
			continue
		}
		l.buf.Consume(1)
	}
	return l.tok(token.BlockComment, start, string(l.buf.Slice(start.Offset+2, l.buf.Position().Offset-2)))
}
