package lexer

import (
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

func (l *Lexer) scanSymbol(start position.Input) token.Token {
	c := l.buf.Peek(0)
	two := func(second int, kind token.Kind, text string) (token.Token, bool) {
		if l.buf.Peek(1) == second {
			l.buf.Consume(2)
			return l.tok(kind, start, text), true
		}
		return token.Token{}, false
	}

	switch c {
	case '(':
		l.buf.Consume(1)
		return l.tok(token.LParen, start, "(")
	case ')':
		l.buf.Consume(1)
		return l.tok(token.RParen, start, ")")
	case '[':
		l.buf.Consume(1)
		return l.tok(token.LBracket, start, "[")
	case ']':
		l.buf.Consume(1)
		return l.tok(token.RBracket, start, "]")
	case '{':
		l.buf.Consume(1)
		return l.tok(token.LBrace, start, "{")
	case '}':
		l.buf.Consume(1)
		return l.tok(token.RBrace, start, "}")
	case ',':
		l.buf.Consume(1)
		return l.tok(token.Comma, start, ",")
	case '.':
		if t, ok := two('.', token.DotDot, ".."); ok {
			return t
		}
		l.buf.Consume(1)
		return l.tok(token.Dot, start, ".")
	case ':':
		l.buf.Consume(1)
		return l.tok(token.Colon, start, ":")
	case ';':
		l.buf.Consume(1)
		return l.tok(token.SemiColon, start, ";")
	case '|':
		l.buf.Consume(1)
		return l.tok(token.Pipe, start, "|")
	case '+':
		if t, ok := two('=', token.PlusEq, "+="); ok {
			return t
		}
		l.buf.Consume(1)
		return l.tok(token.Plus, start, "+")
	case '-':
		l.buf.Consume(1)
		return l.tok(token.Minus, start, "-")
	case '*':
		l.buf.Consume(1)
		return l.tok(token.Star, start, "*")
	case '/':
		l.buf.Consume(1)
		return l.tok(token.Slash, start, "/")
	case '%':
		l.buf.Consume(1)
		return l.tok(token.Percent, start, "%")
	case '^':
		l.buf.Consume(1)
		return l.tok(token.Caret, start, "^")
	case '=':
		if t, ok := two('~', token.Regex, "=~"); ok {
			return t
		}
		l.buf.Consume(1)
		return l.tok(token.Eq, start, "=")
	case '<':
		if t, ok := two('>', token.Neq, "<>"); ok {
			return t
		}
		if t, ok := two('=', token.Lte, "<="); ok {
			return t
		}
		l.buf.Consume(1)
		return l.tok(token.Lt, start, "<")
	case '>':
		if t, ok := two('=', token.Gte, ">="); ok {
			return t
		}
		l.buf.Consume(1)
		return l.tok(token.Gt, start, ">")
	default:
		l.errors.Add(perr.NewError(perr.ErrStrayCharacter, start, perr.ErrStrayCharacter.New(rune(c)).Error(), l.source))
		l.buf.Consume(1)
		return l.tok(token.Illegal, start, string(rune(c)))
	}
}
