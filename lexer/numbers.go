package lexer

import (
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

// scanNumber consumes an integer or float literal. The lexer never
// consumes a leading sign (§4.2): "1-2" lexes as Integer("1"), Minus,
// Integer("2"), leaving the parser to decide whether "-" is unary or
// binary.
func (l *Lexer) scanNumber(start position.Input) token.Token {
	n := 0
	isFloat := false

	if l.buf.Peek(0) == '0' && (l.buf.Peek(1) == 'x' || l.buf.Peek(1) == 'X') {
		n = 2
		for isHex(byte(l.buf.Peek(n))) {
			n++
		}
		return l.finishNumber(start, n, false)
	}
	if l.buf.Peek(0) == '0' && isOctalDigit(byte(l.buf.Peek(1))) {
		n = 1
		for isOctalDigit(byte(l.buf.Peek(n))) {
			n++
		}
		return l.finishNumber(start, n, false)
	}

	for isDigit(byte(l.buf.Peek(n))) {
		n++
	}
	if l.buf.Peek(n) == '.' && isDigit(byte(l.buf.Peek(n+1))) {
		isFloat = true
		n++
		for isDigit(byte(l.buf.Peek(n))) {
			n++
		}
	}
	if c := l.buf.Peek(n); c == 'e' || c == 'E' {
		k := n + 1
		if s := l.buf.Peek(k); s == '+' || s == '-' {
			k++
		}
		if isDigit(byte(l.buf.Peek(k))) {
			isFloat = true
			n = k
			for isDigit(byte(l.buf.Peek(n))) {
				n++
			}
		}
	}

	return l.finishNumber(start, n, isFloat)
}

func (l *Lexer) finishNumber(start position.Input, n int, isFloat bool) token.Token {
	text := string(l.buf.Slice(start.Offset, start.Offset+n))
	l.buf.Consume(n)
	if isFloat {
		return l.tok(token.Float, start, text)
	}
	return l.tok(token.Integer, start, text)
}

func isHex(c byte) bool {
	_, ok := hexDigit(c)
	return ok
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}
