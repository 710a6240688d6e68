package lexer

import (
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

// scanIdentifierOrKeyword consumes a run of identifier characters and
// case-folds it against the keyword table (§4.2). Multi-word keywords are
// not resolved here; the parser composes them from consecutive single-word
// keyword tokens via Parser.matchPhrase.
func (l *Lexer) scanIdentifierOrKeyword(start position.Input) token.Token {
	n := 0
	for isIdentPart(byte(l.buf.Peek(n))) {
		n++
	}
	text := string(l.buf.Slice(start.Offset, start.Offset+n))
	l.buf.Consume(n)

	if id, ok := token.Lookup(text); ok {
		t := l.tok(token.Keyword, start, token.Canonical(text))
		t.KeywordID = id
		return t
	}
	return l.tok(token.Identifier, start, text)
}
