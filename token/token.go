package token

import "github.com/cypher-lang/cypherparser/position"

// Token is one lexical unit: its Kind, its Text, and the Range it spans.
// Text is the matched source text for identifiers and numbers, the
// decoded value for strings and backquoted identifiers, the body for
// comments, and the canonical uppercased spelling for keyword tokens,
// whose KeywordID names which keyword it is.
type Token struct {
	Kind      Kind
	KeywordID KeywordID
	Text      string
	Range     position.Range

	// Unterminated marks a String or BlockComment token the lexer had to
	// close early (at line end or EOF respectively) per §4.2, so the
	// parser can still consume it and continue.
	Unterminated bool
}

// IsKeyword reports whether t is a keyword token matching id.
func (t Token) IsKeyword(id KeywordID) bool {
	return t.Kind == Keyword && t.KeywordID == id
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "end of input"
	}
	if t.Kind == Keyword {
		return "'" + t.Text + "'"
	}
	if s, ok := kindNames[t.Kind]; ok && t.Text == "" {
		return s
	}
	return t.Kind.String() + " " + quote(t.Text)
}

func quote(s string) string {
	if len(s) > 24 {
		s = s[:24] + "…"
	}
	return "'" + s + "'"
}
