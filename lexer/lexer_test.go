package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, *perr.Collector) {
	t.Helper()
	errs := perr.NewCollector(nil)
	buf := position.NewBuffer([]byte(src), position.Default)
	lex := New(buf, errs)
	var toks []token.Token
	for {
		tok := lex.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, errs
}

func TestLexerSkipsWhitespaceAndComments(t *testing.T) {
	toks, errs := scanAll(t, "RETURN  // comment\n 1")
	require.Equal(t, 0, errs.Len())
	require.Len(t, toks, 3) // RETURN, 1, EOF
	require.Equal(t, token.Keyword, toks[0].Kind)
	require.Equal(t, token.Integer, toks[1].Kind)
	require.Equal(t, token.EOF, toks[2].Kind)
}

func TestLexerResolvesKeywordCaseInsensitively(t *testing.T) {
	toks, _ := scanAll(t, "MaTcH")
	require.Equal(t, token.Keyword, toks[0].Kind)
	require.Equal(t, token.KwMatch, toks[0].KeywordID)
}

func TestLexerTreatsUnknownWordAsIdentifier(t *testing.T) {
	toks, _ := scanAll(t, "personName")
	require.Equal(t, token.Identifier, toks[0].Kind)
	require.Equal(t, "personName", toks[0].Text)
}

func TestLexerNeverConsumesLeadingSignOnNumbers(t *testing.T) {
	toks, _ := scanAll(t, "1-2")
	require.Equal(t, token.Integer, toks[0].Kind)
	require.Equal(t, "1", toks[0].Text)
	require.Equal(t, token.Minus, toks[1].Kind)
	require.Equal(t, token.Integer, toks[2].Kind)
	require.Equal(t, "2", toks[2].Text)
}

func TestLexerScansFloatWithExponent(t *testing.T) {
	toks, _ := scanAll(t, "1.5e10")
	require.Equal(t, token.Float, toks[0].Kind)
	require.Equal(t, "1.5e10", toks[0].Text)
}

func TestLexerScansHexAndOctalIntegers(t *testing.T) {
	toks, _ := scanAll(t, "0x1F 017")
	require.Equal(t, token.Integer, toks[0].Kind)
	require.Equal(t, "0x1F", toks[0].Text)
	require.Equal(t, token.Integer, toks[1].Kind)
	require.Equal(t, "017", toks[1].Text)
}

func TestLexerDecodesStringEscapes(t *testing.T) {
	toks, errs := scanAll(t, `'a\tbA'`)
	require.Equal(t, 0, errs.Len())
	require.Equal(t, token.String, toks[0].Kind)
	require.Equal(t, "a\tbA", toks[0].Text)
}

func TestLexerReportsUnterminatedString(t *testing.T) {
	toks, errs := scanAll(t, "'abc")
	require.Equal(t, 1, errs.Len())
	require.True(t, toks[0].Unterminated)
}

func TestLexerReportsUnterminatedBlockComment(t *testing.T) {
	errs := perr.NewCollector(nil)
	buf := position.NewBuffer([]byte("/* never closed"), position.Default)
	lex := New(buf, errs)
	tok := lex.NextTrivia()
	require.Equal(t, token.BlockComment, tok.Kind)
	require.True(t, tok.Unterminated)
	require.Equal(t, 1, errs.Len())
}

func TestLexerBalancesNestedBlockComments(t *testing.T) {
	errs := perr.NewCollector(nil)
	buf := position.NewBuffer([]byte("/* outer /* inner */ still */x"), position.Default)
	lex := New(buf, errs)
	tok := lex.NextTrivia()
	require.Equal(t, token.BlockComment, tok.Kind)
	require.False(t, tok.Unterminated)
	require.Equal(t, 0, errs.Len())

	next := lex.Next()
	require.Equal(t, token.Identifier, next.Kind)
	require.Equal(t, "x", next.Text)
}

func TestLexerScansParameterAndLegacyBraceParameter(t *testing.T) {
	toks, _ := scanAll(t, "$name {42}")
	require.Equal(t, token.Parameter, toks[0].Kind)
	require.Equal(t, "name", toks[0].Text)
	require.Equal(t, token.Parameter, toks[1].Kind)
	require.Equal(t, "42", toks[1].Text)
}

func TestLexerDistinguishesMapBraceFromLegacyParameter(t *testing.T) {
	toks, _ := scanAll(t, "{name: 1}")
	require.Equal(t, token.LBrace, toks[0].Kind)
}

func TestLexerScansTwoCharacterSymbols(t *testing.T) {
	toks, _ := scanAll(t, "<= <> >= =~ .. +=")
	kinds := []token.Kind{token.Lte, token.Neq, token.Gte, token.Regex, token.DotDot, token.PlusEq}
	for i, k := range kinds {
		require.Equal(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestLexerReportsStrayCharacterAsIllegal(t *testing.T) {
	toks, errs := scanAll(t, "@")
	require.Equal(t, token.Illegal, toks[0].Kind)
	require.Equal(t, 1, errs.Len())
}

func TestLexerScansBackquotedIdentifierWithEscapedBackquote(t *testing.T) {
	errs := perr.NewCollector(nil)
	buf := position.NewBuffer([]byte("`a``b`"), position.Default)
	lex := New(buf, errs)
	tok := lex.Next()
	require.Equal(t, token.BackquotedIdentifier, tok.Kind)
	require.Equal(t, "a`b", tok.Text)
	require.Equal(t, 0, errs.Len())
}

func TestNextTriviaReturnsCommentsNextSkipsThem(t *testing.T) {
	buf := position.NewBuffer([]byte("/* c */ x"), position.Default)
	errs := perr.NewCollector(nil)
	lex := New(buf, errs)
	require.Equal(t, token.BlockComment, lex.NextTrivia().Kind)
	require.Equal(t, token.Identifier, lex.Next().Kind)
}
