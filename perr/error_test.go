package perr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cypher-lang/cypherparser/position"
)

func TestNewErrorContextExcerptsAroundPosition(t *testing.T) {
	source := []byte("MATCH (n) RETURN n.age\n")
	pos := position.Input{Line: 1, Column: 1, Offset: 6}
	err := NewError(ErrExpectedToken, pos, "expected ')'", source)

	require.Equal(t, "MATCH (n) RETURN n.age", err.Context)
	require.Equal(t, 6, err.ContextOffset)
	require.Equal(t, pos, err.Position)
}

func TestNewErrorTruncatesLongLines(t *testing.T) {
	prefix := make([]byte, 60)
	for i := range prefix {
		prefix[i] = 'a'
	}
	source := append(prefix, []byte("X")...)
	source = append(source, make([]byte, 60)...)
	for i := len(prefix) + 1; i < len(source); i++ {
		source[i] = 'b'
	}
	pos := position.Input{Offset: len(prefix)}

	err := NewError(ErrUnexpectedToken, pos, "unexpected", source)
	require.True(t, len(err.Context) < len(source))
	require.Contains(t, err.Context, "…")
}

func TestNewErrorReplacesControlCharacters(t *testing.T) {
	source := []byte("a\tb")
	err := NewError(ErrStrayCharacter, position.Input{Offset: 1}, "bad", source)
	require.NotContains(t, err.Context, "\t")
}

func TestCollectorPreservesSourceOrderAndLogs(t *testing.T) {
	c := NewCollector(nil)
	c.Add(NewError(ErrExpectedToken, position.Input{Offset: 5}, "first", nil))
	c.Add(NewError(ErrUnexpectedToken, position.Input{Offset: 1}, "second", nil))

	require.Equal(t, 2, c.Len())
	errs := c.Errors()
	require.Equal(t, "first", errs[0].Message)
	require.Equal(t, "second", errs[1].Message)
}
