package position

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferConsumeTracksLineAndColumn(t *testing.T) {
	b := NewBuffer([]byte("ab\ncd\r\nef"), Default)
	b.Consume(4) // "ab\nc"
	require.Equal(t, Input{Line: 2, Column: 2, Offset: 4}, b.Position())

	b.Consume(3) // "d\r\n": the \r\n pair counts as one line break
	require.Equal(t, Input{Line: 3, Column: 1, Offset: 7}, b.Position())
}

func TestBufferPeekReturnsEOFPastEnd(t *testing.T) {
	b := NewBuffer([]byte("a"), Default)
	require.Equal(t, int('a'), b.Peek(0))
	require.Equal(t, EOF, b.Peek(1))
}

func TestBufferSaveRestore(t *testing.T) {
	b := NewBuffer([]byte("abcdef"), Default)
	b.Consume(2)
	cp := b.Save()
	b.Consume(3)
	require.Equal(t, 5, b.Position().Offset)
	b.Restore(cp)
	require.Equal(t, 2, b.Position().Offset)
}

func TestBufferSeekJumpsToArbitraryPosition(t *testing.T) {
	b := NewBuffer([]byte("abcdef"), Default)
	b.Consume(5)
	b.Seek(Input{Line: 1, Column: 3, Offset: 2})
	require.Equal(t, 2, b.Position().Offset)
	require.Equal(t, int('c'), b.Peek(0))
}

func TestBufferSliceAliasesBackingArray(t *testing.T) {
	b := NewBuffer([]byte("hello world"), Default)
	require.Equal(t, "hello", string(b.Slice(0, 5)))
	require.Nil(t, b.Slice(5, 5))
	require.Equal(t, "world", string(b.Slice(6, 100)))
}

func TestRangeContains(t *testing.T) {
	outer := Range{Start: Input{Offset: 0}, End: Input{Offset: 10}}
	inner := Range{Start: Input{Offset: 2}, End: Input{Offset: 5}}
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))
}
