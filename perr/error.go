package perr

import (
	"bytes"
	"fmt"

	"github.com/cypher-lang/cypherparser/position"
)

// Error is a plain value record for one recovered failure: its position,
// a user-friendly message, and the excerpted context/caret pair computed
// per spec §4.6. Errors are owned by the segment or result that produced
// them, never by the arena.
type Error struct {
	Kind           *Kind
	Position       position.Input
	Message        string
	Context        string
	ContextOffset  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

const contextRadius = 40

// control characters are replaced by these printable placeholders so the
// context string never reintroduces a literal newline or control byte.
var controlPlaceholder = map[byte]byte{
	'\n': ' ',
	'\r': ' ',
	'\t': ' ',
}

// NewError builds an Error by excerpting ctx around pos per §4.6:
//  1. scan backwards up to 40 bytes or to the start of the current line;
//  2. scan forward up to 40 bytes or to a newline/EOF;
//  3. replace control characters with printable placeholders;
//  4. compute the caret offset into the resulting context string.
func NewError(kind *Kind, pos position.Input, message string, source []byte) *Error {
	start := pos.Offset
	if start > len(source) {
		start = len(source)
	}
	if start < 0 {
		start = 0
	}

	back := start
	truncatedBack := false
	for i := 0; i < contextRadius && back > 0; i++ {
		if source[back-1] == '\n' {
			break
		}
		back--
	}
	if back > 0 && source[back-1] != '\n' {
		truncatedBack = true
	}

	fwd := start
	truncatedFwd := false
	for i := 0; i < contextRadius && fwd < len(source); i++ {
		if source[fwd] == '\n' {
			break
		}
		fwd++
	}
	if fwd < len(source) && source[fwd] != '\n' {
		truncatedFwd = true
	}

	var buf bytes.Buffer
	offset := 0
	if truncatedBack {
		buf.WriteString("…")
		offset = len("…")
	}
	raw := source[back:fwd]
	for _, c := range raw {
		if repl, ok := controlPlaceholder[c]; ok {
			buf.WriteByte(repl)
		} else {
			buf.WriteByte(c)
		}
	}
	caretOffset := offset + (start - back)
	if truncatedFwd {
		buf.WriteString("…")
	}

	return &Error{
		Kind:          kind,
		Position:      pos,
		Message:       message,
		Context:       buf.String(),
		ContextOffset: caretOffset,
	}
}
