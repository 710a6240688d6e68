package position

// EOF is returned by Buffer.Peek once the source is exhausted.
const EOF = -1

// Buffer wraps a byte slice and tracks the current Input as bytes are
// consumed. It supports arbitrary lookahead via Peek and constant-time
// checkpoint/restore via Save/Restore, matching component 4.1: the buffer
// never allocates or copies on Peek, Save or Slice (Slice aliases the input).
type Buffer struct {
	data []byte
	pos  Input
}

// NewBuffer creates a Buffer over data, starting at origin.
func NewBuffer(data []byte, origin Input) *Buffer {
	return &Buffer{data: data, pos: origin}
}

// Len returns the number of unconsumed bytes.
func (b *Buffer) Len() int {
	return len(b.data) - b.pos.Offset
}

// Peek returns the byte k positions ahead of the cursor (k=0 is the next
// unconsumed byte) or EOF if that position is past the end of the input.
func (b *Buffer) Peek(k int) int {
	idx := b.pos.Offset + k
	if idx < 0 || idx >= len(b.data) {
		return EOF
	}
	return int(b.data[idx])
}

// Position returns the current Input triple.
func (b *Buffer) Position() Input {
	return b.pos
}

// Checkpoint is an opaque, constant-size snapshot of the buffer's cursor,
// safe to stash on the call stack for speculative matching.
type Checkpoint struct {
	pos Input
}

// Save captures the current cursor. Restore rewinds to it.
func (b *Buffer) Save() Checkpoint {
	return Checkpoint{pos: b.pos}
}

// Restore rewinds the cursor to a previously captured Checkpoint.
func (b *Buffer) Restore(c Checkpoint) {
	b.pos = c.pos
}

// Seek moves the cursor directly to pos, for callers (the segment
// dispatcher) that tracked a precise Input from an earlier token and need
// to rewind past bytes a speculative reader pulled without logically
// consuming, rather than snapshot/restore around a single call.
func (b *Buffer) Seek(pos Input) {
	b.pos = pos
}

// Consume advances the cursor by n bytes, updating line/column accounting.
// A "\r\n" pair counts as a single line break; a lone "\r" or "\n" also
// counts as one. Tabs advance the column by exactly one, matching §4.1:
// no tab expansion.
func (b *Buffer) Consume(n int) {
	for i := 0; i < n; i++ {
		idx := b.pos.Offset
		if idx >= len(b.data) {
			b.pos.Offset++
			continue
		}
		c := b.data[idx]
		b.pos.Offset++
		switch c {
		case '\n':
			b.pos.Line++
			b.pos.Column = 1
		case '\r':
			// Swallow the line break now; if the next byte is '\n' it is
			// part of the same break and must not advance the line again.
			if idx+1 < len(b.data) && b.data[idx+1] == '\n' {
				b.pos.Offset++
				i++
			}
			b.pos.Line++
			b.pos.Column = 1
		default:
			b.pos.Column++
		}
	}
}

// Slice returns the raw bytes of the half-open range [start, end) of
// absolute byte offsets. The returned slice aliases the buffer's backing
// array; callers that need to retain it past the buffer's lifetime must
// copy it into the AST arena.
func (b *Buffer) Slice(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > len(b.data) {
		end = len(b.data)
	}
	if start >= end {
		return nil
	}
	return b.data[start:end]
}

// Bytes returns the entire underlying input.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// AtEOF reports whether the cursor has reached the end of input.
func (b *Buffer) AtEOF() bool {
	return b.pos.Offset >= len(b.data)
}
