// Copyright 2024 The cypherparser Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cypher

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/cypher-lang/cypherparser/ast"
	"github.com/cypher-lang/cypherparser/config"
	"github.com/cypher-lang/cypherparser/lexer"
	"github.com/cypher-lang/cypherparser/parser"
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
	"github.com/cypher-lang/cypherparser/token"
)

// Parse runs the batched dispatcher (spec §4.5): every directive in
// source, collected into a single Result.
func Parse(source []byte, opts config.Options) (*Result, error) {
	d, err := newDispatcher(source, opts, "cypher.parse")
	if err != nil {
		return nil, err
	}
	defer d.span.Finish()

	auditor := opts.AuditorOrNoop()
	auditor.Started(d.parseID.String(), len(source))

	result := &Result{ID: d.parseID, arena: d.arena}
	for {
		seg, more, err := d.next()
		if err != nil {
			d.arena.Release()
			auditor.Finished(d.parseID.String(), len(result.Segments), err)
			return nil, err
		}
		if seg != nil {
			result.Segments = append(result.Segments, seg)
		}
		if !more || (opts.SingleDirective && seg != nil) {
			break
		}
	}
	result.EOF = len(result.Segments) == 0 || result.Segments[len(result.Segments)-1].EOF
	d.span.SetTag("segments", len(result.Segments))
	auditor.Finished(d.parseID.String(), len(result.Segments), nil)
	return result, nil
}

// ParseEach runs the streaming dispatcher: callback is invoked once per
// segment. Returning Abort stops the dispatch and releases the arena,
// unless the callback already called Segment.Retain.
func ParseEach(source []byte, opts config.Options, callback func(*Segment) Signal) error {
	d, err := newDispatcher(source, opts, "cypher.parse_each")
	if err != nil {
		return err
	}
	defer d.span.Finish()
	defer d.arena.Release()

	auditor := opts.AuditorOrNoop()
	auditor.Started(d.parseID.String(), len(source))

	count := 0
	for {
		seg, more, err := d.next()
		if err != nil {
			auditor.Finished(d.parseID.String(), count, err)
			return err
		}
		if seg != nil {
			count++
			if callback(seg) == Abort {
				break
			}
		}
		if !more || opts.SingleDirective {
			break
		}
	}
	d.span.SetTag("segments", count)
	auditor.Finished(d.parseID.String(), count, nil)
	return nil
}

// QuickParse shares the same segment loop as Parse and ParseEach but
// skips AST construction entirely, yielding only each segment's range and
// raw bytes. Segment boundaries are byte-for-byte identical to the full
// parser's (spec §8) because both walk the same delimiter rules.
func QuickParse(source []byte, opts config.Options, callback func(QuickSegment) Signal) error {
	span := opts.Tracer().StartSpan("cypher.quick_parse")
	defer span.Finish()

	buf := position.NewBuffer(source, opts.InitialPosition)
	lex := lexer.New(buf, perr.NewCollector(nil))

	tok, _ := scanToNextToken(lex, nil)
	count := 0
	for tok.Kind != token.EOF {
		segStart := tok.Range.Start
		var eof bool
		if tok.Kind == token.Colon && !opts.ParseOnlyStatements {
			_, _ = parser.ScanCommand(buf, dummyArena())
			eof = consumeLineDelimiter(buf)
		} else {
			p := parser.New(lex, dummyArena(), perr.NewCollector(nil), source, opts.ParseOnlyStatements)
			p.Seed(tok)
			p.ParseStatement()
			buf.Seek(p.EndPos())
			eof = consumeSemicolon(lex)
		}
		var next token.Token
		next, _ = scanToNextToken(lex, nil)
		segEnd := next.Range.Start
		if next.Kind == token.EOF {
			segEnd = buf.Position()
		}
		count++
		sig := callback(QuickSegment{
			Range: position.Range{Start: segStart, End: segEnd},
			Bytes: buf.Slice(segStart.Offset, segEnd.Offset),
			EOF:   eof,
		})
		if sig == Abort || opts.SingleDirective {
			return nil
		}
		tok = next
	}
	return nil
}

// dummyArena backs QuickParse's internal statement parse, which discards
// its AST immediately; a tiny unbounded arena is cheaper than threading a
// "build no nodes" mode through the whole grammar engine.
func dummyArena() *ast.Arena { return ast.NewArena(0, 0) }

// dispatcher holds the state shared across one Parse/ParseEach call: the
// buffer, lexer and arena every segment parses into, and the identifiers
// and span that correlate its segments in logs and traces.
type dispatcher struct {
	buf     *position.Buffer
	lex     *lexer.Lexer
	arena   *ast.Arena
	errors  *perr.Collector
	source  []byte
	opts    config.Options
	parseID uuid.UUID
	span    opentracing.Span
	nextTok token.Token
	haveTok bool
	ordinal int
	errDrained int
}

func newDispatcher(source []byte, opts config.Options, spanName string) (*dispatcher, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	buf := position.NewBuffer(source, opts.InitialPosition)
	log := opts.Logger()
	errors := perr.NewCollector(log)
	lex := lexer.New(buf, errors)
	arena := ast.NewArena(opts.InitialOrdinal, opts.MaxNodes)
	span := opts.Tracer().StartSpan(spanName)
	return &dispatcher{
		buf: buf, lex: lex, arena: arena, errors: errors,
		source: source, opts: opts, parseID: id, span: span,
	}, nil
}

// next produces the next Segment, or (nil, false, nil) once input is
// exhausted. The returned bool reports whether more segments may follow.
func (d *dispatcher) next() (*Segment, bool, error) {
	tok, comments := d.peekDirectiveStart()
	if tok.Kind == token.EOF {
		return nil, false, nil
	}

	segStart := tok.Range.Start
	var directive *ast.Node
	var eof bool

	if tok.Kind == token.Colon && !d.opts.ParseOnlyStatements {
		n, err := parser.ScanCommand(d.buf, d.arena)
		if err != nil {
			return nil, false, err
		}
		directive = n
		eof = consumeLineDelimiter(d.buf)
	} else {
		p := parser.New(d.lex, d.arena, d.errors, d.source, d.opts.ParseOnlyStatements)
		p.Seed(tok)
		directive = p.ParseStatement()
		d.buf.Seek(p.EndPos())
		eof = consumeSemicolon(d.lex)
	}
	d.arena.AssignOrdinals(directive)

	segEnd, trailing := d.scanTrailing()

	rng := position.Range{Start: segStart, End: segEnd}
	segID, err := uuid.NewV5(d.parseID, fmt.Sprintf("segment-%d", d.ordinal))
	if err != nil {
		return nil, false, err
	}
	d.ordinal++

	segErrors := d.drainErrors()
	segSpan := d.opts.Tracer().StartSpan("cypher.segment", opentracing.ChildOf(d.span.Context()))
	segSpan.SetTag("range", rng.String())
	segSpan.SetTag("errors", len(segErrors))
	segSpan.Finish()
	d.opts.Logger().WithFields(logrus.Fields{
		"segment": segID.String(),
		"range":   rng.String(),
	}).Debug("parsed segment")
	d.opts.AuditorOrNoop().Segment(d.parseID.String(), segID.String(), rng.String(), len(segErrors))

	seg := &Segment{
		ID:        segID,
		Range:     rng,
		Directive: directive,
		Errors:    segErrors,
		EOF:       eof,
		Comments:  append(comments, trailing...),
		arena:     d.arena,
	}
	return seg, d.nextTok.Kind != token.EOF, nil
}

// peekDirectiveStart returns the first significant token of the next
// directive, capturing any leading comments (only meaningful for the very
// first segment; every later call already has its token buffered by the
// previous segment's trailing scan, spec §4.5's "belongs to the preceding
// segment" rule).
func (d *dispatcher) peekDirectiveStart() (token.Token, []*ast.Node) {
	if d.haveTok {
		d.haveTok = false
		return d.nextTok, nil
	}
	return scanToNextToken(d.lex, d.arena)
}

// scanTrailing consumes whitespace and comments after a directive's
// delimiter up to the next directive's first token (or EOF), folding them
// into the segment that just closed and stashing that token for the next
// call to next().
func (d *dispatcher) scanTrailing() (position.Input, []*ast.Node) {
	tok, comments := scanToNextToken(d.lex, d.arena)
	d.nextTok = tok
	d.haveTok = true
	if tok.Kind == token.EOF {
		return d.buf.Position(), comments
	}
	return tok.Range.Start, comments
}

// drainErrors pulls every error the collector has accumulated since the
// last segment and attributes them to this one (the collector is shared
// across the whole parse, but spec §6.2 wants per-segment error lists).
func (d *dispatcher) drainErrors() []*perr.Error {
	all := d.errors.Errors()
	start := d.errDrained
	d.errDrained = len(all)
	return all[start:]
}

// scanToNextToken skips whitespace and comments starting at the lexer's
// current position, building comment nodes in arena as it goes (nil arena
// means "don't bother", used by QuickParse which has no AST to attach
// them to), and returns the first non-trivia token without consuming
// anything beyond it.
func scanToNextToken(lex *lexer.Lexer, arena *ast.Arena) (token.Token, []*ast.Node) {
	var comments []*ast.Node
	for {
		t := lex.NextTrivia()
		switch t.Kind {
		case token.Whitespace:
			continue
		case token.LineComment:
			if arena != nil {
				if n, err := arena.NewLineComment(t.Range, t.Text); err == nil {
					comments = append(comments, n)
				}
			}
			continue
		case token.BlockComment:
			if arena != nil {
				if n, err := arena.NewBlockComment(t.Range, t.Text, t.Unterminated); err == nil {
					comments = append(comments, n)
				}
			}
			continue
		default:
			return t, comments
		}
	}
}

// consumeSemicolon scans forward from lex's current position looking for
// the ';' that closes a statement, tolerating (and skipping) any stray
// tokens the grammar's own synchronization left behind. It reports
// whether the statement instead ran to EOF with no explicit delimiter.
func consumeSemicolon(lex *lexer.Lexer) bool {
	for {
		t := lex.NextTrivia()
		switch t.Kind {
		case token.Whitespace, token.LineComment, token.BlockComment:
			continue
		case token.SemiColon:
			return false
		case token.EOF:
			return true
		default:
			// Leftover token the grammar's synchronize() didn't
			// consume; keep scanning for the real delimiter rather
			// than treating it as the start of a new segment.
			continue
		}
	}
}

// consumeLineDelimiter consumes the single newline terminating a client
// command directly from buf (commands are scanned as raw bytes, never
// through the lexer), reporting whether the command instead ran to EOF.
func consumeLineDelimiter(buf *position.Buffer) bool {
	c := buf.Peek(0)
	if c == position.EOF {
		return true
	}
	if c == '\n' || c == '\r' {
		buf.Consume(1)
	}
	return false
}
