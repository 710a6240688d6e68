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

// Package cypher is the segment dispatcher (spec §4.5): the entry points
// that turn a byte source into statements, client commands and errors,
// either all at once (Parse), one directive at a time (ParseEach), or as
// bare segment boundaries with no AST at all (QuickParse).
package cypher

import (
	"github.com/gofrs/uuid"

	"github.com/cypher-lang/cypherparser/ast"
	"github.com/cypher-lang/cypherparser/perr"
	"github.com/cypher-lang/cypherparser/position"
)

// Segment is one directive (a statement or a client command) plus the
// delimiter and trivia that closed it. Its Range always abuts the
// previous segment's Range with no gap (spec §8's tiling invariant).
type Segment struct {
	ID        uuid.UUID
	Range     position.Range
	Directive *ast.Node // the statement or command root; nil only on a pure-error segment
	Errors    []*perr.Error
	EOF       bool // true if this segment ended at EOF with no explicit delimiter
	Comments  []*ast.Node

	arena *ast.Arena
}

// Retain extends the life of this segment's AST past the ParseEach
// callback that received it, by bumping the shared arena's refcount.
func (s *Segment) Retain() {
	if s.arena != nil {
		s.arena.Retain()
	}
}

// Release drops one reference to this segment's arena; call it once per
// Retain. A segment holds no reference of its own: releasing one that was
// never retained drops the reference of the owning Result (or ParseEach
// call), freeing the arena once no reference is left.
func (s *Segment) Release() {
	if s.arena != nil {
		s.arena.Release()
	}
}

// Roots returns the segment's AST roots: just the directive, if any.
func (s *Segment) Roots() []*ast.Node {
	if s.Directive == nil {
		return nil
	}
	return []*ast.Node{s.Directive}
}

// Result is the batched outcome of Parse: every segment produced from one
// call, plus aggregate views spec §6.2 asks for (all roots, all
// directives, all errors) without making callers walk Segments by hand.
type Result struct {
	ID       uuid.UUID
	Segments []*Segment
	EOF      bool

	arena *ast.Arena
}

// Release frees the result's arena. After this call every Node handle
// reachable from Result or its Segments is invalid.
func (r *Result) Release() {
	if r.arena != nil {
		r.arena.Release()
	}
}

// Roots returns every segment's directive root, in source order.
func (r *Result) Roots() []*ast.Node {
	var out []*ast.Node
	for _, s := range r.Segments {
		if s.Directive != nil {
			out = append(out, s.Directive)
		}
	}
	return out
}

// Directives is an alias for Roots: every parsed statement or command, in
// source order. Kept distinct from Roots in the exported surface because
// spec §6.2 names them as separate operations even though this dispatcher
// has exactly one root per segment.
func (r *Result) Directives() []*ast.Node { return r.Roots() }

// Errors returns every error recorded across every segment, in source
// order (segments themselves are already in source order, and each
// segment's own Errors slice is source-ordered).
func (r *Result) Errors() []*perr.Error {
	var out []*perr.Error
	for _, s := range r.Segments {
		out = append(out, s.Errors...)
	}
	return out
}

// NodeCount reports how many AST nodes the result's arena holds, mostly
// useful for tests asserting against config.Options.MaxNodes.
func (r *Result) NodeCount() int {
	if r.arena == nil {
		return 0
	}
	return r.arena.NodeCount()
}

// QuickSegment is the boundary-only view QuickParse yields: no AST, just
// where a directive's segment begins and ends and the raw bytes it spans.
type QuickSegment struct {
	Range position.Range
	Bytes []byte
	EOF   bool
}

// Signal is returned by a streaming callback to tell the dispatcher
// whether to continue to the next segment or stop immediately.
type Signal int

const (
	// Continue tells the dispatcher to proceed to the next segment.
	Continue Signal = iota
	// Abort tells the dispatcher to stop and return, releasing any
	// in-flight segment the callback did not retain.
	Abort
)
