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

// Package position tracks (line, column, byte-offset) triples over a byte
// source and exposes the arbitrary-lookahead, checkpoint/restore buffer the
// lexer and grammar engine build on.
package position

import "fmt"

// Input is a single point in the source text: a 1-based line, a 1-based
// column, and a 0-based byte offset. The zero value is not a valid Input;
// use Default or a Config's configured origin.
type Input struct {
	Line   int
	Column int
	Offset int
}

// Default is the origin used when a caller does not configure one.
var Default = Input{Line: 1, Column: 1, Offset: 0}

func (p Input) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less reports whether p occurs strictly before o in the input.
func (p Input) Less(o Input) bool {
	return p.Offset < o.Offset
}

// Range is a start-inclusive, end-exclusive span of input. The zero Range
// is empty at the zero Input.
type Range struct {
	Start Input
	End   Input
}

// Contains reports whether o lies entirely within r (r.Start <= o.Start and
// o.End <= r.End, by byte offset).
func (r Range) Contains(o Range) bool {
	return r.Start.Offset <= o.Start.Offset && o.End.Offset <= r.End.Offset
}

// Empty reports whether the range spans zero bytes.
func (r Range) Empty() bool {
	return r.Start.Offset == r.End.Offset
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start.Offset, r.End.Offset)
}

// Union returns the smallest range covering both r and o.
func Union(r, o Range) Range {
	start, end := r.Start, r.End
	if o.Start.Offset < start.Offset {
		start = o.Start
	}
	if o.End.Offset > end.Offset {
		end = o.End
	}
	return Range{Start: start, End: end}
}
