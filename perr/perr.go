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

// Package perr declares the closed set of error kinds raised by the lexer,
// grammar engine and AST builder (spec §7), in the same style the teacher
// uses gopkg.in/src-d/go-errors.v1 throughout sql/expression and sql/plan:
// a package-level *errors.Kind per distinct failure, constructed with
// Kind.New(args...) at the call site.
package perr

import errors "gopkg.in/src-d/go-errors.v1"

// Class identifies which of the four error classes from spec §7 a Kind
// belongs to. Lex and Parse errors are recovered locally and recorded;
// Argument errors abort the current AST construction; Resource errors
// abort the whole parse.
type Class int

const (
	ClassLex Class = iota
	ClassParse
	ClassArgument
	ClassResource
)

func (c Class) String() string {
	switch c {
	case ClassLex:
		return "lex"
	case ClassParse:
		return "parse"
	case ClassArgument:
		return "argument"
	case ClassResource:
		return "resource"
	default:
		return "unknown"
	}
}

// Kind pairs a go-errors.v1 Kind with the error Class it belongs to, so
// callers can both pattern-match on the specific failure (via the embedded
// *errors.Kind) and branch on recovery policy (via Class).
type Kind struct {
	*errors.Kind
	Class Class
}

func newKind(class Class, message string) *Kind {
	return &Kind{Kind: errors.NewKind(message), Class: class}
}

// Lex errors: recognized, recovered, recorded, parsing continues.
var (
	ErrUnterminatedString  = newKind(ClassLex, "unterminated string literal starting at %s")
	ErrUnterminatedComment = newKind(ClassLex, "unterminated block comment starting at %s")
	ErrInvalidEscape       = newKind(ClassLex, "invalid escape sequence %q")
	ErrStrayCharacter      = newKind(ClassLex, "unexpected character %q")
	ErrInvalidNumber       = newKind(ClassLex, "invalid numeric literal %q")
)

// Parse errors: grammar mismatches, recovered via synchronization.
var (
	ErrExpectedToken    = newKind(ClassParse, "expected %s but found %s")
	ErrUnexpectedToken  = newKind(ClassParse, "unexpected token %s")
	ErrUnexpectedEOF    = newKind(ClassParse, "unexpected end of input, expected %s")
	ErrInvalidPattern   = newKind(ClassParse, "invalid pattern: %s")
	ErrAmbiguousSetItem = newKind(ClassParse, "ambiguous SET item: %s")
)

// Argument errors: the AST builder rejects a malformed role. These abort
// only the failing construction; the grammar engine converts them to a
// recorded parse error plus an error-node placeholder (§4.3.2 step 3).
var (
	ErrInvalidArgument  = newKind(ClassArgument, "invalid argument for %s: expected node satisfying category %s")
	ErrInvalidRoleCount = newKind(ClassArgument, "invalid argument count for %s: expected %d, got %d")
)

// Resource errors: allocation failure. Abort the current parse entirely.
var (
	ErrArenaExhausted = newKind(ClassResource, "arena exhausted after %d nodes")
)
