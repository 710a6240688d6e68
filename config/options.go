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

// Package config declares the closed configuration surface (spec §4.7)
// controlling one parse: the initial position and ordinal, error
// colorization, and the two behavior flags. Options are loaded either
// programmatically or from a YAML document, the way the teacher's
// sql.Session settings are built up from defaults and overridden by
// whatever the caller supplies.
package config

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/cypher-lang/cypherparser/position"
)

// ColorScheme renders the five token classes and three error classes named
// in spec §6.4 as before/after byte pairs. Nil means no colorization. This
// is purely an interface seam; no implementation ships in this module (the
// ANSI palette and the pretty-printer it feeds stay out of scope, spec §1).
type ColorScheme interface {
	Wrap(class string, text string) string
}

// Options is the configuration record passed to every parse entry point.
// The zero value is not ready for use; call Defaults to obtain one.
type Options struct {
	// InitialPosition is the base (line, column, byte-offset) triple
	// against which every reported position in this parse is computed.
	InitialPosition position.Input

	// InitialOrdinal is the ordinal assigned to the first AST node built
	// during this parse.
	InitialOrdinal int

	// ColorScheme colorizes rendered error context, or nil for plain text.
	ColorScheme ColorScheme

	// ParseOnlyStatements disables client-command recognition (spec
	// §4.3.1); every segment is parsed as a Cypher statement.
	ParseOnlyStatements bool

	// SingleDirective stops the segment dispatcher after the first
	// directive, ignoring the remainder of the input.
	SingleDirective bool

	// MaxNodes bounds the arena, simulating allocator exhaustion when
	// positive (perr.ErrArenaExhausted); 0 means unbounded.
	MaxNodes int

	// Logger receives Debug-level structured entries at segment
	// boundaries and recovered errors. A nil Logger is replaced with a
	// discard logger so library callers never pay for logging they did
	// not request.
	Logger logrus.FieldLogger

	// Tracer starts one span per Parse/ParseEach/QuickParse invocation
	// and, for Parse and ParseEach, one child span per segment; QuickParse
	// starts no per-segment spans. A nil Tracer uses
	// opentracing.NoopTracer.
	Tracer opentracing.Tracer

	// Auditor receives Started/Segment/Finished lifecycle notifications. A
	// nil Auditor is replaced with a no-op.
	Auditor Auditor
}

// Defaults returns the spec's documented default Options: origin position
// 1/1/0, ordinal 0, no colorization, both flags clear, unbounded arena.
func Defaults() Options {
	return Options{
		InitialPosition: position.Default,
		InitialOrdinal:  0,
	}
}

// logger returns o.Logger, or a discard logger when unset.
func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

// tracer returns o.Tracer, or opentracing.NoopTracer when unset.
func (o Options) tracer() opentracing.Tracer {
	if o.Tracer != nil {
		return o.Tracer
	}
	return opentracing.NoopTracer{}
}

// Logger exposes the resolved, never-nil logger for this configuration.
func (o Options) Logger() logrus.FieldLogger { return o.logger() }

// Tracer exposes the resolved, never-nil tracer for this configuration.
func (o Options) Tracer() opentracing.Tracer { return o.tracer() }

// resolvedAuditor returns o.Auditor, or a no-op when unset.
func (o Options) resolvedAuditor() Auditor {
	if o.Auditor != nil {
		return o.Auditor
	}
	return noopAuditor{}
}

// AuditorOrNoop exposes the resolved, never-nil auditor for this
// configuration.
func (o Options) AuditorOrNoop() Auditor { return o.resolvedAuditor() }

// yamlOptions mirrors the subset of Options that round-trips through YAML;
// ColorScheme, Logger, and Tracer are runtime-only and never serialized.
type yamlOptions struct {
	InitialLine    interface{} `yaml:"initial_line"`
	InitialColumn  interface{} `yaml:"initial_column"`
	InitialOffset  interface{} `yaml:"initial_offset"`
	InitialOrdinal interface{} `yaml:"initial_ordinal"`
	ParseOnlyStatements bool   `yaml:"parse_only_statements"`
	SingleDirective     bool   `yaml:"single_directive"`
	MaxNodes       interface{} `yaml:"max_nodes"`
}

// Load parses a YAML document into Options, starting from Defaults and
// overriding whatever the document sets. Numeric fields are coerced with
// cast so that a document written by hand (e.g. "initial_ordinal: \"10\"")
// still loads, matching the teacher's use of cast to coerce session
// variables supplied as loosely-typed strings.
func Load(r io.Reader) (Options, error) {
	var y yamlOptions
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&y); err != nil && err != io.EOF {
		return Options{}, err
	}

	opts := Defaults()
	if y.InitialLine != nil {
		opts.InitialPosition.Line = cast.ToInt(y.InitialLine)
	}
	if y.InitialColumn != nil {
		opts.InitialPosition.Column = cast.ToInt(y.InitialColumn)
	}
	if y.InitialOffset != nil {
		opts.InitialPosition.Offset = cast.ToInt(y.InitialOffset)
	}
	if y.InitialOrdinal != nil {
		opts.InitialOrdinal = cast.ToInt(y.InitialOrdinal)
	}
	if y.MaxNodes != nil {
		opts.MaxNodes = cast.ToInt(y.MaxNodes)
	}
	opts.ParseOnlyStatements = y.ParseOnlyStatements
	opts.SingleDirective = y.SingleDirective
	return opts, nil
}
