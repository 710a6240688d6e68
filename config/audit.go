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

package config

import "github.com/sirupsen/logrus"

// Auditor receives lifecycle notifications for one Parse/ParseEach/
// QuickParse call, independent of the Debug-level segment logging the
// dispatcher already does. A caller that wants every parse mirrored into
// an external audit trail (a SIEM, a usage ledger) implements this instead
// of scraping log lines; identifiers are passed as strings so this package
// never needs to import the AST/result types that carry them.
type Auditor interface {
	// Started fires once, before the first segment is produced.
	Started(parseID string, sourceLen int)
	// Segment fires once per segment, after it is fully built.
	Segment(parseID, segmentID, rangeText string, errorCount int)
	// Finished fires once, after the last segment (or on a fatal error).
	Finished(parseID string, segmentCount int, err error)
}

// noopAuditor is the default; every dispatcher call site goes through it
// rather than nil-checking a caller-supplied Auditor at every event.
type noopAuditor struct{}

func (noopAuditor) Started(string, int)                  {}
func (noopAuditor) Segment(string, string, string, int)  {}
func (noopAuditor) Finished(string, int, error)          {}

// LoggingAuditor adapts Auditor onto a logrus.FieldLogger, for callers who
// want an audit trail but don't already have one: every event becomes one
// structured Info-level entry (Warn for a parse that finished with an
// error), a level above the dispatcher's own Debug segment logging, since
// an audit trail is meant to be read rather than switched off by default.
type LoggingAuditor struct {
	Log logrus.FieldLogger
}

func (a LoggingAuditor) Started(parseID string, sourceLen int) {
	a.Log.WithFields(logrus.Fields{"parse": parseID, "bytes": sourceLen}).Info("parse started")
}

func (a LoggingAuditor) Segment(parseID, segmentID, rangeText string, errorCount int) {
	a.Log.WithFields(logrus.Fields{
		"parse":   parseID,
		"segment": segmentID,
		"range":   rangeText,
		"errors":  errorCount,
	}).Info("segment parsed")
}

func (a LoggingAuditor) Finished(parseID string, segmentCount int, err error) {
	fields := logrus.Fields{"parse": parseID, "segments": segmentCount}
	if err != nil {
		a.Log.WithFields(fields).WithError(err).Warn("parse finished with error")
		return
	}
	a.Log.WithFields(fields).Info("parse finished")
}
