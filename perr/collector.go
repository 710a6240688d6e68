package perr

import "github.com/sirupsen/logrus"

// Collector accumulates Errors across a parse, in source order, and mirrors
// each one to an injected logger at Debug level (fields: error_kind,
// position) the way the teacher's auth package logs through an injected
// logrus.FieldLogger rather than the global logger.
type Collector struct {
	errors []*Error
	log    logrus.FieldLogger
}

// NewCollector creates a Collector that logs through log. A nil log is
// replaced with a discard logger so library callers never pay for logging
// they did not ask for.
func NewCollector(log logrus.FieldLogger) *Collector {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(nopWriter{})
		log = discard
	}
	return &Collector{log: log}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

// Add records err in source order and logs it.
func (c *Collector) Add(err *Error) {
	c.errors = append(c.errors, err)
	c.log.WithFields(logrus.Fields{
		"error_kind": err.Kind.Class.String(),
		"position":   err.Position.String(),
	}).Debug(err.Message)
}

// Errors returns all recorded errors in source order. The returned slice
// must not be mutated by callers.
func (c *Collector) Errors() []*Error {
	return c.errors
}

// Len reports how many errors have been recorded so far.
func (c *Collector) Len() int {
	return len(c.errors)
}
