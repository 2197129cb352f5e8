package core

import (
	"log"
	"os"
)

// DefaultLogger adapts the standard library's log.Logger to the Logger
// capability.
type DefaultLogger struct {
	*log.Logger
}

// NewDefaultLogger returns a Logger that writes timestamped lines to
// stderr.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{Logger: log.New(os.Stderr, "", log.LstdFlags)}
}

// NopLogger discards everything; useful in tests that don't want render
// diagnostics cluttering output.
type NopLogger struct{}

// Printf implements Logger by discarding the message.
func (NopLogger) Printf(format string, args ...interface{}) {}
