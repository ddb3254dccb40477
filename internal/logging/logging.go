// Package logging wraps log4go behind the leveled Debug/Info/Warn/Error
// shape the rest of this module calls through, so call sites never touch
// the underlying logger directly.
package logging

import (
	log4go "github.com/limetext/log4go"
)

// Logger is a named leveled logger. The zero value is not usable; use New.
type Logger struct {
	name string
}

// New returns a Logger that prefixes every message with name (typically a
// package or component name, e.g. "lsp", "highlight").
func New(name string) *Logger {
	return &Logger{name: name}
}

func (l *Logger) format(format string) string {
	return "[" + l.name + "] " + format
}

func (l *Logger) Debug(format string, args ...any) {
	log4go.Debug(l.format(format), args...)
}

func (l *Logger) Info(format string, args ...any) {
	log4go.Info(l.format(format), args...)
}

func (l *Logger) Warn(format string, args ...any) {
	log4go.Warn(l.format(format), args...)
}

func (l *Logger) Error(format string, args ...any) {
	log4go.Error(l.format(format), args...)
}
