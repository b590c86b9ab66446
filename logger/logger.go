// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package logger provides the leveled, handler-driven logging used by
// the library's construction-heavy code path (block tree construction
// and compaction) to surface what would otherwise be silent internal
// decisions. It keeps the shape of a small dedicated logging
// type with named level methods and pluggable hooks, backed by
// logrus rather than the bare standard library logger, so structured
// fields travel with every line instead of being baked into strings.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Logger with the level-named methods this
// codebase's call sites expect (Debugf, Infof, Warnf, ...), and the
// ability to register additional hooks that see every record.
type Logger struct {
	entry *logrus.Logger
}

// New returns a Logger writing text-formatted lines to stderr at Info
// level and above. Set SUCCINCT_NEO_LOG_LEVEL to "debug" to also see
// construction-time diagnostics (block tree level counts and sizes, and
// how many levels compaction discards).
func New() *Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = logrus.InfoLevel
	if os.Getenv("SUCCINCT_NEO_LOG_LEVEL") == "debug" {
		l.Level = logrus.DebugLevel
	}
	return &Logger{entry: l}
}

// Default is the package-wide logger used by components that do not
// carry their own, mirroring a single shared default instance rather
// than threading a logger through every constructor.
var Default = New()

// AddHook registers a logrus.Hook that observes every record logged
// through l that passes the base logger's level filter.
func (l *Logger) AddHook(h logrus.Hook) { l.entry.AddHook(h) }

// WithField returns an entry carrying one structured key/value pair,
// for call sites that want to tag a line (e.g. with a block tree level
// or a vector's bit width) without building the value into the message.
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.entry.WithField(key, value)
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Fatalf logs at fatal level and exits the process with status 1, the
// same irrecoverable-condition contract as the standard library's
// log.Fatalf.
func (l *Logger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }
