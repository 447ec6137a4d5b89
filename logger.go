// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package streamhist

import (
	"fmt"
	"log"
	"os"
)

// Logger defines an interface for writing log messages.
type Logger interface {
	Infof(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger struct{}

var _ Logger = DefaultLogger{}

// Infof implements the Logger.Infof interface.
func (DefaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// Fatalf implements the Logger.Fatalf interface.
func (DefaultLogger) Fatalf(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
	os.Exit(1)
}

// LoggerAndTracer defines an interface for logging and tracing. Tracing is
// used for the per-segment diagnostics of Sum, which are too verbose to emit
// unconditionally.
type LoggerAndTracer interface {
	Logger
	// Eventf formats and emits a tracing event.
	Eventf(format string, args ...interface{})
	// IsTracingEnabled returns true if tracing is enabled. It can be used as an
	// optimization to avoid calling Eventf (which will be a noop when tracing is
	// not enabled) to avoid the overhead of boxing the args.
	IsTracingEnabled() bool
}

// LoggerWithNoopTracer wraps a logger and does no tracing.
type LoggerWithNoopTracer struct {
	Logger
}

var _ LoggerAndTracer = &LoggerWithNoopTracer{}

// Eventf implements LoggerAndTracer.
func (*LoggerWithNoopTracer) Eventf(format string, args ...interface{}) {}

// IsTracingEnabled implements LoggerAndTracer.
func (*LoggerWithNoopTracer) IsTracingEnabled() bool {
	return false
}

// LoggerWithTracer wraps a logger and emits trace events through its Infof.
type LoggerWithTracer struct {
	Logger
}

var _ LoggerAndTracer = &LoggerWithTracer{}

// Eventf implements LoggerAndTracer.
func (l *LoggerWithTracer) Eventf(format string, args ...interface{}) {
	l.Infof(format, args...)
}

// IsTracingEnabled implements LoggerAndTracer.
func (*LoggerWithTracer) IsTracingEnabled() bool {
	return true
}
