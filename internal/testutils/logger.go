// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package testutils

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// Logger is a logger that writes to a testing.TB.
type Logger struct {
	T testing.TB
}

func (l Logger) Infof(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

func (l Logger) Fatalf(format string, args ...interface{}) {
	l.T.Helper()
	l.T.Fatalf(format, args...)
}

// EventRecorder is a logger and tracer that retains every trace event so
// tests can assert on them. Log messages go to the wrapped Logger.
type EventRecorder struct {
	Logger

	mu     sync.Mutex
	events []string
}

// IsTracingEnabled always returns true.
func (r *EventRecorder) IsTracingEnabled() bool {
	return true
}

// Eventf records a trace event.
func (r *EventRecorder) Eventf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

// Events returns the recorded events, one per line, and clears them.
func (r *EventRecorder) Events() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var buf strings.Builder
	for _, e := range r.events {
		buf.WriteString(e)
		buf.WriteByte('\n')
	}
	r.events = r.events[:0]
	return buf.String()
}
