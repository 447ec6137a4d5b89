// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package streamhist

import (
	"bytes"
	"log"
	"testing"

	"github.com/cockroachdb/streamhist/internal/testutils"
	"github.com/stretchr/testify/require"
)

var (
	_ Logger          = testutils.Logger{}
	_ LoggerAndTracer = &testutils.EventRecorder{}
)

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	defer log.SetFlags(log.Flags())
	prev := log.Writer()
	defer log.SetOutput(prev)
	log.SetOutput(&buf)
	log.SetFlags(0)

	DefaultLogger{}.Infof("merged %d shards", 3)
	require.Equal(t, "merged 3 shards\n", buf.String())
}

func TestLoggerTracing(t *testing.T) {
	opts := (&Options{}).EnsureDefaults()
	require.False(t, opts.Logger.IsTracingEnabled())

	var buf bytes.Buffer
	prev := log.Writer()
	defer log.SetOutput(prev)
	log.SetOutput(&buf)
	tracer := &LoggerWithTracer{Logger: DefaultLogger{}}
	require.True(t, tracer.IsTracingEnabled())
	tracer.Eventf("segment %d", 1)
	require.Contains(t, buf.String(), "segment 1")
}
