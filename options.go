// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package streamhist

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Options holds the parameters for constructing a Histogram.
type Options struct {
	// Capacity is the maximum number of buckets the histogram retains. It must
	// be at least 1.
	Capacity int

	// Logger used to write log messages and, when tracing is enabled, the
	// per-segment diagnostics of Sum.
	//
	// The default logger uses the Go standard library log package and does no
	// tracing.
	Logger LoggerAndTracer
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.Logger == nil {
		o.Logger = &LoggerWithNoopTracer{Logger: DefaultLogger{}}
	}
	return o
}

// Validate verifies that the options are usable.
func (o *Options) Validate() error {
	if o.Capacity < 1 {
		return errors.Wrapf(ErrInvalidCapacity, "capacity %d", redact.Safe(o.Capacity))
	}
	return nil
}
