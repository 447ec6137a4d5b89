// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package metrics

import (
	"sync"

	"github.com/cockroachdb/streamhist"
)

// Recorder wraps a histogram with a mutex so that it can be observed from
// multiple goroutines and scraped while being updated.
type Recorder struct {
	name string
	mu   struct {
		sync.Mutex
		current *streamhist.Histogram
	}
}

// NewRecorder returns a Recorder around an empty histogram with the given
// options.
func NewRecorder(name string, opts *streamhist.Options) (*Recorder, error) {
	h, err := streamhist.NewWithOptions(opts)
	if err != nil {
		return nil, err
	}
	r := &Recorder{name: name}
	r.mu.current = h
	return r, nil
}

// Name returns the name given to the recorder.
func (r *Recorder) Name() string {
	return r.name
}

// Record adds one observation.
func (r *Recorder) Record(v float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mu.current.Add(v)
}

// Merge folds a histogram built elsewhere into the recorder.
func (r *Recorder) Merge(h *streamhist.Histogram) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mu.current.MergeFrom(h)
}

// Snapshot returns a copy of the current histogram that the caller owns.
func (r *Recorder) Snapshot() *streamhist.Histogram {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mu.current.Clone()
}

// Collector returns a Collector exporting snapshots of the recorder.
func (r *Recorder) Collector(opts CollectorOpts) *Collector {
	if opts.Name == "" {
		opts.Name = r.name
	}
	return NewCollector(opts, r.Snapshot)
}
