// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package streamhist implements a bounded, mergeable streaming histogram that
// estimates how many observations fall at or below a threshold.
package streamhist

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Histogram is a mergeable streaming histogram that retains at most a fixed
// number of (position, weight) buckets. Observations are added one at a time;
// whenever the number of buckets exceeds the capacity, the two closest
// adjacent buckets are replaced by their weighted average.
//
// Histogram is not safe for concurrent use. Histograms built independently
// (for example one per shard) can be combined with MergeFrom.
type Histogram struct {
	opts     *Options
	capacity int
	buckets  buckets
	// total is the sum of all bucket weights. Weights are sums of unit
	// observations, so this is exact below 2^53.
	total float64
}

// New returns an empty histogram retaining at most capacity buckets. It
// returns an error marked with ErrInvalidCapacity if capacity < 1.
func New(capacity int) (*Histogram, error) {
	return NewWithOptions(&Options{Capacity: capacity})
}

// NewWithOptions returns an empty histogram configured by opts.
func NewWithOptions(opts *Options) (*Histogram, error) {
	opts = opts.EnsureDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Histogram{
		opts:     opts,
		capacity: opts.Capacity,
		buckets:  makeBuckets(),
	}, nil
}

// Capacity returns the maximum number of buckets retained.
func (h *Histogram) Capacity() int {
	return h.capacity
}

// Len returns the number of buckets currently retained.
func (h *Histogram) Len() int {
	return h.buckets.len()
}

// TotalWeight returns the total number of observations represented by the
// histogram.
func (h *Histogram) TotalWeight() float64 {
	return h.total
}

// Mean returns the weighted average of the bucket positions, which equals the
// mean of the observations up to rounding. Returns 0 for an empty histogram.
func (h *Histogram) Mean() float64 {
	if h.total == 0 {
		return 0
	}
	var mean float64
	for c, w := range h.buckets.all() {
		mean += c.Float64() * (w / h.total)
	}
	return mean
}

// All returns an iterator over the retained buckets, in ascending position
// order. The histogram must not be mutated during iteration.
func (h *Histogram) All() iter.Seq2[Centroid, float64] {
	return h.buckets.all()
}

// Add records one observation at value. It returns an error marked with
// ErrNaN or ErrInfinite, leaving the histogram unchanged, if value is not a
// finite number.
//
// An observation equal to an existing bucket position increments that bucket
// instead of creating a new one.
func (h *Histogram) Add(value float64) error {
	c, err := MakeCentroid(value)
	if err != nil {
		return errors.Wrap(err, "add")
	}
	h.buckets.add(c, 1)
	h.total++
	h.compress()
	return nil
}

// MergeFrom adds all the buckets of other to h, then compresses h down to its
// own capacity. The capacity of other is irrelevant. The total weight of h
// after the call is the sum of both total weights.
//
// MergeFrom requires exclusive access to h. other is only read; merging a
// histogram into itself doubles every weight.
func (h *Histogram) MergeFrom(other *Histogram) {
	if other == nil {
		return
	}
	src := other.buckets
	if other == h {
		src = h.buckets.clone()
	}
	for c, w := range src.all() {
		h.buckets.add(c, w)
	}
	h.total += other.total
	h.compress()
}

// Clone returns an independent copy of h, sharing only the options.
func (h *Histogram) Clone() *Histogram {
	return &Histogram{
		opts:     h.opts,
		capacity: h.capacity,
		buckets:  h.buckets.clone(),
		total:    h.total,
	}
}

// Reset removes all buckets, keeping the capacity and options.
func (h *Histogram) Reset() {
	h.buckets = makeBuckets()
	h.total = 0
}

func (h *Histogram) String() string {
	return redact.StringWithoutMarkers(h)
}

// SafeFormat implements redact.SafeFormatter.
func (h *Histogram) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("capacity=%d weight=%v [", redact.Safe(h.capacity), redact.Safe(h.total))
	i := 0
	for c, weight := range h.buckets.all() {
		if i > 0 {
			w.SafeString(" ")
		}
		w.Printf("%v:%v", c, redact.Safe(weight))
		i++
	}
	w.SafeString("]")
}
