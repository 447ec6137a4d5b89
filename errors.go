// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package streamhist

import "github.com/cockroachdb/errors"

// ErrNaN is returned when a NaN observation or threshold is passed in.
var ErrNaN = errors.New("streamhist: NaN value")

// ErrInfinite is returned when an infinite observation is passed to Add.
// Infinite thresholds are accepted by Sum.
var ErrInfinite = errors.New("streamhist: infinite value")

// ErrInvalidCapacity is returned when a histogram is constructed with a
// capacity smaller than one. A histogram with no room for buckets cannot
// retain any observation.
var ErrInvalidCapacity = errors.New("streamhist: capacity must be at least 1")

// ErrDegenerateSegment is returned by Sum when the interpolation segment that
// contains the threshold has zero width or the interpolation produced a NaN.
// This can only happen for positions near the limits of the float64 range.
var ErrDegenerateSegment = errors.New("streamhist: degenerate interpolation segment")
