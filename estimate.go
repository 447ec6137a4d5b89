// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package streamhist

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// node is a point of the piecewise-linear density used by Sum: either a
// bucket or one of the two zero-weight sentinels.
type node struct {
	pos    float64
	weight float64
}

// The sentinels stand in for -Inf and +Inf. Using the largest finite values
// keeps the width of the outermost segments finite.
var (
	leftSentinel  = node{pos: -math.MaxFloat64}
	rightSentinel = node{pos: math.MaxFloat64}
)

// Sum estimates the number of observations less than or equal to threshold.
//
// Bucket weights are treated as samples of a density that is linear between
// consecutive bucket positions and falls to zero at the two ends of the
// float64 range. Each bucket is assumed to have half of its weight on either
// side of its position. Consequently the estimate is not the exact discrete
// count even when no compression has happened.
//
// Sum returns an error marked with ErrNaN if threshold is NaN. Infinite
// thresholds are allowed: Sum(-Inf) is 0 and Sum(+Inf) is TotalWeight.
func (h *Histogram) Sum(threshold float64) (float64, error) {
	if math.IsNaN(threshold) {
		return 0, errors.Wrap(errors.WithStack(ErrNaN), "sum")
	}
	tracing := h.opts.Logger.IsTracingEnabled()
	if tracing {
		h.opts.Logger.Eventf("sum: threshold=%v", threshold)
	}

	var total float64
	left := leftSentinel
	for c, w := range h.buckets.all() {
		right := node{pos: c.Float64(), weight: w}
		done, err := h.sumSegment(&total, threshold, left, right, tracing)
		if err != nil {
			return 0, err
		} else if done {
			return total, nil
		}
		left = right
	}
	if _, err := h.sumSegment(&total, threshold, left, rightSentinel, tracing); err != nil {
		return 0, err
	}
	return total, nil
}

// sumSegment accounts for the segment [left, right) and reports whether the
// threshold falls inside it, in which case the walk stops.
func (h *Histogram) sumSegment(
	total *float64, threshold float64, left, right node, tracing bool,
) (done bool, _ error) {
	if tracing {
		h.opts.Logger.Eventf("segment: %v@%v -> %v@%v", left.weight, left.pos, right.weight, right.pos)
	}
	if threshold >= right.pos {
		*total += left.weight
		if tracing {
			h.opts.Logger.Eventf("add centroid: %v@%v -> %v", left.weight, left.pos, *total)
		}
		return false, nil
	}
	if threshold < left.pos {
		return false, nil
	}

	width := right.pos - left.pos
	if width == 0 || math.IsNaN(width) {
		return true, errors.Wrapf(ErrDegenerateSegment,
			"width %v between %v and %v", redact.Safe(width), redact.Safe(left.pos), redact.Safe(right.pos))
	}
	fraction := (threshold - left.pos) / width
	if math.IsInf(width, 0) {
		// The segment spans more than the float64 range (e.g. the two sentinels
		// of an empty histogram). Halving both ends cannot overflow.
		fraction = (threshold/2 - left.pos/2) / (right.pos/2 - left.pos/2)
	}
	height := left.weight + fraction*(right.weight-left.weight)
	count := ((left.weight + height) / 2) * fraction
	if math.IsNaN(fraction) || math.IsNaN(count) {
		return true, errors.Wrapf(ErrDegenerateSegment,
			"interpolating %v in [%v, %v)", redact.Safe(threshold), redact.Safe(left.pos), redact.Safe(right.pos))
	}
	if tracing {
		h.opts.Logger.Eventf("interpolate: running=%v left-half=%v trapezoid=%v height=%v",
			*total, left.weight/2, count, height)
	}
	*total += left.weight/2 + count
	return true, nil
}
