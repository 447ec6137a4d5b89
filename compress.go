// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package streamhist

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/streamhist/internal/invariants"
)

// compress merges the closest pair of adjacent buckets until the bucket count
// is within capacity. Each step preserves the total weight; only positional
// precision is lost.
func (h *Histogram) compress() {
	for h.buckets.len() > h.capacity {
		a, b, ok := h.closestPair()
		if !ok {
			panic(errors.AssertionFailedf(
				"no adjacent bucket pair to merge: %d buckets, capacity %d", h.buckets.len(), h.capacity))
		}
		wa, _ := h.buckets.remove(a)
		wb, _ := h.buckets.remove(b)
		h.buckets.add(mustMakeCentroid(mergedPosition(a, wa, b, wb)), wa+wb)
	}
	if invariants.Sometimes(10) {
		h.checkTotalWeight()
	}
}

// closestPair returns the adjacent pair of buckets with the smallest gap. Ties
// are broken in favor of the leftmost pair.
func (h *Histogram) closestPair() (a, b Centroid, ok bool) {
	var prev Centroid
	first := true
	minGap := math.Inf(+1)
	for c := range h.buckets.all() {
		if !first {
			// A gap between two finite positions can overflow to +Inf; such a pair
			// is only picked when every gap overflows.
			if gap := c.Sub(prev); gap < minGap || !ok {
				a, b, minGap, ok = prev, c, gap, true
			}
		}
		prev, first = c, false
	}
	return a, b, ok
}

// mergedPosition returns the weighted average of the two positions. The
// direct formula can overflow for positions near the float64 limits, in which
// case the convex combination is used.
func mergedPosition(a Centroid, wa float64, b Centroid, wb float64) float64 {
	w := wa + wb
	p := (a.Float64()*wa + b.Float64()*wb) / w
	if math.IsNaN(p) || math.IsInf(p, 0) {
		p = a.Float64()*(wa/w) + b.Float64()*(wb/w)
	}
	return p
}

func (h *Histogram) checkTotalWeight() {
	var total float64
	for _, w := range h.buckets.all() {
		total += w
	}
	if total != h.total {
		panic(errors.AssertionFailedf("bucket weights sum to %v, expected %v", total, h.total))
	}
}
