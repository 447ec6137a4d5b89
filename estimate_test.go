// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package streamhist

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/streamhist/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestSumTracing(t *testing.T) {
	rec := &testutils.EventRecorder{Logger: testutils.Logger{T: t}}
	h := testutils.CheckErr(NewWithOptions(&Options{Capacity: 5, Logger: rec}))
	for _, v := range []float64{1, 2, 12} {
		require.NoError(t, h.Add(v))
	}
	v, err := h.Sum(2.5)
	require.NoError(t, err)
	require.InDelta(t, 1.55, v, 1e-12)
	require.Equal(t, `sum: threshold=2.5
segment: 0@-1.7976931348623157e+308 -> 1@1
add centroid: 0@-1.7976931348623157e+308 -> 0
segment: 1@1 -> 1@2
add centroid: 1@1 -> 1
segment: 1@2 -> 1@12
interpolate: running=1 left-half=0.5 trapezoid=0.05 height=1
`, rec.Events())

	// A threshold beyond every bucket walks into the right sentinel.
	_, err = h.Sum(100)
	require.NoError(t, err)
	require.Contains(t, rec.Events(), "segment: 1@12 -> 0@1.7976931348623157e+308\n")
}

func TestSumSegmentDegenerate(t *testing.T) {
	h := newHistogram(t, 2)
	var total float64
	done, err := h.sumSegment(&total, 1, node{pos: math.NaN(), weight: 1}, node{pos: 2, weight: 1}, false)
	require.True(t, done)
	require.True(t, errors.Is(err, ErrDegenerateSegment), "%v", err)

	// Segments entirely left or right of the threshold never interpolate.
	done, err = h.sumSegment(&total, 5, node{pos: 1, weight: 3}, node{pos: 2, weight: 1}, false)
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, 3.0, total)
	done, err = h.sumSegment(&total, 0, node{pos: 1, weight: 3}, node{pos: 2, weight: 1}, false)
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, 3.0, total)
}

func TestSumSentinelSpan(t *testing.T) {
	// The segment between the two sentinels is wider than the float64 range.
	h := newHistogram(t, 1)
	for _, x := range []float64{-math.MaxFloat64, -1, 0, 1e300, math.MaxFloat64} {
		requireSumWithin(t, h, x, 0, 0)
	}
}

func TestSumMonotoneWithinSegment(t *testing.T) {
	h := newHistogram(t, 4, 0, 10, 10, 10, 20)
	prev := 0.0
	for x := -5.0; x <= 25; x += 0.25 {
		v, err := h.Sum(x)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, prev, "Sum(%v)", x)
		require.LessOrEqual(t, v, h.TotalWeight())
		prev = v
	}
}
