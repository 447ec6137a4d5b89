// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package streamhist

import (
	"math"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestMakeCentroid(t *testing.T) {
	_, err := MakeCentroid(math.NaN())
	require.True(t, errors.Is(err, ErrNaN))
	_, err = MakeCentroid(math.Inf(+1))
	require.True(t, errors.Is(err, ErrInfinite))
	_, err = MakeCentroid(math.Inf(-1))
	require.True(t, errors.Is(err, ErrInfinite))

	for _, v := range []float64{0, math.Copysign(0, -1), -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		c, err := MakeCentroid(v)
		require.NoError(t, err)
		require.Equal(t, v, c.Float64())
	}
	require.Panics(t, func() { mustMakeCentroid(math.NaN()) })
}

func TestCentroidOrder(t *testing.T) {
	var cs []Centroid
	for _, v := range []float64{3, -1, 2.5, 0, -math.MaxFloat64, 7} {
		c, err := MakeCentroid(v)
		require.NoError(t, err)
		cs = append(cs, c)
	}
	slices.SortFunc(cs, compareCentroids)
	var sorted []float64
	for _, c := range cs {
		sorted = append(sorted, c.Float64())
	}
	require.Equal(t, []float64{-math.MaxFloat64, -1, 0, 2.5, 3, 7}, sorted)

	a, _ := MakeCentroid(2)
	b, _ := MakeCentroid(2)
	require.Equal(t, 0, a.Compare(b))
	require.Equal(t, a, b)

	// Positive and negative zero compare equal.
	z, _ := MakeCentroid(0)
	nz, _ := MakeCentroid(math.Copysign(0, -1))
	require.Equal(t, 0, z.Compare(nz))
}

func TestCentroidSub(t *testing.T) {
	a, _ := MakeCentroid(5)
	b, _ := MakeCentroid(1.5)
	require.Equal(t, 3.5, a.Sub(b))
	require.Equal(t, -3.5, b.Sub(a))

	lo, _ := MakeCentroid(-math.MaxFloat64)
	hi, _ := MakeCentroid(math.MaxFloat64)
	require.True(t, math.IsInf(hi.Sub(lo), +1))
}

func TestCentroidFormat(t *testing.T) {
	c, _ := MakeCentroid(2.5)
	require.Equal(t, "2.5", c.String())
	require.Equal(t, "2.5", string(redact.Sprint(c).Redact()))
}
