// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package streamhist

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Centroid is the position of a bucket. A Centroid is always finite: the only
// way to build one from an arbitrary float64 is MakeCentroid, which rejects
// NaN and the infinities. This makes Compare a total order, which a raw
// float64 comparison is not.
type Centroid struct {
	v float64
}

// MakeCentroid returns the Centroid at v. It returns an error marked with
// ErrNaN or ErrInfinite if v is not a finite number.
func MakeCentroid(v float64) (Centroid, error) {
	if err := checkFinite(v); err != nil {
		return Centroid{}, err
	}
	return Centroid{v: v}, nil
}

// mustMakeCentroid is used for positions computed internally, which are
// finite unless an invariant was violated.
func mustMakeCentroid(v float64) Centroid {
	c, err := MakeCentroid(v)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "computed centroid %v", v))
	}
	return c
}

func checkFinite(v float64) error {
	switch {
	case math.IsNaN(v):
		return errors.WithStack(ErrNaN)
	case math.IsInf(v, 0):
		return errors.Wrapf(ErrInfinite, "%v", redact.Safe(v))
	}
	return nil
}

// Float64 returns the position as a float64.
func (c Centroid) Float64() float64 {
	return c.v
}

// Compare returns -1, 0 or +1 depending on whether c is less than, equal to or
// greater than o.
func (c Centroid) Compare(o Centroid) int {
	switch {
	case c.v < o.v:
		return -1
	case c.v > o.v:
		return +1
	}
	return 0
}

// Sub returns the gap c - o. The result of subtracting two finite values may
// overflow to an infinity, but is never NaN.
func (c Centroid) Sub(o Centroid) float64 {
	return c.v - o.v
}

func (c Centroid) String() string {
	return redact.StringWithoutMarkers(c)
}

// SafeFormat implements redact.SafeFormatter.
func (c Centroid) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%v", redact.Safe(c.v))
}

func compareCentroids(a, b Centroid) int {
	return a.Compare(b)
}
