// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package randvar

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// Parse returns a generator described by spec, which has one of the forms:
//
//	uniform:<min>-<max>
//	zipf:<min>-<max>[:<theta>]
//	exp:<mean>
func Parse(rng *rand.Rand, spec string) (Float, error) {
	kind, args, _ := strings.Cut(spec, ":")
	switch kind {
	case "uniform":
		lo, hi, err := parseRange(args)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", spec)
		}
		return NewUniform(rng, lo, hi)
	case "zipf":
		bounds, thetaStr, hasTheta := strings.Cut(args, ":")
		lo, hi, err := parseRange(bounds)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", spec)
		}
		theta := 0.99
		if hasTheta {
			if theta, err = strconv.ParseFloat(thetaStr, 64); err != nil {
				return nil, errors.Wrapf(err, "parsing %q", spec)
			}
		}
		if lo < 0 || hi < 0 {
			return nil, errors.Newf("zipf bounds must be non-negative: %q", spec)
		}
		return NewZipf(rng, uint64(lo), uint64(hi), theta)
	case "exp":
		mean, err := strconv.ParseFloat(args, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", spec)
		}
		return NewExponential(rng, mean)
	}
	return nil, errors.Newf("unknown distribution %q", spec)
}

func parseRange(s string) (lo, hi float64, err error) {
	// The separator is the first '-' after the leading sign of min.
	i := strings.Index(strings.TrimPrefix(s, "-"), "-")
	if i < 0 {
		return 0, 0, errors.Newf("expected <min>-<max>, got %q", s)
	}
	i += len(s) - len(strings.TrimPrefix(s, "-"))
	loStr, hiStr := s[:i], s[i+1:]
	if lo, err = strconv.ParseFloat(loStr, 64); err != nil {
		return 0, 0, err
	}
	if hi, err = strconv.ParseFloat(hiStr, 64); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}
