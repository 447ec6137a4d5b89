// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package randvar provides seeded generators of float64 observations drawn
// from a few distributions, used to build synthetic workloads.
package randvar

import (
	"time"

	"golang.org/x/exp/rand"
)

// Float is the interface implemented by all generators.
type Float interface {
	// Float64 draws the next observation.
	Float64() float64
}

// NewRand creates a new random number generator seeded with seed. A zero seed
// picks a seed from the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return NewRand(0)
}
