// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package randvar

import (
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// Exponential generates exponentially distributed observations with the
// given mean, which models latencies reasonably well.
type Exponential struct {
	mean float64
	mu   struct {
		sync.Mutex
		rng *rand.Rand
	}
}

// NewExponential constructs a new Exponential generator. Returns an error if
// mean is not positive.
func NewExponential(rng *rand.Rand, mean float64) (*Exponential, error) {
	if !(mean > 0) {
		return nil, errors.Newf("exponential: mean %v must be > 0", mean)
	}
	g := &Exponential{mean: mean}
	g.mu.rng = ensureRand(rng)
	return g, nil
}

// Float64 implements Float.
func (g *Exponential) Float64() float64 {
	g.mu.Lock()
	v := g.mu.rng.ExpFloat64()
	g.mu.Unlock()
	return v * g.mean
}
