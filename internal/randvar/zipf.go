// Copyright 2017 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License. See the AUTHORS file
// for names of contributors.
//
// Zipf implements the Zipfian generator from [1]: "Quickly Generating
// Billion-Record Synthetic Databases" by Gray, Sundaresan, Englert, Baclawski,
// and Weinberger, SIGMOD 1994.

package randvar

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// Zipf generates integer-valued observations in [min, max] following a Zipf
// distribution: small values are much more frequent than large ones, and many
// observations repeat exactly. Unlike rand.Zipf it supports any theta except
// 1.
type Zipf struct {
	theta, alpha, eta, zetaN float64
	min, spread            uint64
	mu                     struct {
		sync.Mutex
		rng *rand.Rand
	}
}

// NewZipf constructs a new Zipf generator with the given parameters. Returns
// an error if the parameters are outside the accepted range.
func NewZipf(rng *rand.Rand, min, max uint64, theta float64) (*Zipf, error) {
	if min > max {
		return nil, errors.Newf("zipf: min %d > max %d", min, max)
	}
	if theta < 0.0 || theta == 1.0 {
		return nil, errors.New("zipf: 0 < theta, and theta != 1")
	}
	z := &Zipf{
		theta:  theta,
		alpha:  1.0 / (1.0 - theta),
		min:    min,
		spread: max + 1 - min,
	}
	z.mu.rng = ensureRand(rng)
	zeta2 := zeta(2, theta)
	z.zetaN = zeta(z.spread, theta)
	z.eta = (1 - math.Pow(2.0/float64(z.spread), 1.0-theta)) / (1.0 - zeta2/z.zetaN)
	return z, nil
}

// zeta computes (1/1)^theta + (1/2)^theta + ... + (1/n)^theta.
func zeta(n uint64, theta float64) float64 {
	var sum float64
	for i := uint64(1); i <= n; i++ {
		sum += 1.0 / math.Pow(float64(i), theta)
	}
	return sum
}

// Uint64 draws a value between min and max.
func (z *Zipf) Uint64() uint64 {
	z.mu.Lock()
	u := z.mu.rng.Float64()
	z.mu.Unlock()
	uz := u * z.zetaN
	switch {
	case uz < 1.0:
		return z.min
	case uz < 1.0+math.Pow(0.5, z.theta):
		return z.min + 1
	}
	return z.min + uint64(float64(z.spread)*math.Pow(z.eta*u-z.eta+1.0, z.alpha))
}

// Float64 implements Float.
func (z *Zipf) Float64() float64 {
	return float64(z.Uint64())
}
