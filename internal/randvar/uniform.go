// Copyright 2018 The Cockroach Authors.
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

package randvar

import (
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// Uniform generates observations uniformly distributed in [min, max).
type Uniform struct {
	min, width float64
	mu         struct {
		sync.Mutex
		rng *rand.Rand
	}
}

// NewUniform constructs a new Uniform generator. Returns an error if max is
// not greater than min.
func NewUniform(rng *rand.Rand, min, max float64) (*Uniform, error) {
	if !(min < max) {
		return nil, errors.Newf("uniform: min %v must be < max %v", min, max)
	}
	g := &Uniform{min: min, width: max - min}
	g.mu.rng = ensureRand(rng)
	return g, nil
}

// Float64 implements Float.
func (g *Uniform) Float64() float64 {
	g.mu.Lock()
	u := g.mu.rng.Float64()
	g.mu.Unlock()
	return g.min + u*g.width
}
