// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package shard

import (
	"context"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/streamhist"
	"github.com/cockroachdb/streamhist/internal/randvar"
	"github.com/stretchr/testify/require"
)

func genValues(t *testing.T, n int) []float64 {
	g, err := randvar.NewUniform(randvar.NewRand(7), 0, 1000)
	require.NoError(t, err)
	values := make([]float64, n)
	for i := range values {
		values[i] = g.Float64()
	}
	return values
}

func TestBuildPreservesWeight(t *testing.T) {
	values := genValues(t, 10000)
	for _, shards := range []int{1, 2, 7, 64} {
		t.Run(fmt.Sprint(shards), func(t *testing.T) {
			b, err := NewBuilder(Options{Shards: shards, Capacity: 32})
			require.NoError(t, err)
			h, err := b.Build(context.Background(), values)
			require.NoError(t, err)
			require.Equal(t, float64(len(values)), h.TotalWeight())
			require.LessOrEqual(t, h.Len(), 32)

			all, err := h.Sum(math.Inf(+1))
			require.NoError(t, err)
			require.Equal(t, float64(len(values)), all)
		})
	}
}

func TestBuildSingleShardMatchesSequential(t *testing.T) {
	values := genValues(t, 2000)
	seq, err := streamhist.New(16)
	require.NoError(t, err)
	for _, v := range values {
		require.NoError(t, seq.Add(v))
	}

	b, err := NewBuilder(Options{Shards: 1, Capacity: 16})
	require.NoError(t, err)
	h, err := b.Build(context.Background(), values)
	require.NoError(t, err)
	require.Equal(t, seq.String(), h.String())
}

func TestBuildFewValues(t *testing.T) {
	b, err := NewBuilder(Options{Shards: 8, Capacity: 4})
	require.NoError(t, err)

	h, err := b.Build(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, h.Len())

	h, err = b.Build(context.Background(), []float64{3, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 3.0, h.TotalWeight())
	var positions []float64
	for c := range h.All() {
		positions = append(positions, c.Float64())
	}
	require.Equal(t, []float64{1, 2, 3}, positions)
}

func TestBuildKeyed(t *testing.T) {
	var records []Record
	for i := 0; i < 1000; i++ {
		records = append(records, Record{
			Key:   []byte(fmt.Sprintf("host-%d", i%13)),
			Value: float64(i % 100),
		})
	}
	b, err := NewBuilder(Options{Shards: 4, Capacity: 10})
	require.NoError(t, err)
	h1, err := b.BuildKeyed(context.Background(), records)
	require.NoError(t, err)
	require.Equal(t, 1000.0, h1.TotalWeight())

	// Partitioning is a pure function of the keys.
	h2, err := b.BuildKeyed(context.Background(), slices.Clone(records))
	require.NoError(t, err)
	require.Equal(t, h1.String(), h2.String())
}

func TestBuildErrors(t *testing.T) {
	_, err := NewBuilder(Options{Capacity: 0})
	require.True(t, errors.Is(err, streamhist.ErrInvalidCapacity))

	b, err := NewBuilder(Options{Shards: 2, Capacity: 4})
	require.NoError(t, err)
	_, err = b.Build(context.Background(), []float64{1, 2, math.NaN(), 4})
	require.True(t, errors.Is(err, streamhist.ErrNaN), "%v", err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.Build(ctx, genValues(t, 100))
	require.True(t, errors.Is(err, context.Canceled), "%v", err)
}

func TestBuilderWithoutConstructor(t *testing.T) {
	b := &Builder{opts: Options{Capacity: 4}}
	records := []Record{{Key: []byte("a"), Value: 1}, {Key: []byte("b"), Value: 2}}
	h, err := b.BuildKeyed(context.Background(), records)
	require.NoError(t, err)
	require.Equal(t, 2.0, h.TotalWeight())

	h, err = b.Build(context.Background(), []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3.0, h.TotalWeight())

	// The zero Builder has no valid capacity; it must fail rather than panic.
	var zero Builder
	_, err = zero.BuildKeyed(context.Background(), records)
	require.True(t, errors.Is(err, streamhist.ErrInvalidCapacity), "%v", err)
}
