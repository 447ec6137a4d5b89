// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package shard builds a streamhist.Histogram in parallel. Observations are
// split into disjoint partitions, each partition is summarized by its own
// histogram on its own goroutine, and the partial histograms are then combined
// with MergeFrom.
package shard

import (
	"context"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/streamhist"
	"golang.org/x/sync/errgroup"
)

// checkEvery is the number of observations a worker adds between checks for
// cancellation.
const checkEvery = 4096

// Options configures a Builder.
type Options struct {
	// Shards is the number of partitions built concurrently. Defaults to
	// GOMAXPROCS.
	Shards int
	// Capacity of every partial histogram and of the combined result.
	Capacity int
	// Logger is passed to every histogram. Optional.
	Logger streamhist.LoggerAndTracer
}

// EnsureDefaults fills in defaults for unset options.
func (o *Options) EnsureDefaults() {
	if o.Shards <= 0 {
		o.Shards = runtime.GOMAXPROCS(0)
	}
}

// Record is an observation tagged with a key. Records with equal keys always
// land in the same partition.
type Record struct {
	Key   []byte
	Value float64
}

// Builder builds histograms from partitioned input.
type Builder struct {
	opts Options
}

// NewBuilder returns a Builder. The capacity is validated here so that bad
// configuration surfaces before any work is started.
func NewBuilder(opts Options) (*Builder, error) {
	opts.EnsureDefaults()
	if _, err := opts.newHistogram(); err != nil {
		return nil, err
	}
	return &Builder{opts: opts}, nil
}

func (o *Options) newHistogram() (*streamhist.Histogram, error) {
	return streamhist.NewWithOptions(&streamhist.Options{
		Capacity: o.Capacity,
		Logger:   o.Logger,
	})
}

// Build summarizes values. The slice is cut into contiguous partitions, one
// per shard.
func (b *Builder) Build(ctx context.Context, values []float64) (*streamhist.Histogram, error) {
	n := b.shards()
	if n > len(values) {
		n = max(len(values), 1)
	}
	parts := make([][]float64, n)
	for i := range parts {
		parts[i] = values[i*len(values)/n : (i+1)*len(values)/n]
	}
	return b.build(ctx, parts)
}

// BuildKeyed summarizes records, partitioning them by a hash of their key.
func (b *Builder) BuildKeyed(ctx context.Context, records []Record) (*streamhist.Histogram, error) {
	parts := make([][]float64, b.shards())
	for _, r := range records {
		i := xxhash.Sum64(r.Key) % uint64(len(parts))
		parts[i] = append(parts[i], r.Value)
	}
	return b.build(ctx, parts)
}

// shards returns the partition count. A Builder that did not come from
// NewBuilder falls back to the default.
func (b *Builder) shards() int {
	if b.opts.Shards <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return b.opts.Shards
}

func (b *Builder) build(ctx context.Context, parts [][]float64) (*streamhist.Histogram, error) {
	partials := make([]*streamhist.Histogram, len(parts))
	g, ctx := errgroup.WithContext(ctx)
	for i := range parts {
		g.Go(func() error {
			h, err := b.opts.newHistogram()
			if err != nil {
				return err
			}
			for j, v := range parts[i] {
				if j%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if err := h.Add(v); err != nil {
					return errors.Wrapf(err, "shard %d", i)
				}
			}
			partials[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result, err := b.opts.newHistogram()
	if err != nil {
		return nil, err
	}
	for _, h := range partials {
		result.MergeFrom(h)
	}
	if b.opts.Logger != nil {
		b.opts.Logger.Infof("merged %d shards into %d buckets (weight %v)",
			len(partials), result.Len(), result.TotalWeight())
	}
	return result, nil
}
