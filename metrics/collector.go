// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package metrics exports streaming histograms to Prometheus.
package metrics

import (
	"math"

	"github.com/cockroachdb/streamhist"
	"github.com/prometheus/client_golang/prometheus"
)

// CollectorOpts configures a Collector.
type CollectorOpts struct {
	Namespace   string
	Subsystem   string
	Name        string
	Help        string
	ConstLabels prometheus.Labels
	// Buckets are the upper bounds at which cumulative counts are estimated.
	// They must be sorted in increasing order.
	Buckets []float64
}

// Collector is a prometheus.Collector that exports a histogram as a
// Prometheus histogram: the sample count is the total weight, the sample sum
// is derived from the mean, and the cumulative bucket counts are the
// estimates of Histogram.Sum at each upper bound.
type Collector struct {
	desc    *prometheus.Desc
	buckets []float64
	source  func() *streamhist.Histogram
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a Collector reading from source on every scrape. source
// may return nil, in which case nothing is exported. The returned histogram
// must not be mutated concurrently with the scrape; see Recorder.
func NewCollector(opts CollectorOpts, source func() *streamhist.Histogram) *Collector {
	return &Collector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name),
			opts.Help, nil, opts.ConstLabels),
		buckets: opts.Buckets,
		source:  source,
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	h := c.source()
	if h == nil {
		return
	}
	count, buckets, err := cumulativeCounts(h, c.buckets)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.desc, err)
		return
	}
	m, err := prometheus.NewConstHistogram(c.desc, count, h.Mean()*h.TotalWeight(), buckets)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.desc, err)
		return
	}
	ch <- m
}

// cumulativeCounts rounds the estimates to integers. Prometheus requires
// cumulative counts to be non-decreasing and bounded by the sample count; the
// estimator is monotone but rounding is clamped anyway.
func cumulativeCounts(
	h *streamhist.Histogram, bounds []float64,
) (count uint64, buckets map[float64]uint64, _ error) {
	count = uint64(h.TotalWeight())
	buckets = make(map[float64]uint64, len(bounds))
	var prev uint64
	for _, b := range bounds {
		est, err := h.Sum(b)
		if err != nil {
			return 0, nil, err
		}
		n := uint64(math.Round(max(est, 0)))
		n = min(max(n, prev), count)
		buckets[b] = n
		prev = n
	}
	return count, buckets, nil
}
