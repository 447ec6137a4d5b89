// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/streamhist/internal/randvar"
	"github.com/cockroachdb/streamhist/shard"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// hdrScale converts observations to the fixed-point integers recorded by the
// HDR baseline.
const hdrScale = 1000

var benchConfig struct {
	dist string
	n    int
	seed uint64
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "compare estimates on a generated workload against exact counts",
	Long: `
Generates observations from the given distribution, builds a bounded histogram
from them and prints, for every threshold, the estimate next to the exact count
and the count reported by an HDR histogram of the same data.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(cmd.Context(), cmd.OutOrStdout())
	},
}

func runBench(ctx context.Context, w io.Writer) error {
	if benchConfig.n <= 0 {
		return errors.Errorf("number of observations must be positive, got %d", benchConfig.n)
	}
	g, err := randvar.Parse(randvar.NewRand(benchConfig.seed), benchConfig.dist)
	if err != nil {
		return err
	}
	records := make([]shard.Record, benchConfig.n)
	for i := range records {
		records[i].Value = g.Float64()
	}

	start := crtime.NowMono()
	h, err := buildHistogram(ctx, records, false /* keyed */)
	if err != nil {
		return err
	}
	buildTime := start.Elapsed()

	sorted := values(records)
	slices.Sort(sorted)
	ts, err := parseThresholds(thresholds, sorted, defaultThresholds)
	if err != nil {
		return err
	}
	hdr, err := newHDRBaseline(sorted)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s observations from %s into %d buckets in %s\n",
		string(crhumanize.Count(uint64(len(sorted)), crhumanize.Compact)),
		benchConfig.dist, h.Len(), buildTime)

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"threshold", "estimate", "exact", "hdr", "error"})
	start = crtime.NowMono()
	for _, t := range ts {
		est, err := h.Sum(t)
		if err != nil {
			return err
		}
		exact := exactCount(sorted, t)
		tbl.Append([]string{
			strconv.FormatFloat(t, 'g', 6, 64),
			strconv.FormatFloat(est, 'f', 1, 64),
			strconv.Itoa(exact),
			strconv.FormatInt(hdr.count(t), 10),
			fmt.Sprintf("%.3f%%", 100*(est-float64(exact))/float64(len(sorted))),
		})
	}
	estimateTime := start.Elapsed()
	tbl.Render()
	fmt.Fprintf(w, "%d estimates in %s\n", len(ts), estimateTime)
	return nil
}

// hdrBaseline records observations, shifted so the smallest is one, in an HDR
// histogram.
type hdrBaseline struct {
	min  float64
	hist *hdrhistogram.Histogram
}

func newHDRBaseline(sorted []float64) (*hdrBaseline, error) {
	b := &hdrBaseline{min: sorted[0]}
	b.hist = hdrhistogram.New(1, max(2, b.scale(sorted[len(sorted)-1])), 3)
	for _, v := range sorted {
		if err := b.hist.RecordValue(b.scale(v)); err != nil {
			return nil, errors.Wrapf(err, "recording %v", v)
		}
	}
	return b, nil
}

func (b *hdrBaseline) scale(v float64) int64 {
	s := (v-b.min)*hdrScale + 1
	if s >= math.MaxInt64/2 {
		return math.MaxInt64 / 2
	}
	return int64(s)
}

// count returns the number of recorded observations in buckets starting at or
// below t.
func (b *hdrBaseline) count(t float64) int64 {
	if t < b.min {
		return 0
	}
	x := b.scale(t)
	var n int64
	for _, bar := range b.hist.Distribution() {
		if bar.From > x {
			break
		}
		n += bar.Count
	}
	return n
}
