// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/cockroachdb/streamhist"
	"github.com/cockroachdb/streamhist/shard"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	defaultThresholds = 11
	plotPoints        = 64
)

var sumConfig struct {
	keyed      bool
	plot       bool
	plotHeight int
}

var sumCmd = &cobra.Command{
	Use:   "sum [files...]",
	Short: "estimate cumulative counts of observations read from files or stdin",
	Long: `
Reads one observation per line and builds a bounded histogram from them. For
every threshold the estimated number of observations less than or equal to it
is printed next to the exact count.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readRecords(args, cmd.InOrStdin(), sumConfig.keyed)
		if err != nil {
			return err
		}
		return runSum(cmd.Context(), cmd.OutOrStdout(), records)
	},
}

func buildHistogram(ctx context.Context, records []shard.Record, keyed bool) (*streamhist.Histogram, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b, err := shard.NewBuilder(shard.Options{
		Shards:   shards,
		Capacity: capacity,
		Logger:   histogramLogger(),
	})
	if err != nil {
		return nil, err
	}
	if keyed {
		return b.BuildKeyed(ctx, records)
	}
	return b.Build(ctx, values(records))
}

func runSum(ctx context.Context, w io.Writer, records []shard.Record) error {
	h, err := buildHistogram(ctx, records, sumConfig.keyed)
	if err != nil {
		return err
	}
	sorted := values(records)
	slices.Sort(sorted)
	ts, err := parseThresholds(thresholds, sorted, defaultThresholds)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d observations, %d buckets\n", len(records), h.Len())
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"threshold", "estimate", "exact", "error"})
	for _, t := range ts {
		est, err := h.Sum(t)
		if err != nil {
			return err
		}
		exact := exactCount(sorted, t)
		tbl.Append([]string{
			strconv.FormatFloat(t, 'g', 6, 64),
			strconv.FormatFloat(est, 'f', 2, 64),
			strconv.Itoa(exact),
			strconv.FormatFloat(est-float64(exact), 'f', 2, 64),
		})
	}
	tbl.Render()

	if sumConfig.plot && len(sorted) > 0 {
		series := make([]float64, 0, plotPoints)
		for _, t := range spacedThresholds(sorted, plotPoints) {
			est, err := h.Sum(t)
			if err != nil {
				return err
			}
			series = append(series, est)
		}
		fmt.Fprintln(w, asciigraph.Plot(series, asciigraph.Height(sumConfig.plotHeight)))
	}
	return nil
}
