// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/streamhist"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [files...]",
	Short: "print the retained buckets of a histogram built from files or stdin",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readRecords(args, cmd.InOrStdin(), false /* keyed */)
		if err != nil {
			return err
		}
		h, err := buildHistogram(cmd.Context(), records, false /* keyed */)
		if err != nil {
			return err
		}
		dump(cmd.OutOrStdout(), h)
		return nil
	},
}

type dumpedBucket struct {
	Position float64
	Weight   float64
}

func dump(w io.Writer, h *streamhist.Histogram) {
	var buckets []dumpedBucket
	for c, weight := range h.All() {
		buckets = append(buckets, dumpedBucket{Position: c.Float64(), Weight: weight})
	}
	fmt.Fprintf(w, "capacity: %d\nweight: %v\nmean: %v\n", h.Capacity(), h.TotalWeight(), h.Mean())
	fmt.Fprintf(w, "%# v\n", pretty.Formatter(buckets))
}
