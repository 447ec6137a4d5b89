// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"log"
	"os"

	"github.com/cockroachdb/streamhist"
	"github.com/spf13/cobra"
)

var (
	capacity   int
	shards     int
	thresholds string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "streamhist [command] (flags)",
	Short: "streaming histogram estimation tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		sumCmd,
		benchCmd,
		dumpCmd,
	)

	for _, cmd := range []*cobra.Command{sumCmd, benchCmd, dumpCmd} {
		cmd.Flags().IntVarP(
			&capacity, "capacity", "k", 64, "maximum number of retained buckets")
		cmd.Flags().IntVarP(
			&shards, "shards", "s", 0, "number of partitions built concurrently (0 means GOMAXPROCS)")
		cmd.Flags().BoolVarP(
			&verbose, "verbose", "v", false, "trace every estimation step")
	}
	for _, cmd := range []*cobra.Command{sumCmd, benchCmd} {
		cmd.Flags().StringVarP(
			&thresholds, "thresholds", "t", "",
			"comma-separated thresholds to estimate (default: evenly spaced over the observed range)")
	}

	sumCmd.Flags().BoolVar(
		&sumConfig.keyed, "keyed", false,
		"input lines are <key> <value>; records with equal keys share a partition")
	sumCmd.Flags().BoolVar(
		&sumConfig.plot, "plot", false, "plot the estimated cumulative distribution")
	sumCmd.Flags().IntVar(
		&sumConfig.plotHeight, "plot-height", 15, "height of the plot in lines")

	benchCmd.Flags().StringVar(
		&benchConfig.dist, "dist", "uniform:0-1000",
		"observation distribution: uniform:<min>-<max>, zipf:<min>-<max>[:<theta>] or exp:<mean>")
	benchCmd.Flags().IntVarP(
		&benchConfig.n, "num-obs", "n", 1000000, "number of observations to generate")
	benchCmd.Flags().Uint64Var(
		&benchConfig.seed, "seed", 1, "random seed (0 means time-based)")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

func histogramLogger() streamhist.LoggerAndTracer {
	if verbose {
		return &streamhist.LoggerWithTracer{Logger: streamhist.DefaultLogger{}}
	}
	return nil
}
