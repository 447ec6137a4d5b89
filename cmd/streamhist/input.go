// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"io"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/streamhist/shard"
	"github.com/ghemawat/stream"
)

// readRecords reads one observation per line from the named files, or from
// stdin when there are none. Blank lines and lines starting with '#' are
// skipped. When keyed is set every line is "<key> <value>".
func readRecords(files []string, stdin io.Reader, keyed bool) ([]shard.Record, error) {
	source := stream.ReadLines(stdin)
	if len(files) > 0 {
		source = stream.Cat(files...)
	}
	var records []shard.Record
	var parseErr error
	lineNum := 0
	err := stream.ForEach(stream.Sequence(
		source,
		stream.GrepNot(`^\s*(#|$)`),
	), func(line string) {
		lineNum++
		if parseErr != nil {
			return
		}
		r, err := parseRecord(line, keyed)
		if err != nil {
			parseErr = errors.Wrapf(err, "observation %d", lineNum)
			return
		}
		records = append(records, r)
	})
	if err != nil {
		return nil, err
	}
	if parseErr != nil {
		return nil, parseErr
	}
	return records, nil
}

func parseRecord(line string, keyed bool) (shard.Record, error) {
	fields := strings.Fields(line)
	var r shard.Record
	if keyed {
		if len(fields) != 2 {
			return r, errors.Errorf("expected <key> <value>, found %q", line)
		}
		r.Key = []byte(fields[0])
		fields = fields[1:]
	} else if len(fields) != 1 {
		return r, errors.Errorf("expected a single value, found %q", line)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return r, errors.Wrapf(err, "parsing %q", fields[0])
	}
	r.Value = v
	return r, nil
}

// parseThresholds parses a comma-separated list of thresholds. An empty list
// yields n evenly spaced thresholds covering the sorted values.
func parseThresholds(s string, sorted []float64, n int) ([]float64, error) {
	if s == "" {
		return spacedThresholds(sorted, n), nil
	}
	var res []float64
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing threshold %q", tok)
		}
		res = append(res, v)
	}
	slices.Sort(res)
	return res, nil
}

func spacedThresholds(sorted []float64, n int) []float64 {
	if len(sorted) == 0 || n <= 0 {
		return nil
	}
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi || n == 1 {
		return []float64{hi}
	}
	res := make([]float64, n)
	for i := range res {
		res[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	res[n-1] = hi
	return res
}

// exactCount returns the number of sorted values less than or equal to t.
func exactCount(sorted []float64, t float64) int {
	if math.IsNaN(t) {
		return 0
	}
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] > t })
}

func values(records []shard.Record) []float64 {
	res := make([]float64, len(records))
	for i := range records {
		res[i] = records[i].Value
	}
	return res
}
