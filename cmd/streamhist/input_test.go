// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/streamhist/shard"
	"github.com/stretchr/testify/require"
)

func TestReadRecords(t *testing.T) {
	input := `
# comment
1
  2.5

12
`
	records, err := readRecords(nil, strings.NewReader(input), false)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2.5, 12}, values(records))

	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("x 3\ny 4\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("# header\nx 5\n"), 0644))
	records, err = readRecords([]string{a, b}, nil, true)
	require.NoError(t, err)
	require.Equal(t, []shard.Record{
		{Key: []byte("x"), Value: 3},
		{Key: []byte("y"), Value: 4},
		{Key: []byte("x"), Value: 5},
	}, records)
}

func TestReadRecordsErrors(t *testing.T) {
	_, err := readRecords(nil, strings.NewReader("1\nfoo\n"), false)
	require.ErrorContains(t, err, `observation 2: parsing "foo"`)

	_, err = readRecords(nil, strings.NewReader("1 2\n"), false)
	require.ErrorContains(t, err, "expected a single value")

	_, err = readRecords(nil, strings.NewReader("1\n"), true)
	require.ErrorContains(t, err, "expected <key> <value>")

	_, err = readRecords([]string{filepath.Join(t.TempDir(), "missing")}, nil, false)
	require.Error(t, err)
}

func TestParseThresholds(t *testing.T) {
	ts, err := parseThresholds("3, 1,2", nil, 5)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, ts)

	_, err = parseThresholds("1,x", nil, 5)
	require.Error(t, err)

	ts, err = parseThresholds("", []float64{0, 5, 10}, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 5, 10}, ts)

	require.Equal(t, []float64{7}, spacedThresholds([]float64{7, 7}, 4))
	require.Nil(t, spacedThresholds(nil, 4))
}

func TestExactCount(t *testing.T) {
	sorted := []float64{1, 2, 2, 3}
	require.Equal(t, 0, exactCount(sorted, 0.5))
	require.Equal(t, 3, exactCount(sorted, 2))
	require.Equal(t, 4, exactCount(sorted, 100))
}

func TestRunSum(t *testing.T) {
	defer func(c, s int, th string) { capacity, shards, thresholds = c, s, th }(capacity, shards, thresholds)
	capacity, shards, thresholds = 5, 1, "2.5,7"

	var records []shard.Record
	for _, v := range []float64{1, 2, 12} {
		records = append(records, shard.Record{Value: v})
	}
	var buf bytes.Buffer
	require.NoError(t, runSum(context.Background(), &buf, records))
	out := buf.String()
	require.Contains(t, out, "3 observations, 3 buckets")
	require.Contains(t, out, "1.55")
	require.Contains(t, out, "2.00")
}

func TestRunBench(t *testing.T) {
	defer func(c, s int, th string) { capacity, shards, thresholds = c, s, th }(capacity, shards, thresholds)
	defer func(cfg struct {
		dist string
		n    int
		seed uint64
	}) {
		benchConfig = cfg
	}(benchConfig)
	capacity, shards, thresholds = 32, 2, ""
	benchConfig.dist, benchConfig.n, benchConfig.seed = "uniform:0-100", 2000, 7

	var buf bytes.Buffer
	require.NoError(t, runBench(context.Background(), &buf))
	require.Contains(t, buf.String(), "observations from uniform:0-100")

	benchConfig.dist = "bogus"
	require.Error(t, runBench(context.Background(), &buf))
}
