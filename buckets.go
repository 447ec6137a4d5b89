// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package streamhist

import (
	"iter"

	"github.com/RaduBerinde/btreemap"
)

const bucketTreeDegree = 8

// buckets is the ordered bucket store: a B-tree map from position to weight.
// Keys are unique; iteration is in ascending position order.
type buckets struct {
	tree *btreemap.BTreeMap[Centroid, float64]
}

func makeBuckets() buckets {
	return buckets{tree: btreemap.New[Centroid, float64](bucketTreeDegree, compareCentroids)}
}

func (b *buckets) len() int {
	return b.tree.Len()
}

// add adds weight to the bucket at c, creating it if necessary.
func (b *buckets) add(c Centroid, weight float64) {
	if _, w, ok := b.tree.Get(c); ok {
		weight += w
	}
	b.tree.ReplaceOrInsert(c, weight)
}

// remove deletes the bucket at c and returns its weight.
func (b *buckets) remove(c Centroid) (float64, bool) {
	_, w, ok := b.tree.Delete(c)
	return w, ok
}

// all returns an iterator over all buckets in ascending position order.
func (b *buckets) all() iter.Seq2[Centroid, float64] {
	return b.tree.Ascend(btreemap.Min[Centroid](), btreemap.Max[Centroid]())
}

func (b *buckets) clone() buckets {
	c := makeBuckets()
	for k, w := range b.all() {
		c.tree.ReplaceOrInsert(k, w)
	}
	return c
}
