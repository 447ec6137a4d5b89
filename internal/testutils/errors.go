// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package testutils

// CheckErr can be used to simplify test code that expects no errors.
// Instead of:
//
//	h, err := streamhist.New(5)
//	if err != nil { .. }
//
// we can use:
//
//	h := testutils.CheckErr(streamhist.New(5))
func CheckErr[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
