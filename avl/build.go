// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sort"
)

// a value paired with its key during a bulk load
type entry struct {
	key   Item
	value interface{}
}

// Of - build a tree of values that are their own keys
func Of(values ...interface{}) *Tree {
	return FromSlice(values, nil)
}

// FromSlice - build a balanced tree from a list of values
//
// When several values share a key the one latest in the list is kept.
// A value that cannot be keyed, or whose key type differs from the
// first, panics with fault.ErrTypeMismatch.
func FromSlice(values []interface{}, key KeyFunc) *Tree {
	tree := NewWithKey(key)
	entries := make([]entry, len(values))
	var reference Item
	for i, v := range values {
		k, err := tree.toKeyLike(v, reference)
		if nil != err {
			panic(err)
		}
		reference = k
		entries[i] = entry{
			key:   k,
			value: v,
		}
	}
	entries = uniqueSorted(entries)
	tree.root = build(entries)
	tree.count = len(entries)
	return tree
}

// stable sort then keep the last entry of each run of equal keys
func uniqueSorted(entries []entry) []entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key.Compare(entries[j].key) < 0
	})
	n := 0
	for _, e := range entries {
		if n > 0 && 0 == entries[n-1].key.Compare(e.key) {
			entries[n-1] = e
			continue
		}
		entries[n] = e
		n += 1
	}
	return entries[:n]
}

// midpoint split of a sorted run; recursion depth is log2(n)
func build(entries []entry) *node {
	if 0 == len(entries) {
		return nil
	}
	mid := len(entries) / 2
	left := build(entries[:mid])
	right := build(entries[mid+1:])
	return newNode(entries[mid].key, entries[mid].value, left, right)
}
