// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

//go:generate mockgen -source=sets.go -destination=mocks/set.go -package=mocks
//go:generate mockgen -source=iterator.go -destination=mocks/iterator.go -package=mocks

// Set - the capabilities the set operations need from the other operand
type Set interface {
	Contains(value interface{}) bool
	Len() int
	Iterate() Iterator
}

// IsSubset - every value of the tree is in other (tree <= other)
func (tree *Tree) IsSubset(other Set) bool {
	if tree.count > other.Len() {
		return false
	}
	for it := tree.Iterate(); it.Next(); {
		if !other.Contains(it.Value()) {
			return false
		}
	}
	return true
}

// IsSuperset - every value of other is in the tree (tree >= other)
func (tree *Tree) IsSuperset(other Set) bool {
	if tree.count < other.Len() {
		return false
	}
	for it := other.Iterate(); it.Next(); {
		if !tree.Contains(it.Value()) {
			return false
		}
	}
	return true
}

// Equal - both contain the same values (tree == other)
func (tree *Tree) Equal(other Set) bool {
	return tree.count == other.Len() && tree.IsSubset(other) && tree.IsSuperset(other)
}

// IsProperSubset - tree < other
func (tree *Tree) IsProperSubset(other Set) bool {
	return tree.count < other.Len() && tree.IsSubset(other)
}

// IsProperSuperset - tree > other
func (tree *Tree) IsProperSuperset(other Set) bool {
	return tree.count > other.Len() && tree.IsSuperset(other)
}

// IsDisjoint - no value is in both; iterates the smaller operand
func (tree *Tree) IsDisjoint(other Set) bool {
	if tree.count < other.Len() {
		return disjoint(tree, other)
	}
	return disjoint(other, tree)
}

func disjoint(small Set, large Set) bool {
	for it := small.Iterate(); it.Next(); {
		if large.Contains(it.Value()) {
			return false
		}
	}
	return true
}

// Intersection - new tree of the values of tree that are also in other
func (tree *Tree) Intersection(other Set) *Tree {
	return tree.derive(tree.filter(func(value interface{}) bool {
		return other.Contains(value)
	}))
}

// Difference - new tree of the values of tree that are not in other
func (tree *Tree) Difference(other Set) *Tree {
	return tree.derive(tree.filter(func(value interface{}) bool {
		return !other.Contains(value)
	}))
}

// Union - new tree of the values in either operand
//
// where both hold a value for the same key the value from other is
// kept.  Fails with fault.ErrTypeMismatch if a value of other cannot
// be keyed by this tree.
func (tree *Tree) Union(other Set) (*Tree, error) {
	foreign, err := tree.keyed(other)
	if nil != err {
		return nil, err
	}
	entries := append(tree.filter(nil), foreign...)
	return tree.derive(uniqueSorted(entries)), nil
}

// SymmetricDifference - new tree of the values in exactly one operand
func (tree *Tree) SymmetricDifference(other Set) (*Tree, error) {
	foreign, err := tree.keyed(other)
	if nil != err {
		return nil, err
	}
	entries := tree.filter(func(value interface{}) bool {
		return !other.Contains(value)
	})
	for _, e := range foreign {
		if nil == tree.find(e.key) {
			entries = append(entries, e)
		}
	}
	return tree.derive(uniqueSorted(entries)), nil
}

// IntersectionUpdate - keep only the values also in other (tree &= other)
func (tree *Tree) IntersectionUpdate(other Set) {
	remove := tree.filter(func(value interface{}) bool {
		return !other.Contains(value)
	})
	for _, e := range remove {
		if q := tree.find(e.key); nil != q {
			tree.delete(q)
		}
	}
}

// Update - add every value of other (tree |= other)
//
// the tree is unchanged if any value of other cannot be keyed
func (tree *Tree) Update(other Set) error {
	foreign, err := tree.keyed(other)
	if nil != err {
		return err
	}
	for _, e := range foreign {
		tree.insert(e.key, e.value)
	}
	return nil
}

// DifferenceUpdate - remove every value of other (tree -= other)
func (tree *Tree) DifferenceUpdate(other Set) {
	if tree.Equal(other) {
		tree.Clear()
		return
	}
	remove := make([]interface{}, 0, other.Len())
	for it := other.Iterate(); it.Next(); {
		remove = append(remove, it.Value())
	}
	for _, v := range remove {
		tree.Discard(v)
	}
}

// SymmetricDifferenceUpdate - toggle membership of every value of other
// (tree ^= other)
//
// the tree is unchanged if any value of other cannot be keyed
func (tree *Tree) SymmetricDifferenceUpdate(other Set) error {
	if tree.Equal(other) {
		tree.Clear()
		return nil
	}
	foreign, err := tree.keyed(other)
	if nil != err {
		return err
	}
	for _, e := range foreign {
		if q := tree.find(e.key); nil != q {
			tree.delete(q)
		} else {
			tree.insert(e.key, e.value)
		}
	}
	return nil
}

// ascending entries of the tree accepted by keep (all if keep is nil)
func (tree *Tree) filter(keep func(value interface{}) bool) []entry {
	entries := make([]entry, 0, tree.count)
	for it := tree.Iterate().(*traversal); it.Next(); {
		p := it.current
		if nil == keep || keep(p.value) {
			entries = append(entries, entry{key: p.key, value: p.value})
		}
	}
	return entries
}

// key every value of other; all or nothing
func (tree *Tree) keyed(other Set) ([]entry, error) {
	var reference Item
	if nil != tree.root {
		reference = tree.root.key
	}
	entries := make([]entry, 0, other.Len())
	for it := other.Iterate(); it.Next(); {
		v := it.Value()
		k, err := tree.toKeyLike(v, reference)
		if nil != err {
			return nil, fault.ErrTypeMismatch
		}
		if nil == reference {
			reference = k
		}
		entries = append(entries, entry{key: k, value: v})
	}
	return entries, nil
}

// new tree sharing the key function, from sorted unique entries
func (tree *Tree) derive(entries []entry) *Tree {
	result := NewWithKey(tree.key)
	result.root = build(entries)
	result.count = len(entries)
	return result
}
