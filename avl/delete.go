// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Discard - removes the value with a matching key if present
// returns true if a value was removed
func (tree *Tree) Discard(value interface{}) bool {
	key, err := tree.toKey(value)
	if nil != err {
		return false
	}
	q := tree.find(key)
	if nil == q {
		return false
	}
	tree.delete(q)
	return true
}

// Remove - as Discard but a missing key is an error
func (tree *Tree) Remove(value interface{}) error {
	if !tree.Discard(value) {
		return fault.ErrKeyNotFound
	}
	return nil
}

// PopMin - remove and return the value with the lowest key
func (tree *Tree) PopMin() (interface{}, error) {
	q := tree.root.first()
	if nil == q {
		return nil, fault.ErrEmptyTree
	}
	value := q.value
	tree.delete(q)
	return value, nil
}

// PopMax - remove and return the value with the highest key
func (tree *Tree) PopMax() (interface{}, error) {
	q := tree.root.last()
	if nil == q {
		return nil, fault.ErrEmptyTree
	}
	value := q.value
	tree.delete(q)
	return value, nil
}

// Pop - remove and return the first value in iteration order
func (tree *Tree) Pop() (interface{}, error) {
	return tree.PopMin()
}

// Clear - remove all values
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}

// internal delete routine: unlink q and rebalance from the lowest
// node whose sub-tree changed shape
func (tree *Tree) delete(q *node) {
	start := q.up
	switch {
	case nil == q.left:
		tree.transplant(q, q.right)
	case nil == q.right:
		tree.transplant(q, q.left)
	default:
		r := q.right.first() // in-order successor
		if r.up == q {
			start = r
		} else {
			start = r.up
			tree.transplant(r, r.right)
			r.setRight(q.right)
		}
		tree.transplant(q, r)
		r.setLeft(q.left)
	}
	q.detach()
	tree.count -= 1
	tree.rebalance(start)
}
