// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a value unless a value with an equal key is present
//
// returns true if the tree was modified.  A value that cannot be keyed
// panics with fault.ErrTypeMismatch.
func (tree *Tree) Add(value interface{}) bool {
	key := tree.mustKey(value)
	return tree.insert(key, value)
}

// internal routine for insert
func (tree *Tree) insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = newNode(key, value, nil, nil)
		tree.count += 1
		return true
	}
	p := tree.root
	for {
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			if nil == p.left {
				p.setLeft(newNode(key, value, nil, nil))
				tree.count += 1
				tree.rebalance(p)
				return true
			}
			p = p.left
		case c < 0: // p.key < key
			if nil == p.right {
				p.setRight(newNode(key, value, nil, nil))
				tree.count += 1
				tree.rebalance(p)
				return true
			}
			p = p.right
		default:
			return false
		}
	}
}
