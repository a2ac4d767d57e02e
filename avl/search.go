// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if a value with an equal key is in the tree
//
// values that cannot be keyed are never contained
func (tree *Tree) Contains(value interface{}) bool {
	key, err := tree.toKey(value)
	if nil != err {
		return false
	}
	return nil != tree.find(key)
}

// find the node holding key, nil if absent
func (tree *Tree) find(key Item) *node {
	p := tree.root
	for nil != p {
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
