// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"reflect"

	"github.com/bitmark-inc/avlset/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *node
	key   KeyFunc // nil: values are their own keys
	count int
}

// New - create an initially empty tree whose values are their own keys
func New() *Tree {
	return &Tree{
		root:  nil,
		key:   nil,
		count: 0,
	}
}

// NewWithKey - create an initially empty tree ordered by key(value)
func NewWithKey(key KeyFunc) *Tree {
	return &Tree{
		root:  nil,
		key:   key,
		count: 0,
	}
}

// Key - the key function, nil if values are their own keys
func (tree *Tree) Key() KeyFunc {
	return tree.key
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Len - number of nodes currently in the tree
func (tree *Tree) Len() int {
	return tree.count
}

// Height - number of levels in the tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root) + 1
}

// convert a value to its ordering key
//
// every key in a tree has the same dynamic type as the root key, so a
// Compare never sees a foreign type
func (tree *Tree) toKey(value interface{}) (Item, error) {
	var reference Item
	if nil != tree.root {
		reference = tree.root.key
	}
	return tree.toKeyLike(value, reference)
}

// as toKey but checked against an explicit reference key, nil for none
func (tree *Tree) toKeyLike(value interface{}, reference Item) (Item, error) {
	var k Item
	if nil != tree.key {
		k = tree.key(value)
	} else if item, ok := value.(Item); ok {
		k = item
	}
	if nil == k {
		return nil, fault.ErrTypeMismatch
	}
	if nil != reference && reflect.TypeOf(k) != reflect.TypeOf(reference) {
		return nil, fault.ErrTypeMismatch
	}
	return k, nil
}

// as toKey but for callers that cannot report an error
func (tree *Tree) mustKey(value interface{}) Item {
	k, err := tree.toKey(value)
	if nil != err {
		panic(err)
	}
	return k
}
