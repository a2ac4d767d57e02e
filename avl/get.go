// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Get - the stored value whose key equals the key of value
//
// with a key function this returns the value that was originally
// inserted, which may differ from the argument
func (tree *Tree) Get(value interface{}) (interface{}, bool) {
	key, err := tree.toKey(value)
	if nil != err {
		return nil, false
	}
	p := tree.find(key)
	if nil == p {
		return nil, false
	}
	return p.value, true
}

// Min - the value with the lowest key
func (tree *Tree) Min() (interface{}, error) {
	p := tree.root.first()
	if nil == p {
		return nil, fault.ErrEmptyTree
	}
	return p.value, nil
}

// Max - the value with the highest key
func (tree *Tree) Max() (interface{}, error) {
	p := tree.root.last()
	if nil == p {
		return nil, fault.ErrEmptyTree
	}
	return p.value, nil
}
