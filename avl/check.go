// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Check - run all the consistency checks
func (tree *Tree) Check() error {
	for _, check := range []func() error{
		tree.CheckUp,
		tree.CheckOrder,
		tree.CheckHeights,
		tree.CheckCount,
	} {
		if err := check(); nil != err {
			return err
		}
	}
	return nil
}

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() error {
	if !checkup(tree.root, nil) {
		return fault.ErrBrokenParentLink
	}
	return nil
}

// internal: consistency checker
func checkup(p *node, up *node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckOrder - keys strictly ascending in traversal order
func (tree *Tree) CheckOrder() error {
	var previous Item
	for it := tree.Iterate().(*traversal); it.Next(); {
		key := it.current.key
		if nil != previous && previous.Compare(key) >= 0 {
			return fault.ErrBrokenOrder
		}
		previous = key
	}
	return nil
}

// CheckHeights - cached heights are exact and balance is in [-1, +1]
func (tree *Tree) CheckHeights() error {
	_, err := checkHeights(tree.root)
	return err
}

// internal: returns the computed height of the sub-tree
func checkHeights(p *node) (int, error) {
	if nil == p {
		return -1, nil
	}
	hl, err := checkHeights(p.left)
	if nil != err {
		return 0, err
	}
	hr, err := checkHeights(p.right)
	if nil != err {
		return 0, err
	}
	h := hr + 1
	if hl > hr {
		h = hl + 1
	}
	if h != p.height {
		return 0, fault.ErrBrokenHeight
	}
	if b := hl - hr; b > 1 || b < -1 {
		return 0, fault.ErrUnbalanced
	}
	return h, nil
}

// CheckCount - the cached count matches the reachable nodes
func (tree *Tree) CheckCount() error {
	n := 0
	for it := tree.Iterate(); it.Next(); {
		n += 1
	}
	if n != tree.count {
		return fault.ErrBrokenCount
	}
	return nil
}
