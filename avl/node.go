// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node struct {
	left   *node       // left sub-tree
	right  *node       // right sub-tree
	up     *node       // points to parent node
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	height int         // 0 for a leaf; an absent sub-tree is -1
}

// allocate a node, height is derived from the supplied children
func newNode(key Item, value interface{}, left *node, right *node) *node {
	p := &node{
		key:   key,
		value: value,
	}
	p.setLeft(left)
	p.setRight(right)
	p.update()
	return p
}

// attach a left sub-tree and point its parent link back here
func (p *node) setLeft(child *node) {
	p.left = child
	if nil != child {
		child.up = p
	}
}

// attach a right sub-tree and point its parent link back here
func (p *node) setRight(child *node) {
	p.right = child
	if nil != child {
		child.up = p
	}
}

// height of a possibly absent sub-tree
func height(p *node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height from the children
func (p *node) update() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
}

// left height minus right height
func (p *node) balance() int {
	return height(p.left) - height(p.right)
}

// internal: lowest node in a sub-tree
func (p *node) first() *node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node) last() *node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// drop all links so a removed node cannot reach the tree
func (p *node) detach() {
	p.left = nil
	p.right = nil
	p.up = nil
}
