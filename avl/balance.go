// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// replace the sub-tree rooted at a with the sub-tree rooted at b
// (which may be nil); a keeps its own child links
func (tree *Tree) transplant(a *node, b *node) {
	up := a.up
	switch {
	case nil == up:
		tree.root = b
	case a == up.left:
		up.left = b
	default:
		up.right = b
	}
	if nil != b {
		b.up = up
	}
}

// walk from p up to the root repairing heights and rotating any node
// whose balance factor is outside [-1, +1]
func (tree *Tree) rebalance(p *node) {
	for nil != p {
		p.update()
		switch b := p.balance(); {
		case b > 1: // left heavy
			if p.left.balance() < 0 {
				// double LR rotation
				tree.rotateLeft(p.left)
			}
			p = tree.rotateRight(p)
		case b < -1: // right heavy
			if p.right.balance() > 0 {
				// double RL rotation
				tree.rotateRight(p.right)
			}
			p = tree.rotateLeft(p)
		}
		p = p.up
	}
}

// promote the right child of p into its place; returns the new
// sub-tree root
func (tree *Tree) rotateLeft(p *node) *node {
	p1 := p.right
	tree.transplant(p, p1)
	p.setRight(p1.left)
	p1.setLeft(p)
	p.update()
	p1.update()
	return p1
}

// promote the left child of p into its place; returns the new
// sub-tree root
func (tree *Tree) rotateRight(p *node) *node {
	p1 := p.left
	tree.transplant(p, p1)
	p.setLeft(p1.right)
	p1.setRight(p)
	p.update()
	p1.update()
	return p1
}
