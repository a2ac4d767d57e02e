// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Iterator - a lazy pass over the values of a container
//
//	for it := tree.Iterate(); it.Next(); {
//	        v := it.Value()
//	        …
//	}
type Iterator interface {
	Next() bool         // advance, false when exhausted
	Value() interface{} // value at the current position
}

// explicit stack traversal; the stack never exceeds the tree height
type traversal struct {
	p       *node
	stack   []*node
	current *node
	reverse bool
}

// Iterate - ascending traversal of the values
//
// every call starts an independent traversal
func (tree *Tree) Iterate() Iterator {
	return &traversal{
		p:     tree.root,
		stack: make([]*node, 0, tree.Height()),
	}
}

// Reverse - descending traversal of the values
func (tree *Tree) Reverse() Iterator {
	return &traversal{
		p:       tree.root,
		stack:   make([]*node, 0, tree.Height()),
		reverse: true,
	}
}

// Next - push the near spine, pop, then descend to the far side
func (t *traversal) Next() bool {
	for nil != t.p {
		t.stack = append(t.stack, t.p)
		if t.reverse {
			t.p = t.p.right
		} else {
			t.p = t.p.left
		}
	}
	n := len(t.stack)
	if 0 == n {
		t.current = nil
		return false
	}
	t.current = t.stack[n-1]
	t.stack = t.stack[:n-1]
	if t.reverse {
		t.p = t.current.left
	} else {
		t.p = t.current.right
	}
	return true
}

// Value - nil before the first Next or after exhaustion
func (t *traversal) Value() interface{} {
	if nil == t.current {
		return nil
	}
	return t.current.value
}

// Values - all values in ascending key order
func (tree *Tree) Values() []interface{} {
	values := make([]interface{}, 0, tree.count)
	for it := tree.Iterate(); it.Next(); {
		values = append(values, it.Value())
	}
	return values
}
