// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered set with parent pointers
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// A tree either holds values that are their own keys (values must
// implement Item) or holds arbitrary values ordered by a key that a
// KeyFunc derives once, when the value is inserted.  Only one value is
// kept for each key; adding a value with an existing key is a no-op.
// All keys of one tree share a dynamic type: a value whose key has
// another type is absent for Contains, Get and Discard, and makes the
// set operations fail with fault.ErrTypeMismatch.
//
// Every node caches its height and after each insertion or deletion the
// heights are repaired by walking up the parent links to the root,
// rotating any node whose balance factor leaves [-1, +1].
//
// Iterators hold references into the live tree; modifying a tree while
// one of its iterators is in use is a programming error.
package avl
