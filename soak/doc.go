// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package soak - long running randomised verification of the avl tree
//
// Each worker owns a private tree and a map holding the same keys.  A
// random mix of insertions, deletions and pops is applied to both and
// after every mutation the tree must pass its structural check, stay
// within the AVL height bound and agree with the map.  Periodically the
// tree is also compared with a bulk built copy of itself using the set
// operations.
//
// Workers never share a tree, only the rate limiter and the operation
// counters.
package soak
