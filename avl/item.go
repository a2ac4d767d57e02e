// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"bytes"
	"strings"
)

// Item - a key item must implement the Compare function
//
// Compare returns a negative number, zero or a positive number when the
// receiver is less than, equal to or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// KeyFunc - derive the ordering key from a stored value
//
// returning nil marks the value as one that cannot be ordered
type KeyFunc func(value interface{}) Item

// String - a string key
type String string

// Compare - lexical comparison
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// Int - an integer key
type Int int

// Compare - numeric comparison
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// Float - a floating point key
type Float float64

// Compare - numeric comparison, NaN orders below every number and
// equal to itself
func (f Float) Compare(x interface{}) int {
	g := x.(Float)
	switch {
	case f < g || (f != f && g == g):
		return -1
	case f > g || (f == f && g != g):
		return 1
	default:
		return 0
	}
}

// Bytes - a byte slice key
type Bytes []byte

// Compare - lexical comparison of the bytes
func (b Bytes) Compare(x interface{}) int {
	return bytes.Compare(b, x.(Bytes))
}
