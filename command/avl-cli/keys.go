// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// how a line is turned into its ordering key
type keyer struct {
	field   int // 0 => the whole line
	numeric bool
}

func (k keyer) key(line string) (avl.Item, error) {

	s := line
	if k.field > 0 {
		fields := strings.Fields(line)
		if k.field > len(fields) {
			return nil, fault.ErrMissingField
		}
		s = fields[k.field-1]
	}

	if !k.numeric {
		return avl.String(s), nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if nil != err {
		return nil, fault.ErrNotANumber
	}
	return avl.Float(f), nil
}

// the key function for trees of lines; nil for a line that has no key
func (k keyer) keyFunc() avl.KeyFunc {
	return func(value interface{}) avl.Item {
		line, ok := value.(string)
		if !ok {
			return nil
		}
		item, err := k.key(line)
		if nil != err {
			return nil
		}
		return item
	}
}
