// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

// merge all inputs into one ordered set
func runSort(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	trees, err := readSets(m, c.Args(), 1)
	if nil != err {
		return err
	}

	result := trees[0]
	for _, tree := range trees[1:] {
		if err := result.Update(tree); nil != err {
			return err
		}
	}

	if c.Bool("reverse") {
		printValues(m, result.Reverse())
	} else {
		printValues(m, result.Iterate())
	}
	return nil
}
