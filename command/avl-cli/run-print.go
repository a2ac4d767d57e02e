// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

// draw the tree built from a single file
func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != len(c.Args()) {
		return fmt.Errorf("exactly one file name is required, %d given", len(c.Args()))
	}
	tree, err := readSet(m, c.Args().Get(0))
	if nil != err {
		return err
	}

	if err := tree.Check(); nil != err {
		return err
	}

	depth := tree.Print(m.w, c.Bool("data"))
	if m.verbose {
		fmt.Fprintf(m.e, "values: %d  depth: %d\n", tree.Len(), depth)
	}
	return nil
}
