// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/avl"
)

// combine two trees into a new one
type combiner func(a *avl.Tree, b *avl.Tree) (*avl.Tree, error)

func runUnion(c *cli.Context) error {
	return fold(c, func(a *avl.Tree, b *avl.Tree) (*avl.Tree, error) {
		return a.Union(b)
	})
}

func runIntersection(c *cli.Context) error {
	return fold(c, func(a *avl.Tree, b *avl.Tree) (*avl.Tree, error) {
		return a.Intersection(b), nil
	})
}

func runDifference(c *cli.Context) error {
	return fold(c, func(a *avl.Tree, b *avl.Tree) (*avl.Tree, error) {
		return a.Difference(b), nil
	})
}

func runSymmetricDifference(c *cli.Context) error {
	return fold(c, func(a *avl.Tree, b *avl.Tree) (*avl.Tree, error) {
		return a.SymmetricDifference(b)
	})
}

// apply the operation left to right over every input then print
func fold(c *cli.Context, operation combiner) error {

	m := c.App.Metadata["config"].(*metadata)

	trees, err := readSets(m, c.Args(), 2)
	if nil != err {
		return err
	}

	result := trees[0]
	for _, tree := range trees[1:] {
		result, err = operation(result, tree)
		if nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s: values: %d  height: %d\n", c.Command.Name, result.Len(), result.Height())
	}
	printValues(m, result.Iterate())
	return nil
}
