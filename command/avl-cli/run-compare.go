// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type comparison struct {
	Left           string `json:"left"`
	Right          string `json:"right"`
	LeftCount      int    `json:"left_count"`
	RightCount     int    `json:"right_count"`
	Equal          bool   `json:"equal"`
	Subset         bool   `json:"subset"`
	Superset       bool   `json:"superset"`
	ProperSubset   bool   `json:"proper_subset"`
	ProperSuperset bool   `json:"proper_superset"`
	Disjoint       bool   `json:"disjoint"`
}

func runCompare(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 2 != len(c.Args()) {
		return fmt.Errorf("exactly two file names are required, %d given", len(c.Args()))
	}
	trees, err := readSets(m, c.Args(), 2)
	if nil != err {
		return err
	}
	left, right := trees[0], trees[1]

	out := comparison{
		Left:           c.Args().Get(0),
		Right:          c.Args().Get(1),
		LeftCount:      left.Len(),
		RightCount:     right.Len(),
		Equal:          left.Equal(right),
		Subset:         left.IsSubset(right),
		Superset:       left.IsSuperset(right),
		ProperSubset:   left.IsProperSubset(right),
		ProperSuperset: left.IsProperSuperset(right),
		Disjoint:       left.IsDisjoint(right),
	}
	return printJson(m.w, out)
}
