// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/urfave/cli"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/avlset/avl"
)

// version byte prefix for a set fingerprint
const (
	fingerprintVersion byte = 0x01
)

type fingerprintResult struct {
	FileName    string `json:"file_name"`
	Count       int    `json:"count"`
	Fingerprint string `json:"fingerprint"`
	Base58      string `json:"base58"`
}

// digest of the values in key order, so files holding the same set
// in any order agree
func fingerprint(tree *avl.Tree) []byte {
	h := sha3.New512()
	for it := tree.Iterate(); it.Next(); {
		fmt.Fprintf(h, "%s\n", it.Value())
	}
	return append([]byte{fingerprintVersion}, h.Sum(nil)...)
}

func runFingerprint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	trees, err := readSets(m, c.Args(), 1)
	if nil != err {
		return err
	}

	out := make([]fingerprintResult, len(trees))
	for i, tree := range trees {
		fp := fingerprint(tree)
		out[i] = fingerprintResult{
			FileName:    c.Args().Get(i),
			Count:       tree.Len(),
			Fingerprint: fmt.Sprintf("%x", fp),
			Base58:      base58.Encode(fp),
		}
	}
	return printJson(m.w, out)
}
