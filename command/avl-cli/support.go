// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/util"
)

// read one set from a file, "-" is standard input
func readSet(m *metadata, fileName string) (*avl.Tree, error) {

	var r io.Reader
	if "-" == fileName {
		r = m.r
	} else {
		if !util.EnsureFileExists(fileName) {
			return nil, fmt.Errorf("file: %q does not exist", fileName)
		}
		f, err := os.Open(fileName)
		if nil != err {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	values := make([]interface{}, 0, 64)
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimRight(scanner.Text(), "\r")
		if "" == strings.TrimSpace(line) {
			continue
		}
		if _, err := m.keyer.key(line); nil != err {
			return nil, fmt.Errorf("%s:%d: %s", fileName, lineNumber, err)
		}
		values = append(values, line)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	tree := avl.FromSlice(values, m.keyer.keyFunc())

	if m.verbose {
		fmt.Fprintf(m.e, "read: %s  lines: %d  values: %d  height: %d\n", fileName, len(values), tree.Len(), tree.Height())
	}
	return tree, nil
}

// read every file named in the arguments, requiring at least minimum
func readSets(m *metadata, fileNames []string, minimum int) ([]*avl.Tree, error) {

	if len(fileNames) < minimum {
		return nil, fmt.Errorf("at least %d file names are required, %d given", minimum, len(fileNames))
	}

	stdin := 0
	for _, fileName := range fileNames {
		if "-" == fileName {
			stdin += 1
		}
	}
	if stdin > 1 {
		return nil, fault.ErrStandardInputRepeated
	}

	trees := make([]*avl.Tree, len(fileNames))
	for i, fileName := range fileNames {
		tree, err := readSet(m, fileName)
		if nil != err {
			return nil, err
		}
		trees[i] = tree
	}
	return trees, nil
}

// write the values one per line
func printValues(m *metadata, it avl.Iterator) {
	w := bufio.NewWriter(m.w)
	defer w.Flush()

	for it.Next() {
		fmt.Fprintf(w, "%s\n", it.Value())
	}
}
