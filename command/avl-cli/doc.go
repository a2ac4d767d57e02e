// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - ordered set operations over line oriented text files
//
// every non-blank line of an input file is one value; "-" reads
// standard input.  Lines are ordered by the whole line or, with
// --field=N, by their N-th whitespace separated field.  --numeric
// compares those keys as numbers.  Lines with equal keys collapse to a
// single value, the last one read wins.
//
// e.g. the accounts in both files, ordered by balance in column 2:
//
//	avl-cli --field=2 --numeric intersection january.txt february.txt
package main
