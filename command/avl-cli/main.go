// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/fault"
)

type metadata struct {
	keyer   keyer
	verbose bool
	r       io.Reader
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "ordered set operations on line files"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.IntFlag{
			Name:  "field, f",
			Value: 0,
			Usage: " order by whitespace separated field `N` (0 = whole line)",
		},
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " compare keys as numbers",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "merge files into one ordered set of unique lines",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " descending order",
				},
			},
			Action: runSort,
		},
		{
			Name:      "union",
			Usage:     "lines in any file",
			ArgsUsage: "FILE FILE...",
			Action:    runUnion,
		},
		{
			Name:      "intersection",
			Usage:     "lines in every file",
			ArgsUsage: "FILE FILE...",
			Action:    runIntersection,
		},
		{
			Name:      "difference",
			Usage:     "lines of the first file that are in none of the others",
			ArgsUsage: "FILE FILE...",
			Action:    runDifference,
		},
		{
			Name:      "symmetric-difference",
			Usage:     "lines in exactly one of two files, folded left to right",
			ArgsUsage: "FILE FILE...",
			Action:    runSymmetricDifference,
		},
		{
			Name:      "compare",
			Usage:     "subset, superset, equality and disjointness as JSON",
			ArgsUsage: "FILE FILE",
			Action:    runCompare,
		},
		{
			Name:      "print",
			Usage:     "draw the balanced tree of a file",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include values, heights and balance factors",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "fingerprint",
			Usage:     "order independent digest of each file's set",
			ArgsUsage: "FILE...",
			Action:    runFingerprint,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		field := c.GlobalInt("field")
		if field < 0 {
			return fault.ErrInvalidFieldNumber
		}

		c.App.Metadata["config"] = &metadata{
			keyer: keyer{
				field:   field,
				numeric: c.GlobalBool("numeric"),
			},
			verbose: c.GlobalBool("verbose"),
			r:       r,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
