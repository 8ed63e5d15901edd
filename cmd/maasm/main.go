// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command maasm assembles one or more source files for the
// educational fixed-width CPU. Each positional argument is a path
// prefix P; maasm reads P.as, always writes P.am, and on success
// writes P.ob and, as applicable, P.ent and P.ext.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cartagon/maasm/assembler"
)

func init() {
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: maasm prefix ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.CommandLine.Usage()
		os.Exit(0)
	}

	for _, prefix := range args {
		if err := assembler.AssembleFile(prefix); err != nil {
			fmt.Fprintf(os.Stdout, "%s: %v\n", prefix, err)
		}
	}
}
