// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"fmt"
	"io"
)

// writeObjectFile implements spec.md §4.4's .ob format: a header line
// of "(IC_final-100) DC_final", then one line per instruction word and
// one line per data word, in insertion order. Grounded on
// original_source/second_pass.c's create_object_file.
func writeObjectFile(ctx *Context, w io.Writer) {
	fmt.Fprintf(w, "%d %d\n", ctx.finalIC()-initialIC, ctx.dc)
	for _, wd := range ctx.instrWords {
		fmt.Fprintf(w, "%04d %s\n", wd.address, toOctal(wd.fullBits()))
	}
	for _, wd := range ctx.dataWords {
		fmt.Fprintf(w, "%04d %s\n", wd.address, toOctal(wd.fullBits()))
	}
}

// writeEntriesFile implements the .ent format. Called only when at
// least one symbol is an entry (see assembler.go).
func writeEntriesFile(ctx *Context, w io.Writer) {
	for _, s := range ctx.symtab.symbols {
		if s.isEntry {
			fmt.Fprintf(w, "%s %04d\n", s.name, s.address)
		}
	}
}

// writeExternsFile implements the .ext format. Called only when at
// least one external reference was recorded (see assembler.go).
func writeExternsFile(ctx *Context, w io.Writer) {
	for _, ref := range ctx.externRefs {
		fmt.Fprintf(w, "%s %04d\n", ref.name, ref.address)
	}
}

func hasEntries(ctx *Context) bool {
	for _, s := range ctx.symtab.symbols {
		if s.isEntry {
			return true
		}
	}
	return false
}
