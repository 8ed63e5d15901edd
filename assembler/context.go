// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import "github.com/cartagon/maasm/internal/diag"

const initialIC = 100

// externRef is one recorded use of an external symbol (spec.md §3).
// Duplicates are expected: one record per reference site.
type externRef struct {
	name    string
	address int
}

// Context holds all per-file assembler state: the instruction and
// data counters, the current source line, and the tables built up by
// the first and second passes. Spec.md design note 9 calls out the
// original's use of process-wide globals for IC/DC/line_number; this
// type is their replacement, created fresh for each input file and
// discarded once that file's assembly completes (see assembler.go).
type Context struct {
	ic         int
	dc         int
	lineNumber int

	symtab     symbolTable
	instrWords []word
	dataWords  []word
	externRefs []externRef

	report diag.Report
}

func newContext() *Context {
	return &Context{ic: initialIC}
}

// finalIC is the address one past the last instruction word, i.e. the
// data section's base address.
func (c *Context) finalIC() int {
	return c.ic
}
