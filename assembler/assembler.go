// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembler implements the two-pass translation pipeline:
// macro expansion, first pass, a macro/symbol cross-check, second
// pass, and emission of the object, entries, and externals listings.
package assembler

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cartagon/maasm/internal/diag"
)

// Result holds everything produced by assembling one source file.
// Object/Entries/Externs are empty whenever Report.HasErrors() is
// true — spec.md §4.4/P7: no output is emitted if any stage failed.
type Result struct {
	Report     diag.Report
	Expanded   string // .am content, always populated
	Object     string // .ob content
	Entries    string // .ent content
	Externs    string // .ext content
	HasEntries bool
	HasExterns bool
}

// Assemble runs the full pipeline against in-memory source text. This
// is the seam used by tests (including the P6 round-trip property,
// which re-feeds Result.Expanded back into Assemble and compares
// outputs) and by AssembleFile, which wraps it with real file I/O.
func Assemble(src io.Reader) *Result {
	ctx := newContext()

	var expanded strings.Builder
	macroNames := expandMacros(src, &expanded, &ctx.report)
	result := &Result{Expanded: expanded.String()}

	runFirstPass(ctx, strings.NewReader(result.Expanded))
	checkMacroSymbolCollisions(ctx, macroNames)
	runSecondPass(ctx)

	result.Report = ctx.report
	if ctx.report.HasErrors() {
		return result
	}

	var ob, ent, ext strings.Builder
	writeObjectFile(ctx, &ob)
	result.Object = ob.String()

	if hasEntries(ctx) {
		writeEntriesFile(ctx, &ent)
		result.Entries = ent.String()
		result.HasEntries = true
	}
	if len(ctx.externRefs) > 0 {
		writeExternsFile(ctx, &ext)
		result.Externs = ext.String()
		result.HasExterns = true
	}

	return result
}

// AssembleFile reads prefix+".as", always writes prefix+".am", and on
// success writes prefix+".ob" and, as applicable, prefix+".ent" and
// prefix+".ext" (spec.md §6). It reports diagnostics to stdout and
// never returns a non-nil error for assembly failures — only for I/O
// failures opening the input file or writing an output file, matching
// this package's continue-and-report philosophy.
func AssembleFile(prefix string) error {
	in, err := os.Open(prefix + ".as")
	if err != nil {
		return fmt.Errorf("cannot open %s.as: %w", prefix, err)
	}
	defer in.Close()

	result := Assemble(in)

	if err := os.WriteFile(prefix+".am", []byte(result.Expanded), 0644); err != nil {
		return fmt.Errorf("cannot write %s.am: %w", prefix, err)
	}

	result.Report.Print(os.Stdout)

	if result.Report.HasErrors() {
		fmt.Fprintf(os.Stdout, "%s: assembly failed, no output files written\n", prefix)
		return nil
	}

	if err := os.WriteFile(prefix+".ob", []byte(result.Object), 0644); err != nil {
		return fmt.Errorf("cannot write %s.ob: %w", prefix, err)
	}
	if result.HasEntries {
		if err := os.WriteFile(prefix+".ent", []byte(result.Entries), 0644); err != nil {
			return fmt.Errorf("cannot write %s.ent: %w", prefix, err)
		}
	}
	if result.HasExterns {
		if err := os.WriteFile(prefix+".ext", []byte(result.Externs), 0644); err != nil {
			return fmt.Errorf("cannot write %s.ext: %w", prefix, err)
		}
	}

	return nil
}
