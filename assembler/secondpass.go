// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

// runSecondPass merges provisional .entry records, checks for
// duplicate/conflicting symbols, and resolves every placeholder
// instruction word against the symbol table. Grounded on
// original_source/second_pass.c's merge_entry_labels,
// check_entry_extern_conflict, check_duplicate_labels, and
// update_code_words, each kept here as its own step in the same
// order the original runs them.
func runSecondPass(ctx *Context) {
	mergeEntries(ctx)
	checkEntryExternConflicts(ctx)
	checkDuplicateLabels(ctx)
	resolveSymbols(ctx)
}

// mergeEntries implements spec.md §4.3 step 1: a provisional .entry
// record (address == -1) is merged into the non-extern symbol it
// names and then discarded; a provisional record with no matching
// definition is an error.
func mergeEntries(ctx *Context) {
	var provisional []*symbol
	for _, s := range ctx.symtab.symbols {
		if s.isEntry && s.address == -1 {
			provisional = append(provisional, s)
		}
	}

	for _, p := range provisional {
		var target *symbol
		for _, s := range ctx.symtab.symbols {
			if s == p || s.name != p.name {
				continue
			}
			if s.isExtern {
				continue
			}
			target = s
			break
		}
		if target == nil {
			ctx.report.Errorf(p.sourceLine, "entry label '%s' is not defined", p.name)
			continue
		}
		target.isEntry = true
		ctx.symtab.remove(p)
	}
}

// checkEntryExternConflicts implements spec.md §4.3 step 2.
func checkEntryExternConflicts(ctx *Context) {
	for _, s := range ctx.symtab.symbols {
		if !s.isEntry {
			continue
		}
		for _, other := range ctx.symtab.symbols {
			if other != s && other.name == s.name && other.isExtern {
				ctx.report.Errorf(s.sourceLine, "'%s' is declared both .entry and .extern", s.name)
			}
		}
	}
}

// checkDuplicateLabels implements spec.md §4.3 step 3: any two
// symbol records sharing a name are a conflict, even when exactly one
// of them is extern (a file must not both import and locally define
// the same name).
func checkDuplicateLabels(ctx *Context) {
	seen := map[string]bool{}
	reported := map[string]bool{}
	for _, s := range ctx.symtab.symbols {
		if seen[s.name] && !reported[s.name] {
			ctx.report.Errorf(s.sourceLine, "duplicate symbol '%s'", s.name)
			reported[s.name] = true
		}
		seen[s.name] = true
	}
}

// resolveSymbols implements spec.md §4.3 step 4: every unresolved
// instruction word is replaced with its final 15-bit encoding, and
// external references are recorded as they are discovered.
func resolveSymbols(ctx *Context) {
	for i := range ctx.instrWords {
		w := ctx.instrWords[i]
		if w.isResolved() {
			continue
		}
		sym := ctx.symtab.find(w.symbol)
		if sym == nil {
			ctx.report.Errorf(w.source, "undefined label '%s'", w.symbol)
			continue
		}
		if sym.isExtern {
			ctx.instrWords[i] = w.resolve(0, areExternal)
			ctx.externRefs = append(ctx.externRefs, externRef{name: sym.name, address: w.address})
			continue
		}
		ctx.instrWords[i] = w.resolve(sym.address, areRelocatable)
	}
}

// remove deletes s from the table. Used only by entry merging, which
// discards a provisional .entry record once it has been folded into
// the symbol it names.
func (t *symbolTable) remove(s *symbol) {
	out := t.symbols[:0]
	for _, x := range t.symbols {
		if x != s {
			out = append(out, x)
		}
	}
	t.symbols = out
}
