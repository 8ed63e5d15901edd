// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

// checkMacroSymbolCollisions implements the cross-check stage (spec.md
// §2 item 3): no symbol defined by the first pass may share a name
// with a macro defined during expansion.
func checkMacroSymbolCollisions(ctx *Context, macroNames []string) {
	if len(macroNames) == 0 {
		return
	}
	names := make(map[string]bool, len(macroNames))
	for _, n := range macroNames {
		names[n] = true
	}
	for _, s := range ctx.symtab.symbols {
		if names[s.name] {
			ctx.report.Errorf(s.sourceLine, "symbol '%s' collides with a macro name", s.name)
		}
	}
}
