// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

// symbol is one entry in a file's symbol table (spec.md §3).
type symbol struct {
	name       string
	address    int
	beforeData bool // true for a .data/.string label recorded in the first pass, whose DC-relative address finishFirstPass offsets by the final IC
	isEntry    bool
	isExtern   bool
	sourceLine int
}

// symbolTable holds the symbols declared in one source file, in
// declaration order. It is kept as a plain slice rather than a map or
// linked list: declaration order matters for diagnostic ordering, and
// duplicate names must be allowed to accumulate across the first pass
// so the second pass can report every conflicting declaration (spec.md
// design note 9) rather than silently overwriting one with another.
type symbolTable struct {
	symbols []*symbol
}

// define appends a new symbol and returns it. It performs no
// validation and does not reject a name that is already present:
// duplicate names accumulate here and are reported by the second pass.
func (t *symbolTable) define(name string, address int, sourceLine int) *symbol {
	s := &symbol{name: name, address: address, sourceLine: sourceLine}
	t.symbols = append(t.symbols, s)
	return s
}

// find returns the most recently defined symbol with the given name,
// or nil if none exists. Second-pass duplicate checking walks
// t.symbols directly rather than relying on find, since it must see
// every entry with a given name, not just the last.
func (t *symbolTable) find(name string) *symbol {
	var found *symbol
	for _, s := range t.symbols {
		if s.name == name {
			found = s
		}
	}
	return found
}

// all returns every symbol sharing name, in declaration order.
func (t *symbolTable) all(name string) []*symbol {
	var out []*symbol
	for _, s := range t.symbols {
		if s.name == name {
			out = append(out, s)
		}
	}
	return out
}

// entries returns every symbol marked as an entry point.
func (t *symbolTable) entries() []*symbol {
	var out []*symbol
	for _, s := range t.symbols {
		if s.isEntry {
			out = append(out, s)
		}
	}
	return out
}

// externs returns every symbol declared via .extern.
func (t *symbolTable) externs() []*symbol {
	var out []*symbol
	for _, s := range t.symbols {
		if s.isExtern {
			out = append(out, s)
		}
	}
	return out
}
