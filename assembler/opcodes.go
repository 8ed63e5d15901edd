// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import "github.com/beevik/prefixtree/v2"

// addrMode is one of the four operand addressing modes (spec.md §3, §6).
type addrMode int

const (
	modeImmediate addrMode = iota // #N
	modeDirect                    // NAME
	modeIndirectReg               // *rX
	modeDirectReg                 // rX
)

// opcode describes one of the 16 fixed instructions: its numeric
// encoding, operand count, and the addressing modes it permits for
// each operand role. Grounded on original_source/first_pass.c's
// information_operation/instructions_table, which is the one place the
// per-operand addressing-mode masks are spelled out exactly.
type opcode struct {
	name        string
	code        int
	numOperands int
	sourceModes [4]bool
	targetModes [4]bool
}

func allModes(m0, m1, m2, m3 bool) [4]bool {
	return [4]bool{m0, m1, m2, m3}
}

var opcodeTable = []opcode{
	{"mov", 0, 2, allModes(true, true, true, true), allModes(false, true, true, true)},
	{"cmp", 1, 2, allModes(true, true, true, true), allModes(true, true, true, true)},
	{"add", 2, 2, allModes(true, true, true, true), allModes(false, true, true, true)},
	{"sub", 3, 2, allModes(true, true, true, true), allModes(false, true, true, true)},
	{"lea", 4, 2, allModes(false, true, false, false), allModes(false, true, true, true)},
	{"clr", 5, 1, allModes(false, false, false, false), allModes(false, true, true, true)},
	{"not", 6, 1, allModes(false, false, false, false), allModes(false, true, true, true)},
	{"inc", 7, 1, allModes(false, false, false, false), allModes(false, true, true, true)},
	{"dec", 8, 1, allModes(false, false, false, false), allModes(false, true, true, true)},
	{"jmp", 9, 1, allModes(false, false, false, false), allModes(false, true, true, false)},
	{"bne", 10, 1, allModes(false, false, false, false), allModes(false, true, true, false)},
	{"red", 11, 1, allModes(false, false, false, false), allModes(false, true, true, true)},
	{"prn", 12, 1, allModes(false, false, false, false), allModes(true, true, true, true)},
	{"jsr", 13, 1, allModes(false, false, false, false), allModes(false, true, true, false)},
	{"rts", 14, 0, allModes(false, false, false, false), allModes(false, false, false, false)},
	{"stop", 15, 0, allModes(false, false, false, false), allModes(false, false, false, false)},
}

// opcodesByName resolves a mnemonic to its opcode record. It is a
// *prefixtree.Tree rather than a map because the macro table and the
// reserved-word table in this package use the same structure for the
// same reason (exact lookups over a small closed vocabulary) — see
// DESIGN.md.
var opcodesByName = buildOpcodeTree()

func buildOpcodeTree() *prefixtree.Tree[*opcode] {
	t := prefixtree.New[*opcode]()
	for i := range opcodeTable {
		t.Add(opcodeTable[i].name, &opcodeTable[i])
	}
	return t
}

// lookupOpcode resolves a mnemonic to its opcode record. FindValue
// matches on unambiguous prefix, not exact name (that's the whole
// point of a prefix tree for the teacher's REPL abbreviation use — see
// test6502/test6502.go's ErrPrefixAmbiguous handling) so a proper
// prefix like "mo" would otherwise resolve to "mov". Spec.md §4.2
// requires an exact mnemonic, so the returned record's name is checked
// against the query before it is accepted.
func lookupOpcode(name string) (*opcode, bool) {
	op, err := opcodesByName.FindValue(name)
	if err != nil || op.name != name {
		return nil, false
	}
	return op, true
}

// allowsMode reports whether op permits addrMode m for the given role.
func (op *opcode) allowsMode(m addrMode, target bool) bool {
	if target {
		return op.targetModes[m]
	}
	return op.sourceModes[m]
}

// oneHot returns the 4-bit one-hot addressing-mode field used in an
// instruction's first word (spec.md §4.2: 0001/0010/0100/1000 for
// modes 0/1/2/3).
func (m addrMode) oneHot() string {
	switch m {
	case modeImmediate:
		return "0001"
	case modeDirect:
		return "0010"
	case modeIndirectReg:
		return "0100"
	case modeDirectReg:
		return "1000"
	default:
		return "0000"
	}
}
