// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/cartagon/maasm/internal/diag"
)

// macro is a single "macr NAME" .. "endmacr" definition recorded
// during expansion.
type macro struct {
	name string
	body []string
}

// expandState is the macro expander's two-state machine (spec.md
// §4.1): outside accumulates ordinary lines and watches for "macr";
// inside a definition, lines are appended to the macro body until
// "endmacr" closes it.
type expandState int

const (
	expandOutside expandState = iota
	expandInside
)

// expandMacros reads a .as source from r, expands every macro
// invocation against its definition, and writes the resulting .am
// text to w. Diagnostics are collected rather than aborting the scan,
// matching the rest of this package's never-abort-mid-pass style
// (grounded on the teacher's asmerror/addError idiom, generalized into
// internal/diag).
func expandMacros(r io.Reader, w io.Writer, rep *diag.Report) []string {
	macros := prefixtree.New[*macro]()
	state := expandOutside
	var current *macro
	var names []string

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		l := newLine(lineNum, raw).stripComment()

		first, rest := firstToken(l)

		switch state {
		case expandOutside:
			switch first {
			case "macr":
				name, trailing := firstToken(rest)
				if name == "" {
					rep.Errorf(lineNum, "macro definition missing a name")
					continue
				}
				if !trailing.isEmpty() {
					rep.Errorf(lineNum, "no additional characters are allowed after a macro name")
					continue
				}
				if isReservedWord(name) {
					rep.Errorf(lineNum, "macro name '%s' is a reserved word", name)
					continue
				}
				current = &macro{name: name}
				state = expandInside
			case "endmacr":
				rep.Errorf(lineNum, "endmacr with no matching macr")
			default:
				// FindValue matches on unambiguous prefix, not exact
				// name, so the stored macro's own name is checked
				// against first before its body is substituted in —
				// otherwise an ordinary line starting with a proper
				// prefix of a macro name would be expanded by mistake.
				if first != "" {
					if m, err := macros.FindValue(first); err == nil && m.name == first {
						for _, bl := range m.body {
							fmt.Fprintln(w, bl)
						}
						continue
					}
				}
				fmt.Fprintln(w, raw)
			}

		case expandInside:
			if first == "endmacr" {
				if !rest.isEmpty() {
					rep.Errorf(lineNum, "no additional characters are allowed on the endmacr line")
				}
				macros.Add(current.name, current)
				names = append(names, current.name)
				current = nil
				state = expandOutside
				continue
			}
			current.body = append(current.body, raw)
		}
	}

	if state == expandInside {
		rep.Errorf(lineNum, "macro '%s' missing endmacr", current.name)
	}

	return names
}

// firstToken splits l into its first whitespace-delimited token and
// the remainder of the line (with leading whitespace consumed).
func firstToken(l line) (token string, rest line) {
	l = l.consumeWhitespace()
	tok, remain := l.consumeUntil(isSpace)
	return strings.TrimSpace(tok.String()), remain.consumeWhitespace()
}
