// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"bufio"
	"io"
	"strings"
)

// runFirstPass reads an expanded (.am) source from r into ctx,
// building the symbol table and the instruction/data word lists.
// Grounded on original_source/first_pass.c's per-line dispatch, with
// the IC/DC/line_number globals replaced by Context fields per
// spec.md design note 9.
func runFirstPass(ctx *Context, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ctx.lineNumber++
		ctx.processLine(scanner.Text())
	}

	if ctx.report.HasErrors() {
		return
	}
	ctx.finishFirstPass()
}

// finishFirstPass applies the end-of-file address adjustment: data
// words and before-data symbols are offset by the final IC, which is
// only known once every instruction has been scanned (spec.md §4.2).
func (ctx *Context) finishFirstPass() {
	for i := range ctx.dataWords {
		ctx.dataWords[i].address += ctx.ic
	}
	for _, s := range ctx.symtab.symbols {
		if s.beforeData {
			s.address += ctx.ic
		}
	}
}

func (ctx *Context) processLine(raw string) {
	l := newLine(ctx.lineNumber, raw).stripComment()
	trimmed := l.consumeWhitespace()
	if trimmed.isEmpty() {
		return
	}

	rest, hasLabel, labelName, ok := ctx.parseLabel(trimmed)
	if !ok {
		return
	}

	if rest.isEmpty() {
		if hasLabel {
			ctx.report.Errorf(ctx.lineNumber, "label '%s' has no statement", labelName)
		} else {
			ctx.report.Errorf(ctx.lineNumber, "empty statement")
		}
		return
	}

	if rest.startsWithChar('.') {
		ctx.processDirective(rest.consume(1), hasLabel, labelName)
		return
	}

	ctx.processInstruction(rest, hasLabel, labelName)
}

// parseLabel recognizes an optional "NAME:" prefix. It reports
// whether parsing may continue (ok==false means an error was already
// recorded and the caller should abandon the line).
func (ctx *Context) parseLabel(l line) (rest line, hasLabel bool, name string, ok bool) {
	i := 0
	for i < len(l.str) && isAlnum(l.str[i]) {
		i++
	}
	if i > 0 && i < len(l.str) && l.str[i] == ':' {
		name = l.str[:i]
		after := l.consume(i + 1)
		if !after.isEmpty() && !after.startsWith(isSpace) {
			ctx.report.Errorf(ctx.lineNumber, "no whitespace after label ':'")
			return line{}, false, "", false
		}
		if !isValidSymbolName(name) {
			ctx.report.Errorf(ctx.lineNumber, "invalid label name '%s'", name)
			return line{}, false, "", false
		}
		if isReservedWord(name) {
			ctx.report.Errorf(ctx.lineNumber, "label '%s' is a reserved word", name)
			return line{}, false, "", false
		}
		return after.consumeWhitespace(), true, name, true
	}

	// "label name, then space, then :" is an explicit error case.
	if i > 0 && i < len(l.str) && isSpace(l.str[i]) {
		afterSpace := l.consume(i).consumeWhitespace()
		if afterSpace.startsWithChar(':') {
			ctx.report.Errorf(ctx.lineNumber, "':' must immediately follow the label name, with no space before it")
			return line{}, false, "", false
		}
	}

	return l, false, "", true
}

func (ctx *Context) defineLabel(hasLabel bool, name string, address int) {
	if !hasLabel {
		return
	}
	ctx.symtab.define(name, address, ctx.lineNumber)
}

//
// directives
//

func (ctx *Context) processDirective(rest line, hasLabel bool, labelName string) {
	name, after := rest.consumeWhile(isAlpha)
	directive := name.String()
	after = after.consumeWhitespace()

	switch directive {
	case "data":
		ctx.processData(after, hasLabel, labelName)
	case "string":
		ctx.processString(after, hasLabel, labelName)
	case "entry":
		ctx.processEntry(after, hasLabel, labelName)
	case "extern":
		ctx.processExtern(after, hasLabel, labelName)
	case "":
		ctx.report.Errorf(ctx.lineNumber, "missing directive name after '.'")
	default:
		ctx.report.Errorf(ctx.lineNumber, "unknown directive '.%s'", directive)
	}
}

func (ctx *Context) processData(after line, hasLabel bool, labelName string) {
	toks, err := splitOperands(after.String())
	if err != nil {
		ctx.report.Errorf(ctx.lineNumber, ".data: %s", err)
		return
	}
	if len(toks) == 0 {
		ctx.report.Errorf(ctx.lineNumber, ".data requires at least one value")
		return
	}

	var values []int
	for _, tok := range toks {
		tok = strings.TrimSpace(tok)
		n, consumed, ok := parseNumber(tok)
		if !ok || consumed != len(tok) {
			ctx.report.Errorf(ctx.lineNumber, ".data: invalid integer '%s'", tok)
			return
		}
		if !fitsSigned(n, 15) {
			ctx.report.Errorf(ctx.lineNumber, ".data: value %d out of range", n)
			return
		}
		values = append(values, n)
	}

	if hasLabel {
		s := ctx.symtab.define(labelName, ctx.dc, ctx.lineNumber)
		s.beforeData = true
	}
	for _, n := range values {
		ctx.dataWords = append(ctx.dataWords, word{bits: intToBits(n, 15), address: ctx.dc, source: ctx.lineNumber})
		ctx.dc++
	}
}

func (ctx *Context) processString(after line, hasLabel bool, labelName string) {
	s, ok := parseQuotedString(after)
	if !ok {
		ctx.report.Errorf(ctx.lineNumber, ".string: expected a quoted string")
		return
	}

	if hasLabel {
		sym := ctx.symtab.define(labelName, ctx.dc, ctx.lineNumber)
		sym.beforeData = true
	}
	for i := 0; i < len(s); i++ {
		if !isPrintable(s[i]) {
			ctx.report.Errorf(ctx.lineNumber, ".string: character %q is not printable", s[i])
			return
		}
		ctx.dataWords = append(ctx.dataWords, word{bits: intToBits(int(s[i]), 15), address: ctx.dc, source: ctx.lineNumber})
		ctx.dc++
	}
	ctx.dataWords = append(ctx.dataWords, word{bits: intToBits(0, 15), address: ctx.dc, source: ctx.lineNumber})
	ctx.dc++
}

// parseQuotedString extracts the contents of a double-quoted string,
// with no escape handling (the source grammar has none).
func parseQuotedString(l line) (string, bool) {
	if !l.startsWithChar('"') {
		return "", false
	}
	body := l.consume(1)
	content, remain := body.consumeUntilChar('"')
	if !remain.startsWithChar('"') {
		return "", false
	}
	trailing := remain.consume(1).consumeWhitespace()
	if !trailing.isEmpty() {
		return "", false
	}
	return content.String(), true
}

func (ctx *Context) processEntry(after line, hasLabel bool, labelName string) {
	if hasLabel {
		ctx.report.Warnf(ctx.lineNumber, "label '%s' before .entry is ignored", labelName)
	}
	name, trailing := firstToken(after)
	if name == "" {
		ctx.report.Errorf(ctx.lineNumber, ".entry requires a symbol name")
		return
	}
	if !trailing.isEmpty() {
		ctx.report.Errorf(ctx.lineNumber, "extra text after .entry %s", name)
		return
	}
	s := ctx.symtab.define(name, -1, ctx.lineNumber)
	s.isEntry = true
}

func (ctx *Context) processExtern(after line, hasLabel bool, labelName string) {
	if hasLabel {
		ctx.report.Warnf(ctx.lineNumber, "label '%s' before .extern is ignored", labelName)
	}
	name, trailing := firstToken(after)
	if name == "" {
		ctx.report.Errorf(ctx.lineNumber, ".extern requires a symbol name")
		return
	}
	if !trailing.isEmpty() {
		ctx.report.Errorf(ctx.lineNumber, "extra text after .extern %s", name)
		return
	}
	s := ctx.symtab.define(name, 0, ctx.lineNumber)
	s.isExtern = true
}

//
// instructions
//

func (ctx *Context) processInstruction(rest line, hasLabel bool, labelName string) {
	mnemonic, after := firstToken(rest)
	op, found := lookupOpcode(mnemonic)
	if !found {
		ctx.report.Errorf(ctx.lineNumber, "unknown instruction '%s'", mnemonic)
		return
	}

	ctx.defineLabel(hasLabel, labelName, ctx.ic)

	operands, err := splitOperands(after.String())
	if err != nil {
		ctx.report.Errorf(ctx.lineNumber, "%s: %s", mnemonic, err)
		return
	}
	for i := range operands {
		operands[i] = strings.TrimSpace(operands[i])
	}

	if len(operands) != op.numOperands {
		ctx.report.Errorf(ctx.lineNumber, "%s: expected %d operand(s), got %d", mnemonic, op.numOperands, len(operands))
		return
	}

	var srcMode, tgtMode addrMode
	var srcOperand, tgtOperand string
	switch op.numOperands {
	case 1:
		tgtMode, tgtOperand = classifyOperand(operands[0])
	case 2:
		srcMode, srcOperand = classifyOperand(operands[0])
		tgtMode, tgtOperand = classifyOperand(operands[1])
	}

	if op.numOperands >= 2 && !op.allowsMode(srcMode, false) {
		ctx.report.Errorf(ctx.lineNumber, "%s: source operand addressing mode not allowed", mnemonic)
		return
	}
	if op.numOperands >= 1 && !op.allowsMode(tgtMode, true) {
		ctx.report.Errorf(ctx.lineNumber, "%s: target operand addressing mode not allowed", mnemonic)
		return
	}

	first := word{
		bits:    intToBits(op.code, 4) + modeField(op.numOperands >= 2, srcMode) + modeField(op.numOperands >= 1, tgtMode),
		are:     areAbsolute,
		source:  ctx.lineNumber,
		address: ctx.ic,
	}
	ctx.instrWords = append(ctx.instrWords, first)
	ctx.ic++

	switch op.numOperands {
	case 0:
		// nothing further
	case 1:
		ctx.emitOperandWord(tgtMode, tgtOperand, true)
	case 2:
		if (srcMode == modeIndirectReg || srcMode == modeDirectReg) &&
			(tgtMode == modeIndirectReg || tgtMode == modeDirectReg) {
			ctx.emitFusedRegisterWord(srcOperand, tgtOperand)
		} else {
			ctx.emitOperandWord(srcMode, srcOperand, false)
			ctx.emitOperandWord(tgtMode, tgtOperand, true)
		}
	}
}

// modeField returns the 4-bit one-hot addressing-mode field for an
// operand role that is present, or "0000" when the role is absent.
func modeField(present bool, m addrMode) string {
	if !present {
		return "0000"
	}
	return m.oneHot()
}

// classifyOperand determines an operand's addressing mode and strips
// its syntax down to the bare value (symbol name, register name, or
// immediate digits).
func classifyOperand(s string) (addrMode, string) {
	switch {
	case strings.HasPrefix(s, "#"):
		return modeImmediate, s[1:]
	case strings.HasPrefix(s, "*"):
		return modeIndirectReg, s[1:]
	case isRegisterName(s):
		return modeDirectReg, s
	default:
		return modeDirect, s
	}
}

func (ctx *Context) emitOperandWord(mode addrMode, operand string, isTarget bool) {
	switch mode {
	case modeImmediate:
		n, consumed, ok := parseNumber(operand)
		if !ok || consumed != len(operand) {
			ctx.report.Errorf(ctx.lineNumber, "invalid immediate operand '#%s'", operand)
			return
		}
		if !fitsSigned(n, 12) {
			ctx.report.Errorf(ctx.lineNumber, "immediate operand %d out of range", n)
			return
		}
		ctx.instrWords = append(ctx.instrWords, word{bits: intTo12Bits(n), are: areAbsolute, source: ctx.lineNumber, address: ctx.ic})
	case modeDirect:
		if !isValidSymbolName(operand) {
			ctx.report.Errorf(ctx.lineNumber, "invalid symbol operand '%s'", operand)
			return
		}
		w := unresolvedWord(operand, ctx.lineNumber)
		w.address = ctx.ic
		ctx.instrWords = append(ctx.instrWords, w)
	case modeIndirectReg, modeDirectReg:
		prefix := "*"
		if mode == modeDirectReg {
			prefix = ""
		}
		if !isRegisterName(operand) {
			ctx.report.Errorf(ctx.lineNumber, "invalid register operand '%s%s'", prefix, operand)
			return
		}
		ctx.instrWords = append(ctx.instrWords, word{bits: registerWordBits(registerIndex(operand), isTarget), are: areAbsolute, source: ctx.lineNumber, address: ctx.ic})
	}
	ctx.ic++
}

// emitFusedRegisterWord implements the register-fusion rule (spec.md
// §4.2): when both operands address a register (directly or
// indirectly), they share a single extra word instead of two.
func (ctx *Context) emitFusedRegisterWord(srcOperand, tgtOperand string) {
	if !isRegisterName(srcOperand) || !isRegisterName(tgtOperand) {
		ctx.report.Errorf(ctx.lineNumber, "invalid register operand in fused instruction")
		return
	}
	src := registerIndex(srcOperand)
	tgt := registerIndex(tgtOperand)
	bits := "000000" + intToBits(src, 3) + intToBits(tgt, 3)
	ctx.instrWords = append(ctx.instrWords, word{bits: bits, are: areAbsolute, source: ctx.lineNumber, address: ctx.ic})
	ctx.ic++
}

// registerWordBits builds the 12-bit content of a lone register extra
// word (spec.md §6): a target-only reference places the register in
// bits 5-3 (the low 3 bits of the 12-bit field); a source-only
// reference places it in bits 8-6 (the middle 3 bits), leaving bits
// 5-3 zero.
func registerWordBits(reg int, isTarget bool) string {
	if isTarget {
		return "000000000" + intToBits(reg, 3)
	}
	return "000000" + intToBits(reg, 3) + "000"
}

// splitOperands splits a comma-separated operand list, enforcing that
// there is no leading or trailing comma and no doubled comma (spec.md
// §4.2/§4.6's comma rules). An empty (whitespace-only) input yields a
// nil, non-error result of zero operands.
func splitOperands(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, ",") {
		return nil, errCommaLeading
	}
	if strings.HasSuffix(s, ",") {
		return nil, errCommaTrailing
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t == "" {
			return nil, errCommaDouble
		}
		out = append(out, t)
	}
	return out, nil
}

var (
	errCommaLeading  = strconvErr("unexpected leading comma")
	errCommaTrailing = strconvErr("unexpected trailing comma")
	errCommaDouble   = strconvErr("unexpected repeated comma")
)

type strconvErr string

func (e strconvErr) Error() string { return string(e) }
