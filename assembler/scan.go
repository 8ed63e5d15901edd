// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

// A line is a string that keeps track of its position within the
// source file it was read from.
type line struct {
	row    int    // 1-based source line number
	column int    // 0-based column of the start of str within full
	str    string // the substring of interest
	full   string // the complete line as originally read
}

func newLine(row int, str string) line {
	return line{row: row, str: str, full: str}
}

func (l line) String() string {
	return l.str
}

func (l *line) isEmpty() bool {
	return len(l.str) == 0
}

func (l line) advanceColumn(n int) int {
	c := l.column
	for i := 0; i < n; i++ {
		if l.str[i] == '\t' {
			c += 8 - (c % 8)
		} else {
			c++
		}
	}
	return c
}

func (l line) consume(n int) line {
	return line{l.row, l.advanceColumn(n), l.str[n:], l.full}
}

func (l line) trunc(n int) line {
	return line{l.row, l.column, l.str[:n], l.full}
}

func (l line) startsWith(fn func(c byte) bool) bool {
	return len(l.str) > 0 && fn(l.str[0])
}

func (l line) startsWithChar(c byte) bool {
	return len(l.str) > 0 && l.str[0] == c
}

func (l line) consumeWhitespace() line {
	return l.consume(l.scanWhile(isSpace))
}

func (l line) scanWhile(fn func(c byte) bool) int {
	i := 0
	for ; i < len(l.str) && fn(l.str[i]); i++ {
	}
	return i
}

func (l line) scanUntil(fn func(c byte) bool) int {
	i := 0
	for ; i < len(l.str) && !fn(l.str[i]); i++ {
	}
	return i
}

func (l line) consumeWhile(fn func(c byte) bool) (consumed, remain line) {
	i := l.scanWhile(fn)
	return l.trunc(i), l.consume(i)
}

func (l line) consumeUntil(fn func(c byte) bool) (consumed, remain line) {
	i := l.scanUntil(fn)
	return l.trunc(i), l.consume(i)
}

func (l line) consumeUntilChar(c byte) (consumed, remain line) {
	return l.consumeUntil(func(b byte) bool { return b == c })
}

// stripComment truncates the line at the first unquoted ';'.
func (l line) stripComment() line {
	for i := 0; i < len(l.str); i++ {
		if l.str[i] == '"' {
			i++
			for i < len(l.str) && l.str[i] != '"' {
				i++
			}
			continue
		}
		if l.str[i] == ';' {
			return l.trunc(i)
		}
	}
	return l
}

//
// character classes
//

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isWordChar(c byte) bool {
	return !isSpace(c)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// isTokenChar matches the token character set of spec.md §4.1:
// alphanumerics, '#', '*', '.', '-' and '_'. The macro expander does
// not apply it; firstToken splits on whitespace only.
func isTokenChar(c byte) bool {
	return isAlnum(c) || c == '#' || c == '*' || c == '.' || c == '-' || c == '_'
}

func isPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7E
}
