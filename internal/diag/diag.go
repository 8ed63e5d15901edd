// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag collects and reports assembly diagnostics keyed by
// source line number.
package diag

import (
	"fmt"
	"io"
)

// Severity distinguishes a hard error from an advisory warning.
type Severity int

const (
	// Error indicates a diagnostic that forces the file's assembly to
	// fail; no output files are written when any Error is present.
	Error Severity = iota
	// Warning indicates an advisory diagnostic that does not prevent
	// output files from being written.
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single reported issue, keyed by the source line on
// which it was found.
type Diagnostic struct {
	Line     int
	Severity Severity
	Message  string
}

// Report accumulates diagnostics produced while assembling one file.
type Report struct {
	diags []Diagnostic
}

// Errorf appends an error-severity diagnostic for the given line.
func (r *Report) Errorf(line int, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{line, Error, fmt.Sprintf(format, args...)})
}

// Warnf appends a warning-severity diagnostic for the given line.
func (r *Report) Warnf(line int, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{line, Warning, fmt.Sprintf(format, args...)})
}

// Merge appends all diagnostics from other into r, preserving order.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.diags = append(r.diags, other.diags...)
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (r *Report) HasErrors() bool {
	for _, d := range r.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Diagnostics returns the accumulated diagnostics in report order.
func (r *Report) Diagnostics() []Diagnostic {
	return r.diags
}

// Print writes one line per diagnostic to w, in the order reported.
func (r *Report) Print(w io.Writer) {
	for _, d := range r.diags {
		fmt.Fprintf(w, "line %d: %s: %s\n", d.Line, d.Severity, d.Message)
	}
}
