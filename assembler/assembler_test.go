// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"strings"
	"testing"
)

func TestAssembleEmptySource(t *testing.T) {
	src := "; just a comment\n\n"
	r := Assemble(strings.NewReader(src))

	if r.Report.HasErrors() {
		t.Fatalf("unexpected errors: %v", r.Report.Diagnostics())
	}
	want := "0 0\n"
	if r.Object != want {
		t.Fatalf("got object %q, want %q", r.Object, want)
	}
	if r.HasEntries || r.HasExterns {
		t.Fatalf("expected no entries/externs")
	}
}

func TestAssembleImmediateAdd(t *testing.T) {
	src := "MAIN: add #-5, r3\n"
	r := Assemble(strings.NewReader(src))

	if r.Report.HasErrors() {
		t.Fatalf("unexpected errors: %v", r.Report.Diagnostics())
	}

	lines := strings.Split(strings.TrimRight(r.Object, "\n"), "\n")
	if len(lines) != 4 { // header + 3 code words
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), r.Object)
	}
	if lines[0] != "3 0" {
		t.Fatalf("header = %q, want %q", lines[0], "3 0")
	}
	// First word: opcode "add"=0010, source mode (immediate) one-hot
	// 0001, target mode (direct register) one-hot 1000, ARE 100.
	if lines[1] != "0100 10304" {
		t.Fatalf("first word = %q, want %q", lines[1], "0100 10304")
	}
	// Second word: 12-bit two's complement of -5, ARE 100.
	if lines[2] != "0101 77734" {
		t.Fatalf("second word = %q, want %q", lines[2], "0101 77734")
	}
}

func TestAssembleRegisterFusion(t *testing.T) {
	src := "mov r1, r2\n"
	r := Assemble(strings.NewReader(src))

	if r.Report.HasErrors() {
		t.Fatalf("unexpected errors: %v", r.Report.Diagnostics())
	}

	lines := strings.Split(strings.TrimRight(r.Object, "\n"), "\n")
	if len(lines) != 3 { // header + 2 code words (fused)
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), r.Object)
	}
	if lines[0] != "2 0" {
		t.Fatalf("header = %q, want %q", lines[0], "2 0")
	}
}

func TestAssembleDataAfterCode(t *testing.T) {
	src := "A: mov r1,r2\nNUMS: .data 7, -3\n"
	r := Assemble(strings.NewReader(src))

	if r.Report.HasErrors() {
		t.Fatalf("unexpected errors: %v", r.Report.Diagnostics())
	}

	lines := strings.Split(strings.TrimRight(r.Object, "\n"), "\n")
	// header + 2 code words (fused mov) + 2 data words
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), r.Object)
	}
	if lines[0] != "2 2" {
		t.Fatalf("header = %q, want %q", lines[0], "2 2")
	}
	// code addresses strictly precede data addresses.
	if !strings.HasPrefix(lines[3], "0102") {
		t.Fatalf("first data word address wrong: %q", lines[3])
	}
}

func TestAssembleExternReference(t *testing.T) {
	src := ".extern EXT\njmp EXT\n"
	r := Assemble(strings.NewReader(src))

	if r.Report.HasErrors() {
		t.Fatalf("unexpected errors: %v", r.Report.Diagnostics())
	}
	if !r.HasExterns {
		t.Fatalf("expected an externals file")
	}
	if !strings.Contains(r.Externs, "EXT 0101\n") {
		t.Fatalf("externs = %q, want a reference to EXT at 0101", r.Externs)
	}
}

func TestAssembleEntryMergeFailure(t *testing.T) {
	src := ".entry FOO\nmov r1, r2\n"
	r := Assemble(strings.NewReader(src))

	if !r.Report.HasErrors() {
		t.Fatalf("expected an error for unresolved entry")
	}
	if r.Object != "" || r.HasEntries || r.HasExterns {
		t.Fatalf("no output should be produced when assembly fails")
	}
}

func TestAssembleRoundTrip(t *testing.T) {
	src := "macr m\nmov r1, r2\nendmacr\nm\nSTART: add #1, r0\n"
	first := Assemble(strings.NewReader(src))
	if first.Report.HasErrors() {
		t.Fatalf("unexpected errors: %v", first.Report.Diagnostics())
	}

	second := Assemble(strings.NewReader(first.Expanded))
	if second.Object != first.Object {
		t.Fatalf("round trip mismatch:\nfirst:  %q\nsecond: %q", first.Object, second.Object)
	}
}

func TestAssembleUndefinedLabel(t *testing.T) {
	src := "mov GHOST, r1\n"
	r := Assemble(strings.NewReader(src))
	if !r.Report.HasErrors() {
		t.Fatalf("expected an undefined-label error")
	}
}

func TestAssembleDuplicateLabel(t *testing.T) {
	src := "A: mov r1, r2\nA: add r1, r2\n"
	r := Assemble(strings.NewReader(src))
	if !r.Report.HasErrors() {
		t.Fatalf("expected a duplicate-label error")
	}
}
