package assembler

import "testing"

func TestLineStripComment(t *testing.T) {
	l := newLine(1, `mov r1, r2 ; move it`).stripComment()
	if l.String() != "mov r1, r2 " {
		t.Errorf("stripComment = %q", l.String())
	}
}

func TestLineStripCommentQuoted(t *testing.T) {
	l := newLine(1, `.string "a;b"`).stripComment()
	if l.String() != `.string "a;b"` {
		t.Errorf("stripComment should not cut inside quotes, got %q", l.String())
	}
}

func TestLineConsumeWhile(t *testing.T) {
	l := newLine(1, "abc123 rest")
	tok, rest := l.consumeWhile(isAlnum)
	if tok.String() != "abc123" {
		t.Errorf("token = %q", tok.String())
	}
	if rest.String() != " rest" {
		t.Errorf("rest = %q", rest.String())
	}
}

func TestFirstToken(t *testing.T) {
	tok, rest := firstToken(newLine(1, "  mov r1, r2"))
	if tok != "mov" {
		t.Errorf("token = %q", tok)
	}
	if rest.String() != "r1, r2" {
		t.Errorf("rest = %q", rest.String())
	}
}

func TestIsPrintable(t *testing.T) {
	if !isPrintable('A') || !isPrintable('!') || !isPrintable(' ') {
		t.Errorf("printable ASCII misclassified")
	}
	if isPrintable('\t') || isPrintable(0x7F) {
		t.Errorf("non-printable bytes misclassified")
	}
}
