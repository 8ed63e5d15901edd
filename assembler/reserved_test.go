package assembler

import "testing"

func TestIsReservedWord(t *testing.T) {
	for _, name := range []string{"data", "mov", "r0", "r7", "stop"} {
		if !isReservedWord(name) {
			t.Errorf("%q should be reserved", name)
		}
	}
	if isReservedWord("START") {
		t.Errorf("START should not be reserved")
	}
}

func TestIsReservedWordRejectsPrefix(t *testing.T) {
	// Each of these is an unambiguous prefix of a reserved word in the
	// underlying prefixtree (de->dec, da->data, str->string, ent->entry,
	// mo->mov) but is itself a perfectly valid label per spec.md §4.6.
	for _, name := range []string{"de", "da", "str", "ent", "mo"} {
		if isReservedWord(name) {
			t.Errorf("%q should not be reserved: it is only a prefix of a reserved word", name)
		}
	}
}

func TestIsValidSymbolName(t *testing.T) {
	valid := []string{"A", "LOOP1", "x"}
	invalid := []string{"1LOOP", "", "has space", strings32()}
	for _, n := range valid {
		if !isValidSymbolName(n) {
			t.Errorf("%q should be valid", n)
		}
	}
	for _, n := range invalid {
		if isValidSymbolName(n) {
			t.Errorf("%q should be invalid", n)
		}
	}
}

func strings32() string {
	s := ""
	for i := 0; i < 32; i++ {
		s += "a"
	}
	return s
}

func TestIsRegisterName(t *testing.T) {
	for _, n := range []string{"r0", "r7"} {
		if !isRegisterName(n) {
			t.Errorf("%q should be a register name", n)
		}
	}
	for _, n := range []string{"r8", "r", "reg1", "R1"} {
		if isRegisterName(n) {
			t.Errorf("%q should not be a register name", n)
		}
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in       string
		value    int
		consumed int
		ok       bool
	}{
		{"123", 123, 3, true},
		{"-5", -5, 2, true},
		{"+7x", 7, 2, true},
		{"abc", 0, 0, false},
	}
	for _, c := range cases {
		v, n, ok := parseNumber(c.in)
		if v != c.value || n != c.consumed || ok != c.ok {
			t.Errorf("parseNumber(%q) = (%d, %d, %v), want (%d, %d, %v)", c.in, v, n, ok, c.value, c.consumed, c.ok)
		}
	}
}

func TestFitsSigned(t *testing.T) {
	if !fitsSigned(2047, 12) || fitsSigned(2048, 12) {
		t.Errorf("fitsSigned boundary wrong for 12 bits")
	}
	if !fitsSigned(-2048, 12) || fitsSigned(-2049, 12) {
		t.Errorf("fitsSigned negative boundary wrong for 12 bits")
	}
}
