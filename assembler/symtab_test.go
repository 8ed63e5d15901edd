package assembler

import "testing"

func TestSymbolTableDefineAndFind(t *testing.T) {
	var t1 symbolTable
	t1.define("A", 100, 1)
	t1.define("B", 101, 2)

	if s := t1.find("A"); s == nil || s.address != 100 {
		t.Fatalf("find(A) = %+v", s)
	}
	if s := t1.find("Z"); s != nil {
		t.Fatalf("find(Z) should be nil, got %+v", s)
	}
}

func TestSymbolTableFindReturnsLatest(t *testing.T) {
	var t1 symbolTable
	t1.define("A", 100, 1)
	t1.define("A", 200, 2)

	if s := t1.find("A"); s.address != 200 {
		t.Fatalf("find should return the latest definition, got %+v", s)
	}
	if len(t1.all("A")) != 2 {
		t.Fatalf("all(A) should return both definitions")
	}
}

func TestSymbolTableEntriesAndExterns(t *testing.T) {
	var t1 symbolTable
	e := t1.define("E", 100, 1)
	e.isEntry = true
	x := t1.define("X", 0, 2)
	x.isExtern = true
	t1.define("plain", 101, 3)

	if len(t1.entries()) != 1 || t1.entries()[0].name != "E" {
		t.Errorf("entries() = %+v", t1.entries())
	}
	if len(t1.externs()) != 1 || t1.externs()[0].name != "X" {
		t.Errorf("externs() = %+v", t1.externs())
	}
}

func TestSymbolTableRemove(t *testing.T) {
	var t1 symbolTable
	a := t1.define("A", 100, 1)
	t1.define("B", 101, 2)
	t1.remove(a)

	if len(t1.symbols) != 1 || t1.symbols[0].name != "B" {
		t.Fatalf("remove left %+v", t1.symbols)
	}
}
