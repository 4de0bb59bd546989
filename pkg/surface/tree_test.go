package surface

import "testing"

func TestNewIdentifierRejectsEmpty(t *testing.T) {
	if _, err := NewIdentifier(""); err == nil {
		t.Fatal("expected error for empty identifier")
	}
}

func TestNewIdentifierRejectsBadByte(t *testing.T) {
	if _, err := NewIdentifier("ab c"); err == nil {
		t.Fatal("expected error for space in identifier")
	}
}

func TestNodeEqual(t *testing.T) {
	name, _ := NewIdentifier("tcp")
	a := New(name)
	a.SetProperty(mustIdent(t, "host"), Str("127.0.0.1"))
	a.PushArray(Str("x"))

	b := New(name)
	b.SetProperty(mustIdent(t, "host"), Str("127.0.0.1"))
	b.PushArray(Str("x"))

	if !a.Equal(b) {
		t.Fatal("expected a and b to be equal")
	}

	c := New(name)
	c.SetProperty(mustIdent(t, "host"), Str("127.0.0.2"))
	c.PushArray(Str("x"))
	if a.Equal(c) {
		t.Fatal("expected a and c to differ")
	}
}

func TestNodeEqualRecursesIntoSubnodes(t *testing.T) {
	inner := New(mustIdent(t, "tcp"))
	inner.SetProperty(mustIdent(t, "port"), Str("80"))

	outer1 := New(mustIdent(t, "ws-c"))
	outer1.PushArray(Sub{Node: inner})

	inner2 := New(mustIdent(t, "tcp"))
	inner2.SetProperty(mustIdent(t, "port"), Str("80"))
	outer2 := New(mustIdent(t, "ws-c"))
	outer2.PushArray(Sub{Node: inner2})

	if !outer1.Equal(outer2) {
		t.Fatal("expected structurally identical subnode trees to be equal")
	}
}

func mustIdent(t *testing.T, s string) Identifier {
	t.Helper()
	id, err := NewIdentifier(s)
	if err != nil {
		t.Fatalf("NewIdentifier(%q): %v", s, err)
	}
	return id
}
