package values

import (
	"errors"
	"testing"
)

func TestInterpretScalars(t *testing.T) {
	cases := []struct {
		kind Kind
		raw  string
		want TypedValue
	}{
		{Stringy, "hello", VString("hello")},
		{Numbery, "80", VInt(80)},
		{Floaty, "1.5", VFloat(1.5)},
		{Booly, "true", VBool(true)},
		{IPAddr, "127.0.0.1", VIPAddr{}},
		{PortNumber, "80", VPort(80)},
		{SockAddr, "127.0.0.1:80", VSockAddr{}},
	}
	for _, c := range cases {
		got, err := Interpret(c.kind, c.raw)
		if err != nil {
			t.Fatalf("Interpret(%v, %q): %v", c.kind, c.raw, err)
		}
		if got.Kind() != c.kind {
			t.Errorf("Interpret(%v, %q).Kind() = %v", c.kind, c.raw, got.Kind())
		}
	}
}

func TestInterpretNumberyRejectsOverflow(t *testing.T) {
	if _, err := Interpret(Numbery, "99999999999999999999999999"); err == nil {
		t.Fatal("expected overflow to be rejected")
	}
}

func TestInterpretPortNumberRejectsOutOfRange(t *testing.T) {
	if _, err := Interpret(PortNumber, "70000"); err == nil {
		t.Fatal("expected out-of-range port to be rejected")
	}
}

func TestInterpretUnimplementedKinds(t *testing.T) {
	for _, k := range []Kind{Path, URI, Duration, Enummy} {
		_, err := Interpret(k, "anything")
		if err == nil {
			t.Fatalf("Interpret(%v, ...) should fail", k)
		}
		if !errors.Is(err, ErrUnimplementedKind) {
			t.Errorf("Interpret(%v, ...) error should wrap ErrUnimplementedKind, got %v", k, err)
		}
	}
}

func TestInterpretChildNodeIsIllegal(t *testing.T) {
	if _, err := Interpret(ChildNode, "x"); err == nil {
		t.Fatal("ChildNode must never be string-interpretable")
	}
}
