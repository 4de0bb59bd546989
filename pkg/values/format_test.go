package values

import "testing"

func TestFormatRoundTripsThroughInterpret(t *testing.T) {
	cases := []struct {
		kind Kind
		raw  string
	}{
		{Stringy, "hello"},
		{Numbery, "80"},
		{Floaty, "1.5"},
		{Booly, "true"},
		{IPAddr, "127.0.0.1"},
		{PortNumber, "80"},
		{SockAddr, "127.0.0.1:80"},
	}
	for _, c := range cases {
		v, err := Interpret(c.kind, c.raw)
		if err != nil {
			t.Fatalf("Interpret(%v, %q): %v", c.kind, c.raw, err)
		}
		s, err := Format(v)
		if err != nil {
			t.Fatalf("Format(%v): %v", v, err)
		}
		v2, err := Interpret(c.kind, s)
		if err != nil {
			t.Fatalf("re-Interpret(%v, %q): %v", c.kind, s, err)
		}
		if v2 != v {
			t.Errorf("round trip for %v: %v != %v", c.kind, v2, v)
		}
	}
}

func TestFormatChildNodeIsConsistencyError(t *testing.T) {
	if _, err := Format(VChildNode{ID: 1}); err == nil {
		t.Fatal("Format(VChildNode) should fail; reverser must recurse instead")
	}
}
