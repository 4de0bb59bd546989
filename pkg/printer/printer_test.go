package printer

import (
	"testing"

	"github.com/wireconf/wireconf/pkg/surface"
)

func ident(t *testing.T, s string) surface.Identifier {
	t.Helper()
	id, err := surface.NewIdentifier(s)
	if err != nil {
		t.Fatalf("NewIdentifier(%q): %v", s, err)
	}
	return id
}

func TestPrintEmptyNode(t *testing.T) {
	n := surface.New(ident(t, "n"))
	if got := Print(n); got != "[n]" {
		t.Errorf("Print = %q, want [n]", got)
	}
}

func TestPrintPropertiesAndArray(t *testing.T) {
	n := surface.New(ident(t, "tcp"))
	n.SetProperty(ident(t, "host"), surface.Str("127.0.0.1"))
	n.SetProperty(ident(t, "port"), surface.Str("80"))
	if got, want := Print(n), "[tcp host=127.0.0.1 port=80]"; got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}

func TestPrintQuotesNonIdentBytes(t *testing.T) {
	n := surface.New(ident(t, "a"))
	n.SetProperty(ident(t, "x"), surface.Str("hello world"))
	n.PushArray(surface.Str("y"))
	if got, want := Print(n), `[a x="hello world" y]`; got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}

func TestPrintEmptyStringIsQuoted(t *testing.T) {
	n := surface.New(ident(t, "n"))
	n.PushArray(surface.Str(""))
	if got, want := Print(n), `[n ""]`; got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}

func TestPrintEscapesControlBytes(t *testing.T) {
	n := surface.New(ident(t, "n"))
	n.PushArray(surface.Str("a\tb"))
	if got, want := Print(n), `[n "a\tb"]`; got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}

func TestPrintRecursesIntoSubnodes(t *testing.T) {
	inner := surface.New(ident(t, "tcp"))
	inner.SetProperty(ident(t, "host"), surface.Str("h"))
	inner.SetProperty(ident(t, "port"), surface.Str("1"))

	outer := surface.New(ident(t, "ws-c"))
	outer.PushArray(surface.Sub{Node: inner})

	if got, want := Print(outer), "[ws-c [tcp host=h port=1]]"; got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}
