package printer

import (
	"strings"

	"github.com/wireconf/wireconf/internal/lex"
	"github.com/wireconf/wireconf/pkg/surface"
)

// Print renders n in canonical surface syntax: `[name key=VALUE VALUE]`,
// one space between elements, properties before array elements in the
// order the node stores them.
//
// Example:
//
//	n := surface.New("tcp")
//	n.SetProperty("host", surface.Str("127.0.0.1"))
//	n.SetProperty("port", surface.Str("80"))
//	printer.Print(n) // `[tcp host=127.0.0.1 port=80]`
func Print(n *surface.Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *surface.Node) {
	b.WriteByte('[')
	b.WriteString(string(n.Name))
	for _, p := range n.Properties {
		b.WriteByte(' ')
		b.WriteString(string(p.Key))
		b.WriteByte('=')
		writeValue(b, p.Value)
	}
	for _, v := range n.Array {
		b.WriteByte(' ')
		writeValue(b, v)
	}
	b.WriteByte(']')
}

func writeValue(b *strings.Builder, v surface.Value) {
	switch vv := v.(type) {
	case surface.Str:
		writeString(b, string(vv))
	case surface.Sub:
		writeNode(b, vv.Node)
	}
}

// writeString emits s unquoted if it is non-empty, every byte is an
// identchar, and every byte's printable escape is a single character;
// otherwise it emits a quoted, fully-escaped form.
func writeString(b *strings.Builder, s string) {
	if canBareword(s) {
		b.WriteString(s)
		return
	}
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		b.WriteString(lex.EscapeByte(s[i]))
	}
	b.WriteByte('"')
}

func canBareword(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !lex.IsIdentByte(s[i]) {
			return false
		}
		if len(lex.EscapeByte(s[i])) != 1 {
			return false
		}
	}
	return true
}
