package parser

import (
	"fmt"

	"github.com/wireconf/wireconf/internal/lex"
	"github.com/wireconf/wireconf/internal/wireerr"
	"github.com/wireconf/wireconf/pkg/surface"
)

// cursor is a forward-only index into an already-materialized byte
// slice. The grammar never needs to look behind the current position, so
// a plain slice index plays the role of a peekable, single-pass byte
// stream.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) peek() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

func (c *cursor) advance() { c.pos++ }

// ParseNode parses one bracketed node starting at offset 0 of data and
// returns it along with the number of bytes consumed (the parser never
// reads past the matching ']' of the outermost node). Trailing bytes
// beyond the matched node are left unconsumed.
func ParseNode(data []byte) (*surface.Node, int, error) {
	c := &cursor{data: data}
	n, err := parseNode(c)
	if err != nil {
		return nil, c.pos, err
	}
	return n, c.pos, nil
}

// nodeParser holds one node's in-progress parse state. Subnode values are
// parsed by recursively constructing a fresh nodeParser over the same
// cursor, so a nested node is parsed by re-entering the state machine on
// the same underlying bytes rather than by a separate recursive-descent
// grammar.
type nodeParser struct {
	c              *cursor
	name           string // known once the Name state flushes; used for error context
	props          []surface.Property
	array          []surface.Value
	buf            []byte
	pendingKey     string
	havePendingKey bool
	hex            [2]byte
	hexLen         int
}

func parseNode(c *cursor) (*surface.Node, error) {
	if b, ok := c.peek(); !ok || b != '[' {
		return nil, wireerr.New(wireerr.Structural, "node must begin with '['")
	}
	c.advance()

	p := &nodeParser{c: c}
	st := stateBeforeName

	for st != stateFinish {
		b, ok := c.peek()
		if !ok {
			return nil, wireerr.In(p.name, wireerr.New(wireerr.Structural, "truncated input before matching ']'"))
		}
		next, err := p.step(st, b)
		if err != nil {
			return nil, err
		}
		st = next
	}

	name, err := surface.NewIdentifier(p.name)
	if err != nil {
		return nil, wireerr.New(wireerr.Structural, "node is missing a name")
	}
	n := surface.New(name)
	n.Properties = p.props
	n.Array = p.array
	return n, nil
}

func (p *nodeParser) step(st state, b byte) (state, error) {
	switch st {
	case stateBeforeName:
		return p.stepBeforeNameOrName(st, b)
	case stateName:
		return p.stepBeforeNameOrName(st, b)
	case stateSpace:
		return p.stepSpace(b)
	case stateChunk:
		return p.stepChunk(b)
	case stateChunkEsc:
		return p.stepChunkEsc(b)
	case stateChunkEscBs:
		return p.stepChunkEscBs(b)
	case stateChunkEscHex:
		return p.stepChunkEscHex(b)
	case stateForcedSpace:
		return p.stepForcedSpace(b)
	default:
		return st, wireerr.Newf(wireerr.Structural, "internal: unknown parser state %d", int(st))
	}
}

func (p *nodeParser) stepBeforeNameOrName(st state, b byte) (state, error) {
	switch {
	case lex.IsIdentByte(b):
		p.buf = append(p.buf, b)
		p.c.advance()
		return stateName, nil
	case b == ' ':
		if st == stateName {
			p.name = string(p.buf)
			p.buf = nil
			p.c.advance()
			return stateSpace, nil
		}
		p.c.advance() // leading spaces before the name are ignored
		return stateBeforeName, nil
	case b == ']':
		p.name = string(p.buf)
		p.c.advance()
		return stateFinish, nil
	default:
		return st, p.lexErr(fmt.Sprintf("unexpected byte %q before or in node name", b))
	}
}

func (p *nodeParser) stepSpace(b byte) (state, error) {
	switch {
	case lex.IsIdentByte(b):
		p.buf = append(p.buf, b)
		p.c.advance()
		return stateChunk, nil
	case b == ' ':
		p.c.advance()
		return stateSpace, nil
	case b == ']':
		p.c.advance()
		return stateFinish, nil
	case b == '"':
		p.c.advance()
		p.buf = nil
		return stateChunkEsc, nil
	case b == '[':
		child, err := parseNode(p.c)
		if err != nil {
			return stateSpace, err
		}
		p.array = append(p.array, surface.Sub{Node: child})
		return stateForcedSpace, nil
	default:
		return stateSpace, p.lexErr(fmt.Sprintf("unexpected byte %q", b))
	}
}

func (p *nodeParser) stepChunk(b byte) (state, error) {
	switch {
	case lex.IsIdentByte(b):
		p.buf = append(p.buf, b)
		p.c.advance()
		return stateChunk, nil
	case b == ' ':
		if len(p.buf) == 0 {
			return stateChunk, p.structErr("empty unescaped value")
		}
		p.flushBareValue()
		p.c.advance()
		return stateSpace, nil
	case b == ']':
		if p.havePendingKey && len(p.buf) == 0 {
			return stateChunk, p.structErr("property has no value")
		}
		if p.havePendingKey || len(p.buf) > 0 {
			p.flushBareValue()
		}
		p.c.advance()
		return stateFinish, nil
	case b == '=':
		if p.havePendingKey {
			return stateChunk, p.structErr("duplicate '=' within one property")
		}
		if len(p.buf) == 0 {
			return stateChunk, p.structErr("property name must not be empty")
		}
		p.pendingKey = string(p.buf)
		p.havePendingKey = true
		p.buf = nil
		p.c.advance()
		return stateChunk, nil
	case b == '"':
		if !p.havePendingKey || len(p.buf) != 0 {
			return stateChunk, p.structErr("'\"' must immediately follow '='")
		}
		p.c.advance()
		return stateChunkEsc, nil
	case b == '[':
		if !p.havePendingKey || len(p.buf) != 0 {
			return stateChunk, p.structErr("'[' must immediately follow '='")
		}
		child, err := parseNode(p.c)
		if err != nil {
			return stateChunk, err
		}
		p.props = append(p.props, surface.Property{Key: surface.Identifier(p.pendingKey), Value: surface.Sub{Node: child}})
		p.havePendingKey = false
		p.pendingKey = ""
		return stateForcedSpace, nil
	default:
		return stateChunk, p.lexErr(fmt.Sprintf("unexpected byte %q in value", b))
	}
}

func (p *nodeParser) stepChunkEsc(b byte) (state, error) {
	switch b {
	case '"':
		p.c.advance()
		p.flushQuotedValue()
		return stateForcedSpace, nil
	case '\\':
		p.c.advance()
		return stateChunkEscBs, nil
	default:
		p.buf = append(p.buf, b)
		p.c.advance()
		return stateChunkEsc, nil
	}
}

func (p *nodeParser) stepChunkEscBs(b byte) (state, error) {
	decoded, isHex, ok := lex.DecodeEscape(b)
	if !ok {
		return stateChunkEscBs, p.lexErr(fmt.Sprintf("invalid escape character %q", b))
	}
	p.c.advance()
	if isHex {
		p.hexLen = 0
		return stateChunkEscHex, nil
	}
	p.buf = append(p.buf, decoded)
	return stateChunkEsc, nil
}

func (p *nodeParser) stepChunkEscHex(b byte) (state, error) {
	if !lex.IsHexDigit(b) {
		return stateChunkEscHex, p.lexErr(fmt.Sprintf("invalid hex digit %q", b))
	}
	p.hex[p.hexLen] = b
	p.hexLen++
	p.c.advance()
	if p.hexLen < 2 {
		return stateChunkEscHex, nil
	}
	p.buf = append(p.buf, lex.HexValue(p.hex[0])<<4|lex.HexValue(p.hex[1]))
	return stateChunkEsc, nil
}

func (p *nodeParser) stepForcedSpace(b byte) (state, error) {
	switch b {
	case ' ':
		p.c.advance()
		return stateSpace, nil
	case ']':
		p.c.advance()
		return stateFinish, nil
	default:
		return stateForcedSpace, p.lexErr(fmt.Sprintf("expected a space character or ']' after value, got %q", b))
	}
}

// flushBareValue emits the accumulated unescaped bareword buffer as a
// property value (if a key is pending) or an array element. buf is
// guaranteed non-empty by the callers above.
func (p *nodeParser) flushBareValue() {
	p.emit(surface.Str(p.buf))
}

// flushQuotedValue emits the accumulated quoted-string buffer, which may
// be empty, per the "Flush quoted value" rule.
func (p *nodeParser) flushQuotedValue() {
	p.emit(surface.Str(p.buf))
}

func (p *nodeParser) emit(v surface.Value) {
	if p.havePendingKey {
		// pendingKey was assembled from identchar pushes only, so it is
		// always a valid Identifier.
		p.props = append(p.props, surface.Property{Key: surface.Identifier(p.pendingKey), Value: v})
		p.havePendingKey = false
		p.pendingKey = ""
	} else {
		p.array = append(p.array, v)
	}
	p.buf = nil
}

func (p *nodeParser) structErr(msg string) error {
	return wireerr.In(p.name, wireerr.New(wireerr.Structural, msg))
}

func (p *nodeParser) lexErr(msg string) error {
	return wireerr.In(p.name, wireerr.New(wireerr.Lexical, msg))
}
