package values

import (
	"net/netip"
	"strconv"

	"github.com/wireconf/wireconf/internal/wireerr"
)

// ErrUnimplementedKind is wrapped by the Coercion error returned for
// Path, Uri, Duration, and Enummy, which Interpret does not handle.
var ErrUnimplementedKind = wireerr.New(wireerr.Coercion, "kind not implemented by the string interpreter")

// Interpret maps a declared Kind and a raw string to a TypedValue, or
// fails with a *wireerr.Error of Kind Coercion (or Schema for ChildNode,
// which is never string-interpretable). The caller must supply context
// (property name, enclosing node) via wireerr.In/Wrap.
func Interpret(kind Kind, raw string) (TypedValue, error) {
	switch kind {
	case Stringy:
		return VString(raw), nil
	case Numbery:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, wireerr.Wrap(wireerr.Coercion, "", "invalid integer "+quote(raw), err)
		}
		return VInt(n), nil
	case Floaty:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, wireerr.Wrap(wireerr.Coercion, "", "invalid float "+quote(raw), err)
		}
		return VFloat(f), nil
	case Booly:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, wireerr.Wrap(wireerr.Coercion, "", "invalid boolean "+quote(raw), err)
		}
		return VBool(b), nil
	case SockAddr:
		ap, err := netip.ParseAddrPort(raw)
		if err != nil {
			return nil, wireerr.Wrap(wireerr.Coercion, "", "invalid socket address "+quote(raw), err)
		}
		return VSockAddr{Addr: ap}, nil
	case IPAddr:
		a, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, wireerr.Wrap(wireerr.Coercion, "", "invalid IP address "+quote(raw), err)
		}
		return VIPAddr{Addr: a}, nil
	case PortNumber:
		p, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return nil, wireerr.Wrap(wireerr.Coercion, "", "invalid port number "+quote(raw), err)
		}
		return VPort(p), nil
	case Path, URI, Duration, Enummy:
		return nil, wireerr.Wrap(wireerr.Coercion, "", kind.String()+" "+quote(raw), ErrUnimplementedKind)
	case ChildNode:
		return nil, wireerr.New(wireerr.Schema, "ChildNode is not a string-interpretable kind")
	default:
		return nil, wireerr.Newf(wireerr.Schema, "unknown value kind %v", kind)
	}
}

func quote(s string) string {
	return strconv.Quote(s)
}
