package values

import (
	"net/netip"
	"time"

	"github.com/wireconf/wireconf/pkg/arena"
)

// TypedValue is the closed sum type produced by Interpret (or constructed
// directly by a registrar for kinds Interpret does not handle): one
// concrete Go type per declared Kind.
type TypedValue interface {
	Kind() Kind
	isTypedValue()
}

// VString carries a Stringy value.
type VString string

func (VString) Kind() Kind   { return Stringy }
func (VString) isTypedValue() {}

// VEnum carries an Enummy value: the schema name it was validated
// against and the selected member.
type VEnum struct {
	Schema string
	Member string
}

func (VEnum) Kind() Kind   { return Enummy }
func (VEnum) isTypedValue() {}

// VInt carries a Numbery value.
type VInt int64

func (VInt) Kind() Kind   { return Numbery }
func (VInt) isTypedValue() {}

// VFloat carries a Floaty value.
type VFloat float64

func (VFloat) Kind() Kind   { return Floaty }
func (VFloat) isTypedValue() {}

// VBool carries a Booly value.
type VBool bool

func (VBool) Kind() Kind   { return Booly }
func (VBool) isTypedValue() {}

// VSockAddr carries a SockAddr value.
type VSockAddr struct {
	Addr netip.AddrPort
}

func (VSockAddr) Kind() Kind   { return SockAddr }
func (VSockAddr) isTypedValue() {}

// VIPAddr carries an IpAddr value.
type VIPAddr struct {
	Addr netip.Addr
}

func (VIPAddr) Kind() Kind   { return IPAddr }
func (VIPAddr) isTypedValue() {}

// VPort carries a PortNumber value.
type VPort uint16

func (VPort) Kind() Kind   { return PortNumber }
func (VPort) isTypedValue() {}

// VPath carries a Path value. pkg/surface strings preserve raw bytes
// without requiring valid UTF-8, so most paths round-trip directly; a
// registrar that still encounters a path it cannot represent as a Go
// string should print PathLossySentinel instead of failing the reverser
// outright.
type VPath string

// PathLossySentinel is printed by a registrar in place of a Path value
// that cannot be represented at all, mirroring the original
// implementation's "(?:/??)" placeholder.
const PathLossySentinel = "(?:/??)"

func (VPath) Kind() Kind   { return Path }
func (VPath) isTypedValue() {}

// VURI carries a Uri value.
type VURI string

func (VURI) Kind() Kind   { return URI }
func (VURI) isTypedValue() {}

// VDuration carries a Duration value.
type VDuration time.Duration

func (VDuration) Kind() Kind   { return Duration }
func (VDuration) isTypedValue() {}

// VChildNode carries a ChildNode value: a NodeID already inserted into
// the arena by the builder's recursive child build.
type VChildNode struct {
	ID arena.NodeID
}

func (VChildNode) Kind() Kind   { return ChildNode }
func (VChildNode) isTypedValue() {}
