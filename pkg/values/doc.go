// Package values implements the declared property-value kinds and the
// string→TypedValue interpreter: Stringy, Enummy, Numbery, Floaty,
// Booly, SockAddr, IpAddr, PortNumber, Path, Uri, Duration, and
// ChildNode.
//
// Path, Uri, Duration, and Enummy are declared but not wired through
// Interpret — the core returns a distinguished ErrUnimplementedKind for
// them, reserved for a registrar to special-case or for future work.
package values
