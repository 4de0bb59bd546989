// Package surface provides the untyped syntactic tree representation of
// the bracketed node language: a Node has a name, an ordered sequence of
// (key, value) properties, and an ordered array of positional values.
// Values are either strings or nested nodes.
//
// Surface trees are produced by the parser, reconstructed by the
// reverser, and consumed by the printer and the builder. Property order,
// duplicate property keys, and array ordering are all preserved verbatim;
// the surface model itself never rejects a duplicate key — that decision
// belongs to the builder's registrar.
package surface
