// Package registry defines the interfaces the core consumes to resolve a
// surface node's name to a typed node kind: ClassRegistrar enumerates
// classes by name, ClassDescriptor exposes a class's declared properties
// and array element kind, and NodeBuilder accumulates a typed node's
// property and array values before Finish.
//
// It also provides Static, a small in-memory ClassRegistrar used by the
// test suites and the CLI demo — the core itself
// never depends on Static; production registrars wrapping concrete
// endpoint drivers are out of scope for this repository.
package registry
