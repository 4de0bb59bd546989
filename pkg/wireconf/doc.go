// Package wireconf re-exports the core's commonly used types so callers
// only need to import one package, and provides top-level Parse, Build,
// Reverse, and Print convenience functions chaining the lower-level
// packages together.
package wireconf
