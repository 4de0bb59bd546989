// Package builder walks a surface.Node against a registry.ClassRegistrar
// and inserts the typed result into an arena.Arena. Child nodes are
// built and inserted before their parent, so the arena never holds a
// NodeID pointing at an absent node.
package builder
