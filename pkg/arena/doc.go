// Package arena provides the slab-style container that owns every typed
// node produced by the builder. Nodes are addressed by the opaque NodeID
// handle; NodeIDs are stable for the arena's lifetime and are never
// reused, so a ChildNode property can safely hold a NodeID that outlives
// the call that created it.
//
// The arena does not interpret node content — it is a flat insert/get
// slab addressed by a small integer handle rather than a pointer,
// generalized from a fixed binary record shape to any value the caller
// inserts.
//
// Slab is not safe for concurrent use: the builder needs exclusive access
// to an Arena for the duration of one Build call, and sharing one across
// goroutines requires external synchronization.
package arena
