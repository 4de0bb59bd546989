package arena

// NodeID is an opaque handle into an Arena, valid for the arena's
// lifetime. The zero value never refers to a valid node.
type NodeID uint32

// Node is the minimal contract an arena slot must satisfy: something a
// builder finished and handed to Insert. The arena itself never inspects
// the value beyond storing and returning it; pkg/registry defines the
// richer Node interface (Class, Property, Array) that callers downstream
// of the arena (the reverser) actually use.
type Node any

// Arena is the slab interface the core consumes: insert a finished node,
// get it back by NodeID. Implementations own the node's memory for the
// arena's lifetime; the builder requires exclusive access to an Arena for
// the duration of one Build call (see package doc for the concurrency
// note) — the same single-writer discipline a builder enforces over any
// file it owns exclusively while constructing it.
type Arena interface {
	Insert(n Node) NodeID
	Get(id NodeID) (Node, bool)
}

// Slab is the reference Arena implementation: a growable slice indexed by
// NodeID-1 (NodeID 0 is reserved as "no node").
type Slab struct {
	nodes []Node
}

// New constructs an empty Slab.
func New() *Slab {
	return &Slab{}
}

// Insert appends n and returns its NodeID. Child nodes are always
// inserted before their parent by the builder, so a NodeID is never
// observed before its target is valid.
func (s *Slab) Insert(n Node) NodeID {
	s.nodes = append(s.nodes, n)
	return NodeID(len(s.nodes))
}

// Get returns the node for id, or (nil, false) if id is zero or out of
// range.
func (s *Slab) Get(id NodeID) (Node, bool) {
	if id == 0 || int(id) > len(s.nodes) {
		return nil, false
	}
	return s.nodes[id-1], true
}

// Len returns the number of nodes inserted so far.
func (s *Slab) Len() int {
	return len(s.nodes)
}
