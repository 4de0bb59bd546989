// Package parser implements a byte-oriented state-machine parser for the
// bracketed node syntax: it consumes a materialized byte slice and
// produces one surface.Node, recursing into subnodes by re-entering the
// same state machine on the same underlying bytes.
package parser

// state names the parser's state-machine states.
type state int

const (
	stateBeforeName state = iota
	stateName
	stateSpace
	stateForcedSpace
	stateChunk
	stateChunkEsc
	stateChunkEscBs
	stateChunkEscHex
	stateFinish
)
