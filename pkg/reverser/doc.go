// Package reverser reconstructs a surface.Node from a typed node stored
// in an arena, enumerating each class's declared properties and array in
// the class's own order rather than the order a node happened to be
// built in.
package reverser
