// Package printer formats a surface.Node back into the canonical
// bracketed syntax: one space between elements, barewords left
// unquoted, and quoting applied whenever a string needs it.
package printer
