// Package colored defines the two-color directed graph consumed by the
// alternating-path search: Color, Arc, Graph, sentinel errors, and the
// NewGraph constructor.
//
// Nodes are dense integers 0..n-1. Edges are directed and carry exactly one
// of two colors. Self-loops and parallel edges are always permitted; the
// search layer decides what to do with them.
//
// Errors:
//
//	ErrBadNodeCount  - node count below 1.
//	ErrEndpointRange - edge endpoint outside [0, n-1].
package colored

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrBadNodeCount indicates a node count below the minimum of 1.
	ErrBadNodeCount = errors.New("colored: node count must be at least 1")

	// ErrEndpointRange indicates an edge endpoint outside [0, n-1].
	ErrEndpointRange = errors.New("colored: edge endpoint out of range")
)

// Color labels a directed edge. Exactly two colors exist; a valid
// alternating walk never uses the same color on consecutive edges.
type Color uint8

const (
	// Red is the first edge color.
	Red Color = iota

	// Blue is the second edge color.
	Blue
)

// Other returns the opposite color.
func (c Color) Other() Color {
	if c == Red {
		return Blue
	}

	return Red
}

// String returns "red" or "blue".
func (c Color) String() string {
	if c == Red {
		return "red"
	}

	return "blue"
}

// Arc is one outgoing edge: destination node plus edge color.
// The source node is implicit in the adjacency slot holding the Arc.
type Arc struct {
	// To is the destination node.
	To int

	// Color is the edge color.
	Color Color
}
