package colored

import "fmt"

// Graph is a directed graph over nodes 0..n-1 whose edges carry one of two
// colors. Adjacency is a dense slice of Arc lists in insertion order, so a
// traversal that scans OutArcs sequentially is fully deterministic.
//
// Graph is not safe for concurrent mutation; once building is done it is
// read-only and any number of searches may share it.
type Graph struct {
	arcs      [][]Arc
	edgeCount int
}

// NewGraph returns an empty Graph over n nodes.
// Returns ErrBadNodeCount if n < 1.
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNodeCount, n)
	}

	return &Graph{arcs: make([][]Arc, n)}, nil
}

// Build constructs a Graph over n nodes from two edge lists, tagging every
// edge with its color. Red edges are inserted first, then blue, each list in
// input order; OutArcs preserves that order. Duplicate edges and self-loops
// are kept as-is.
//
// Returns ErrBadNodeCount if n < 1, or ErrEndpointRange naming the offending
// edge if any endpoint falls outside [0, n-1].
func Build(n int, redEdges, blueEdges [][2]int) (*Graph, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	for _, e := range redEdges {
		if err = g.AddEdge(e[0], e[1], Red); err != nil {
			return nil, err
		}
	}
	for _, e := range blueEdges {
		if err = g.AddEdge(e[0], e[1], Blue); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddEdge appends the directed edge from→to with color c.
// Returns ErrEndpointRange if either endpoint is outside [0, n-1].
func (g *Graph) AddEdge(from, to int, c Color) error {
	n := len(g.arcs)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: %s edge %d→%d, nodes [0,%d]", ErrEndpointRange, c, from, to, n-1)
	}
	g.arcs[from] = append(g.arcs[from], Arc{To: to, Color: c})
	g.edgeCount++

	return nil
}

// NodeCount returns n, the number of nodes.
func (g *Graph) NodeCount() int { return len(g.arcs) }

// EdgeCount returns the total number of edges added, counting duplicates.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// OutArcs returns the outgoing arcs of node u in insertion order.
// The returned slice is shared with the Graph; callers must not mutate it.
func (g *Graph) OutArcs(u int) []Arc { return g.arcs[u] }
