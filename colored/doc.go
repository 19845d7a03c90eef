// Package colored provides the two-color directed graph representation
// consumed by the altbfs search.
//
// What
//
//   - Dense integer nodes 0..n-1, directed edges, each edge tagged Red or Blue.
//   - Build(n, redEdges, blueEdges) assembles the adjacency structure from two
//     ordered edge lists in one pass; red edges first, then blue, preserving
//     input order inside each list.
//   - Duplicate edges and self-loops are accepted and retained verbatim.
//   - After construction the Graph is read-only: any number of concurrent
//     searches may share one instance.
//
// Why
//
//   - Alternating-path search needs the color of every edge at hand while
//     scanning a node's out-edges; tagging each Arc once at build time keeps
//     the traversal inner loop branch-cheap.
//   - Validating endpoints here (ErrEndpointRange) keeps the search layer
//     total: by the time altbfs runs, every index is in range.
//
// Determinism
//
//	OutArcs returns arcs in insertion order, so identical inputs always
//	produce identical traversal order downstream.
//
// Complexity (n = nodes, E = edges)
//
//   - Build: O(n + E) time, O(n + E) memory.
//   - OutArcs: O(1), no copying.
//
// Usage
//
//	g, err := colored.Build(3, [][2]int{{0, 1}}, [][2]int{{1, 2}})
//	if err != nil {
//	    // ErrBadNodeCount or ErrEndpointRange
//	}
//	for _, a := range g.OutArcs(0) {
//	    fmt.Println(a.To, a.Color)
//	}
package colored
