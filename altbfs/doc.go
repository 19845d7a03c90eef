// Package altbfs provides shortest alternating-color path search over a
// colored.Graph, returning per-node minimum walk lengths and reconstructable
// walks.
//
// What
//
//   - Compute, for every node, the minimum number of edges in a walk from
//     node 0 whose consecutive edges never repeat a color, or -1 when no such
//     walk exists.
//   - Returns a Result containing:
//   - Dist: per-node shortest alternating walk length (Unreachable = -1)
//   - PathTo: one shortest alternating walk, reconstructed from parent links
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a state is first discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Total over its input domain: multi-edges, self-loops, cycles, and
//     disconnected graphs all yield well-defined results.
//
// Why
//
//   - A plain node-level BFS cannot enforce alternation: whether a walk can
//     be extended depends on the color of the edge just used. Expanding each
//     node into two states — (node, last color Red) and (node, last color
//     Blue) — turns the problem into unweighted shortest path on a graph of
//     2n states, where BFS level order makes first-visit distances minimal.
//   - The two visited flags per node deliberately let a node be reached once
//     per color: those are genuinely different states with different onward
//     options.
//
// Determinism
//
//	colored.Graph returns out-arcs in insertion order and the queue is FIFO,
//	so the visit sequence is fully reproducible.
//
// Seeding
//
//	The source is enqueued twice, as (0, Red) and (0, Blue) at distance 0:
//	the first real edge of a walk may be either color, so neither is excluded
//	by a prior edge. Both source states are marked visited up front so a
//	cycle cannot re-enter the source.
//
// Complexity (n = nodes, E = edges)
//
//   - Time:   O(n + E)   (at most 2n state expansions, each edge scanned at most twice)
//   - Memory: O(n)       (queue, visited flags, distance and parent slices)
//
// Usage
//
//	// Convenience form, mirroring the raw edge-list input:
//	dist, err := altbfs.ShortestAlternatingPaths(3,
//	    [][2]int{{0, 1}},  // red
//	    [][2]int{{1, 2}},  // blue
//	)
//	// dist == [0 1 2]
//
//	// Graph form with options and walk reconstruction:
//	g, _ := colored.Build(n, redEdges, blueEdges)
//	res, err := altbfs.Search(
//	    g,
//	    altbfs.WithContext(ctx),
//	    altbfs.WithMaxDepth(4),
//	    altbfs.WithOnVisit(func(node, dist int, via colored.Color) error { return nil }),
//	)
//	walk, err := res.PathTo(target)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrOptionViolation if an invalid Option is supplied (e.g. negative MaxDepth).
//   - ErrNoPath          from Result.PathTo for an unreachable node.
//   - Wrapped user-supplied hook errors from OnVisit.
package altbfs
