// Package altpath computes shortest paths under an edge-color alternation
// constraint: walks in a two-color directed graph where no two consecutive
// edges share a color.
//
// 🚀 What is altpath?
//
//	A small, focused library in the lvlath family:
//		• colored: two-color directed graph core — dense integer nodes,
//		  color-tagged arcs, endpoint validation
//		• altbfs:  breadth-first search over (node, last-color) states,
//		  per-node shortest alternating walk lengths, walk reconstruction
//
// ✨ Why choose altpath?
//
//   - Minimal API – build from two edge lists, get one distance slice back
//   - Total over its inputs – cycles, self-loops, multi-edges, and
//     disconnected graphs all yield well-defined answers (-1 = unreachable)
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – OnEnqueue/OnDequeue/OnVisit hooks and context cancellation
//
// Quick ASCII example:
//
//	0 ──red──▶ 1 ──blue──▶ 2
//
//	dist, _ := altbfs.ShortestAlternatingPaths(3,
//	    [][2]int{{0, 1}}, [][2]int{{1, 2}})
//	// dist == [0 1 2]
//
// Dive into the package docs of colored and altbfs for the full contract,
// determinism guarantees, and complexity notes.
//
//	go get github.com/katalvlaran/altpath
package altpath
