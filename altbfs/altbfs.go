// Package altbfs computes shortest alternating-color paths in a two-color
// directed graph, via breadth-first search over (node, last-edge-color)
// states.
//
// The search explores states in increasing walk length from node 0, with
// optional hooks, depth limiting, and cancellation.
package altbfs

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/altpath/colored"
)

// queueItem pairs a node with its walk length and the color of the edge it
// was reached through.
type queueItem struct {
	node int
	dist int
	via  colored.Color
}

// walker encapsulates mutable search state.
type walker struct {
	graph *colored.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	// visited is indexed by node*2 + color; a state is expanded at most once,
	// which bounds the traversal even on cyclic graphs.
	visited []bool
	res     *Result
}

// Search runs the alternating-path BFS on g from node 0, applying any number
// of functional Options. The returned Result maps every node to the minimum
// number of edges in any walk from node 0 whose consecutive edges never share
// a color, or Unreachable (-1) if no such walk exists.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options, or
// any user-supplied hook error; on hook or cancellation errors the partial
// Result computed so far is returned alongside the error.
func Search(g *colored.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker over the 2n-state space
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, 2*n),
		visited: make([]bool, 2*n),
		res: &Result{
			Dist:        make([]int, n),
			stateDist:   make([]int, 2*n),
			stateParent: make([]int, 2*n),
		},
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = math.MaxInt
	}
	for s := range w.res.stateDist {
		w.res.stateDist[s] = -1
		w.res.stateParent[s] = -1
	}

	// Seed both colors at the source: the first real edge may be either, so
	// neither is excluded by a prior edge. Marking both states visited up
	// front keeps a cycle from re-entering the source.
	w.enqueue(0, 0, colored.Red, -1)
	w.enqueue(0, 0, colored.Blue, -1)

	err := w.loop()
	w.finalize()

	return w.res, err
}

// ShortestAlternatingPaths is the convenience form: it builds the graph from
// n and the two edge lists and returns only the distance slice, where entry i
// is the minimum edge count of an alternating walk from node 0 to node i, or
// -1 if none exists. Entry 0 is always 0.
//
// Returns colored.ErrBadNodeCount or colored.ErrEndpointRange for invalid
// input, plus any error Search can return.
func ShortestAlternatingPaths(n int, redEdges, blueEdges [][2]int, opts ...Option) ([]int, error) {
	g, err := colored.Build(n, redEdges, blueEdges)
	if err != nil {
		return nil, err
	}
	res, err := Search(g, opts...)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// enqueue marks state (node, via) visited at distance d, records its parent
// state, first-discovery distance, calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(node, d int, via colored.Color, parent int) {
	s := node*2 + int(via)
	w.visited[s] = true
	w.res.stateDist[s] = d
	w.res.stateParent[s] = parent
	if d < w.res.Dist[node] {
		w.res.Dist[node] = d
	}
	w.opts.OnEnqueue(node, d, via)
	w.queue = append(w.queue, queueItem{node: node, dist: d, via: via})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per state)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.dist, item.via)

	return item
}

// visit calls OnVisit for the state.
func (w *walker) visit(item queueItem) error {
	if err := w.opts.OnVisit(item.node, item.dist, item.via); err != nil {
		return fmt.Errorf("altbfs: OnVisit error at node %d: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors scans the out-arcs of the current node in adjacency order
// and enqueues every unseen state reachable without repeating the incoming
// color.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.dist + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	parent := item.node*2 + int(item.via)
	for _, a := range w.graph.OutArcs(item.node) {
		// alternation: the next edge must switch color
		if a.Color == item.via {
			continue
		}
		// first time in this (node, color) state?
		if s := a.To*2 + int(a.Color); !w.visited[s] {
			w.enqueue(a.To, next, a.Color, parent)
		}
	}
}

// finalize replaces the internal infinity sentinel with Unreachable.
func (w *walker) finalize() {
	for i, d := range w.res.Dist {
		if d == math.MaxInt {
			w.res.Dist[i] = Unreachable
		}
	}
}
