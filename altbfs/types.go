// Package altbfs provides tunable options, error definitions, and the Result
// type for the alternating-color shortest-path search.
package altbfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/altpath/colored"
)

// Unreachable is the distance reported for nodes that no alternating walk
// from the source can reach.
const Unreachable = -1

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("altbfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("altbfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for an unreachable node.
	ErrNoPath = errors.New("altbfs: no alternating path to node")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize search execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, before visiting.
	// Receives the node, its distance from the source, and the color of the
	// edge it was reached through. It fires once for each seed state of the
	// source (dist 0, Red then Blue).
	OnEnqueue func(node, dist int, via colored.Color)

	// OnDequeue is called immediately before visiting a state.
	OnDequeue func(node, dist int, via colored.Color)

	// OnVisit is called when visiting a state. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(node, dist int, via colored.Color) error

	// MaxDepth, if > 0, stops exploring walks longer than this many edges.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int, colored.Color) {},
		OnDequeue: func(int, int, colored.Color) {},
		OnVisit:   func(int, int, colored.Color) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(node, dist int, via colored.Color)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(node, dist int, via colored.Color)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(node, dist int, via colored.Color) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given walk length.
//
//	d > 0: limit walks to d edges
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of an alternating-path search:
//   - Dist: per node, the minimum number of edges in any alternating walk
//     from the source, or Unreachable (-1).
//
// Per-state distance and parent links are kept internally so that PathTo can
// reconstruct one shortest alternating walk.
type Result struct {
	Dist []int

	// stateDist and stateParent are indexed by node*2 + color.
	// A parent of -1 marks a seed state at the source.
	stateDist   []int
	stateParent []int
}

// Reached reports whether any alternating walk from the source reaches v.
func (r *Result) Reached(v int) bool { return r.Dist[v] != Unreachable }

// PathTo reconstructs one shortest alternating walk from the source to dest,
// returned as the node sequence source..dest (length Dist[dest]+1).
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) || !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	// pick the incoming color whose state realizes Dist[dest]
	state := dest*2 + int(colored.Red)
	if alt := dest*2 + int(colored.Blue); r.stateDist[alt] >= 0 &&
		(r.stateDist[state] < 0 || r.stateDist[alt] < r.stateDist[state]) {
		state = alt
	}
	// build reversed walk by following parent states
	path := []int{}
	for s := state; s >= 0; s = r.stateParent[s] {
		path = append(path, s/2)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
