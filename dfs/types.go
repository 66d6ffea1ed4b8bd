package dfs

import (
	"context"
	"errors"
)

// Unvisited marks Depth, Parent and Root entries of vertices the traversal never reached.
const Unvisited = -1

var (
	// ErrGraphNil indicates a nil graph was passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start id is outside the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures DFS.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked once per discovered vertex.
	Ctx context.Context

	// OnVisit is called in pre-order with the vertex, its depth and the root of
	// its tree. A non-nil error aborts the traversal.
	OnVisit func(v, depth, root int) error

	// FullTraversal restarts from every unvisited vertex in id order.
	FullTraversal bool
}

// DefaultOptions returns a background context, no hook and single-tree mode.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the pre-order hook.
func WithOnVisit(fn func(v, depth, root int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithFullTraversal makes DFS cover every component.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result collects the traversal. Slices indexed by vertex id have length V.
type Result struct {
	// PreOrder lists vertices in discovery order.
	PreOrder []int
	// PostOrder lists vertices in finish order.
	PostOrder []int
	// Depth is the tree depth of each vertex, or Unvisited.
	Depth []int
	// Parent is the tree parent of each vertex, Unvisited for roots and unreached vertices.
	Parent []int
	// Root is the root of the tree containing each vertex, or Unvisited.
	Root []int
}

// Visited reports whether v was reached.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Root) && r.Root[v] != Unvisited
}
