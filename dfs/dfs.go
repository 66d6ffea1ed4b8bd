package dfs

import (
	"fmt"

	"github.com/katalvlaran/synonet/symgraph"
)

// frame is one entry of the explicit DFS stack: a vertex and the index of the
// next neighbor to examine.
type frame struct {
	v    int
	next int
}

// walker encapsulates mutable DFS state. The graph itself is never written.
type walker struct {
	graph *symgraph.Graph
	opts  Options
	res   *Result
	stack []frame
}

// DFS performs depth-first search on g from start, or over every component
// when WithFullTraversal is set (start is then ignored).
// On error the partial Result is returned alongside it.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *symgraph.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.V()
	if !o.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, o)
	if !o.FullTraversal {
		return w.res, w.traverse(start)
	}
	for v := 0; v < n; v++ {
		if w.res.Root[v] != Unvisited {
			continue
		}
		if err := w.traverse(v); err != nil {
			return w.res, err
		}
	}
	return w.res, nil
}

func newWalker(g *symgraph.Graph, o Options) *walker {
	n := g.V()
	res := &Result{
		PreOrder:  make([]int, 0, n),
		PostOrder: make([]int, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
		Root:      make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = Unvisited
		res.Parent[i] = Unvisited
		res.Root[i] = Unvisited
	}
	return &walker{graph: g, opts: o, res: res}
}

// discover records v and pushes it onto the stack.
func (w *walker) discover(v, parent, depth, root int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Root[v] = root
	w.res.PreOrder = append(w.res.PreOrder, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth, root); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}
	w.stack = append(w.stack, frame{v: v})
	return nil
}

// traverse explores the tree rooted at root.
func (w *walker) traverse(root int) error {
	if err := w.discover(root, Unvisited, 0, root); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		adj := w.graph.Adj(top.v)

		advanced := false
		for top.next < len(adj) {
			nbr := adj[top.next]
			top.next++
			if w.res.Root[nbr] != Unvisited {
				continue
			}
			// discover may grow the stack, so top is not used past this call.
			if err := w.discover(nbr, top.v, w.res.Depth[top.v]+1, root); err != nil {
				return err
			}
			advanced = true
			break
		}
		if advanced {
			continue
		}

		w.res.PostOrder = append(w.res.PostOrder, top.v)
		w.stack = w.stack[:len(w.stack)-1]
	}
	return nil
}
