package pathfind

import (
	"github.com/katalvlaran/synonet/bfs"
	"github.com/katalvlaran/synonet/symgraph"
)

// NoConnection is the ConnectionLevel of unknown or unconnected words.
const NoConnection = -1

// Finder runs path queries against one immutable SymbolGraph.
// It holds no mutable state and is safe for concurrent use.
type Finder struct {
	sg *symgraph.SymbolGraph
}

// New returns a Finder over sg.
func New(sg *symgraph.SymbolGraph) *Finder {
	return &Finder{sg: sg}
}

// FindPath returns a shortest path from start to end, inclusive of both words.
// It reports false when either word is not in the graph or end is unreachable.
// FindPath(w, w) returns [w] for any known w.
//
// Complexity: O(V + E) per call.
func (f *Finder) FindPath(start, end string) ([]string, bool) {
	ids, ok := f.pathIDs(start, end)
	if !ok {
		return nil, false
	}
	return f.sg.Words(ids), true
}

// ConnectionLevel returns the number of edges on a shortest path between start
// and end: 0 when they are the same known word, NoConnection when either word
// is unknown or no path exists.
func (f *Finder) ConnectionLevel(start, end string) int {
	ids, ok := f.pathIDs(start, end)
	if !ok {
		return NoConnection
	}
	return len(ids) - 1
}

// Connected reports whether some path links start and end.
func (f *Finder) Connected(start, end string) bool {
	_, ok := f.pathIDs(start, end)
	return ok
}

func (f *Finder) pathIDs(start, end string) ([]int, bool) {
	s, ok := f.sg.IndexOf(start)
	if !ok {
		return nil, false
	}
	t, ok := f.sg.IndexOf(end)
	if !ok {
		return nil, false
	}
	if s == t {
		return []int{s}, true
	}

	res, err := bfs.BFS(f.sg.Graph(), s, bfs.WithOnVisit(func(v, _ int) error {
		if v == t {
			return bfs.ErrStop
		}
		return nil
	}))
	if err != nil {
		return nil, false
	}
	ids, err := res.PathTo(t)
	if err != nil {
		return nil, false
	}
	return ids, true
}
