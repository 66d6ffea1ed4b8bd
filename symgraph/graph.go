package symgraph

import "slices"

// Graph is an undirected, unweighted adjacency-list graph over vertex ids [0, V).
//
// Each undirected edge u-v appears once in adj[u] and once in adj[v].
// The zero value is an empty graph; Graph is only populated by Build.
type Graph struct {
	adj   [][]int
	edges int
}

// edgeKey is the unordered pair (min(u,v), max(u,v)) used to deduplicate edges.
type edgeKey struct{ lo, hi int }

func newGraph(v int) *Graph {
	return &Graph{adj: make([][]int, v)}
}

// addEdge links u and v in both directions. Callers guarantee u != v
// and that the pair has not been added before.
func (g *Graph) addEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++
}

// V returns the number of vertices.
func (g *Graph) V() int { return len(g.adj) }

// E returns the number of undirected edges.
func (g *Graph) E() int { return g.edges }

// Adj returns the neighbors of v in graph order, or nil when v is out of range.
// The slice is shared with the graph and must be treated as read-only;
// its capacity is clipped so appends never write into graph storage.
//
// Complexity: O(1).
func (g *Graph) Adj(v int) []int {
	if v < 0 || v >= len(g.adj) {
		return nil
	}
	return slices.Clip(g.adj[v])
}

// Degree returns the number of neighbors of v (0 when out of range).
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= len(g.adj) {
		return 0
	}
	return len(g.adj[v])
}

// HasEdge reports whether u and v are adjacent.
//
// Complexity: O(min(deg u, deg v)).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= len(g.adj) || v >= len(g.adj) {
		return false
	}
	if len(g.adj[u]) > len(g.adj[v]) {
		u, v = v, u
	}
	return slices.Contains(g.adj[u], v)
}
