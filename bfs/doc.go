// Package bfs provides breadth-first search over a symgraph.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: distance from start per vertex id (Unreached if not discovered)
//   - Parent: predecessor per vertex id in the BFS tree
//   - Hooks: OnEnqueue (on discovery) and OnVisit (may stop or abort the search).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E); the first time a vertex is discovered
//     is along a path with the minimum number of edges.
//   - Returning ErrStop from OnVisit ends the search as soon as a target is reached.
//
// Determinism
//
//	Neighbors are enqueued in symgraph adjacency order, so for a given graph the
//	visit sequence, and therefore the shortest path chosen among ties, is reproducible.
//	Build the graph with symgraph.WithSortedAdjacency for source-order-independent ties.
//
// Concurrency
//
//	BFS only reads the graph. All mutable state lives in a per-call walker, so any
//	number of searches may run concurrently on one graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(sg.Graph(), start)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	ids, err := res.PathTo(dest) // ErrNoPath when dest was not reached
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start id is outside [0, V).
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for unreached vertices.
//   - Wrapped hook errors from OnVisit (except ErrStop).
package bfs
