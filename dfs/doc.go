// Package dfs implements depth-first search over a symgraph.Graph and, on top
// of it, connected-component labelling.
//
// What:
//
//   - DFS(g, start, opts...): iterative depth-first traversal recording
//     pre-order, post-order, depth and parent links. WithFullTraversal covers
//     every component, restarting from the lowest unvisited id.
//   - FindComponents(g): labels every vertex with the id of its connected
//     component. Two words are connected exactly when their labels match, so
//     connectivity checks become O(1) after one O(V + E) pass.
//
// The traversal keeps an explicit stack, so a long synonym chain cannot grow the
// goroutine stack. Neighbors are explored in adjacency order, which makes the
// result deterministic for a given graph.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start id outside [0, V)
//   - context.Canceled        traversal cancelled via WithContext
//   - hook errors             propagated from OnVisit
package dfs
