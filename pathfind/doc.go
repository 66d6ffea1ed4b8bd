// Package pathfind answers shortest-connection queries between words of a
// symgraph.SymbolGraph.
//
// FindPath returns the fewest-edge chain of words linking two words, found by a
// breadth-first search that stops as soon as the destination is visited.
// ConnectionLevel is the edge count of that chain: 0 for a word paired with
// itself, NoConnection (-1) when either word is unknown or the two are not
// connected. Lookups never fail with an error; misses are plain values.
//
// When several shortest paths exist, the one returned follows BFS visitation
// order, which is the graph's adjacency order. Callers must not rely on a
// particular tie-break beyond "some shortest path".
package pathfind
