// Package synonet is an in-memory synonym network: it turns a thesaurus
// adjacency list into an undirected word graph and answers how words connect.
//
// What can you ask it?
//
//   - Is a word known, and are two words connected at all?
//   - What is a shortest chain of synonyms between two words, and how long is it?
//   - Which synonyms surround each word of such a chain?
//   - What random chain of N distinct words starts from a given word?
//   - What does a word mean, according to a side dictionary?
//
// Packages, leaf first:
//
//	symgraph/   word ⇄ id index plus the deduplicated undirected graph
//	bfs/        breadth-first search with hooks, used for shortest paths
//	dfs/        iterative depth-first search and connected components
//	pathfind/   shortest path, connection level and connectivity by word
//	synonyms/   capped synonym sampling along a path
//	walk/       bounded random walks with a seedable source
//	dictionary/ CSV word → definition store
//	engine/     read-only facade over all of the above, metrics and tracing
//	reload/     file watcher that rebuilds and swaps engines
//	config/     YAML configuration
//	cmd/synonet command line and interactive repl
//
// Every structure is built once and never mutated; a changed source produces a
// new engine that is swapped in atomically, so queries never lock.
package synonet
