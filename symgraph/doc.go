// Package symgraph builds a symbol graph: an undirected graph whose vertices are
// identified by name (words) rather than by raw integer id.
//
// What
//
//   - Index maps every distinct word to a dense vertex id in [0, V) and back.
//   - Graph stores, for each vertex id, the ids of its neighbors.
//   - SymbolGraph pairs the two; both are built together from one source read
//     and are immutable afterwards.
//
// Source format
//
//	one record per line, fields separated by a delimiter (default ","):
//
//	    happy,glad,joyful
//	    joyful,elated
//
//	The first field names the vertex, the remaining fields name its neighbors.
//
// Construction
//
//	Build runs exactly two passes over the records:
//	  1. every field of every record is registered; unseen words receive the next
//	     sequential id, so ids follow first-occurrence order across the whole source.
//	  2. the head of each record is connected to every other field of that record.
//	     An edge is recorded only if the unordered pair (min(u,v), max(u,v)) has not
//	     been seen, so "a,b" on one line and "b,a" on another yield a single edge.
//
// Invariants
//
//   - Index is a bijection over [0, V).
//   - Adjacency is symmetric: v ∈ Adj(u) ⇔ u ∈ Adj(v).
//   - No parallel edges, no self-loops.
//
// Determinism
//
//	Adjacency lists keep insertion order (the order edges were discovered in pass 2).
//	WithSortedAdjacency sorts every list by word so traversal tie-breaks do not depend
//	on how the source was ordered.
//
// Concurrency
//
//	A built SymbolGraph is read-only; any number of goroutines may query it without
//	locks. There is no mutation API: to change the graph, build a new one.
//
// Errors
//
//   - ErrSourceUnreadable  the source could not be opened or read.
//   - ErrInvalidEncoding   a line is not valid UTF-8.
//   - ErrEmptySource       the source holds no records.
//   - ErrEmptyDelimiter    WithDelimiter("") was supplied.
//   - ErrVertexOutOfRange  NameOf was asked for an id outside [0, V).
package symgraph
