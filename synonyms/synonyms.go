// Package synonyms samples a bounded set of neighbors for every word on a path,
// for display next to the path itself. It never influences path computation.
package synonyms

import "github.com/katalvlaran/synonet/symgraph"

// DefaultCap is the number of synonyms kept per path word unless WithCap says otherwise.
const DefaultCap = 4

// Option configures a Sampler.
type Option func(*Sampler)

// WithCap bounds every synonym set to n words. n < 1 keeps DefaultCap.
func WithCap(n int) Option {
	return func(s *Sampler) {
		if n >= 1 {
			s.cap = n
		}
	}
}

// Sampler picks per-word synonym sets from an immutable SymbolGraph.
// It is safe for concurrent use.
type Sampler struct {
	sg  *symgraph.SymbolGraph
	cap int
}

// New returns a Sampler over sg.
func New(sg *symgraph.SymbolGraph, opts ...Option) *Sampler {
	s := &Sampler{sg: sg, cap: DefaultCap}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cap returns the configured per-word bound.
func (s *Sampler) Cap() int { return s.cap }

// PathSynonyms maps each word of path to at most Cap() of its neighbors,
// taken in graph order and excluding every word already on the path.
// It returns nil for an empty path. Path words unknown to the graph map to an
// empty set.
//
// Complexity: O(L·(L + d)), L = len(path), d = the largest degree visited.
func (s *Sampler) PathSynonyms(path []string) map[string][]string {
	if len(path) == 0 {
		return nil
	}

	onPath := make(map[string]struct{}, len(path))
	for _, w := range path {
		onPath[w] = struct{}{}
	}

	out := make(map[string][]string, len(path))
	for _, w := range path {
		set := make([]string, 0, s.cap)
		for _, nbr := range s.sg.Neighbors(w) {
			if len(set) == s.cap {
				break
			}
			if _, skip := onPath[nbr]; skip {
				continue
			}
			set = append(set, nbr)
		}
		out[w] = set
	}
	return out
}
