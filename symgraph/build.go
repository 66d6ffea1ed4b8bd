package symgraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// SymbolGraph is an immutable word graph: an Index plus the Graph over its ids.
type SymbolGraph struct {
	index *Index
	graph *Graph
}

// Load opens the file at path and builds a SymbolGraph from it.
// Open failures wrap ErrSourceUnreadable.
func Load(path string, opts ...Option) (*SymbolGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer f.Close()

	sg, err := Build(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sg, nil
}

// Build reads every record from r once, then constructs the Index (pass 1)
// and the deduplicated Graph (pass 2).
//
// Returns ErrEmptyDelimiter, ErrSourceUnreadable, ErrInvalidEncoding or ErrEmptySource.
//
// Complexity: O(F) time and memory, where F is the total number of fields.
func Build(r io.Reader, opts ...Option) (*SymbolGraph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.delimiter == "" {
		return nil, ErrEmptyDelimiter
	}

	records, err := readRecords(r, o)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptySource
	}

	// Pass 1: assign ids in first-occurrence order.
	idx := newIndex()
	for _, rec := range records {
		for _, field := range rec {
			idx.add(field)
		}
	}

	// Pass 2: connect each head to the rest of its record, once per unordered pair.
	g := newGraph(idx.Len())
	seen := make(map[edgeKey]struct{})
	for _, rec := range records {
		v := idx.ids[rec[0]]
		for _, field := range rec[1:] {
			w := idx.ids[field]
			if v == w {
				continue
			}
			key := edgeKey{lo: min(v, w), hi: max(v, w)}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			g.addEdge(v, w)
		}
	}

	if o.sortAdj {
		for v := range g.adj {
			slices.SortFunc(g.adj[v], func(a, b int) int {
				return strings.Compare(idx.words[a], idx.words[b])
			})
		}
	}

	return &SymbolGraph{index: idx, graph: g}, nil
}

// readRecords splits the source into non-empty records of trimmed, non-empty fields.
func readRecords(r io.Reader, o buildOptions) ([][]string, error) {
	sc := bufio.NewScanner(r)
	// the larger of cap(buf) and max wins, so the initial buffer must not exceed the limit
	sc.Buffer(make([]byte, 0, min(64*1024, o.maxLineBytes)), o.maxLineBytes)

	var (
		records [][]string
		line    int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidEncoding, line)
		}
		var rec []string
		for _, field := range strings.Split(text, o.delimiter) {
			if field = strings.TrimSpace(field); field != "" {
				rec = append(rec, field)
			}
		}
		if len(rec) > 0 {
			records = append(records, rec)
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrSourceUnreadable, line+1, o.maxLineBytes)
		}
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	return records, nil
}

// Index returns the word ↔ id mapping.
func (sg *SymbolGraph) Index() *Index { return sg.index }

// Graph returns the underlying id graph.
func (sg *SymbolGraph) Graph() *Graph { return sg.graph }

// Contains reports whether word is a vertex.
func (sg *SymbolGraph) Contains(word string) bool { return sg.index.Contains(word) }

// IndexOf returns the vertex id of word.
func (sg *SymbolGraph) IndexOf(word string) (int, bool) { return sg.index.IndexOf(word) }

// NameOf returns the word of vertex v, or ErrVertexOutOfRange.
func (sg *SymbolGraph) NameOf(v int) (string, error) { return sg.index.NameOf(v) }

// Words maps vertex ids to words. It panics on ids outside [0, V),
// so only pass ids obtained from this graph.
func (sg *SymbolGraph) Words(ids []int) []string {
	out := make([]string, len(ids))
	for i, v := range ids {
		out[i] = sg.index.name(v)
	}
	return out
}

// Neighbors returns the words adjacent to word in graph order,
// or nil when word is not a vertex.
func (sg *SymbolGraph) Neighbors(word string) []string {
	v, ok := sg.index.IndexOf(word)
	if !ok {
		return nil
	}
	return sg.Words(sg.graph.adj[v])
}
