package symgraph

import "fmt"

// Index is the bijection between words and dense vertex ids.
// It is filled during the first construction pass and never changes afterwards.
type Index struct {
	ids   map[string]int // word → id
	words []string       // id → word
}

func newIndex() *Index {
	return &Index{ids: make(map[string]int)}
}

// add registers word if unseen and returns its id.
func (x *Index) add(word string) int {
	if id, ok := x.ids[word]; ok {
		return id
	}
	id := len(x.words)
	x.ids[word] = id
	x.words = append(x.words, word)
	return id
}

// Len returns the number of indexed words (V).
func (x *Index) Len() int { return len(x.words) }

// Contains reports whether word is a vertex.
func (x *Index) Contains(word string) bool {
	_, ok := x.ids[word]
	return ok
}

// IndexOf returns the vertex id of word.
func (x *Index) IndexOf(word string) (int, bool) {
	id, ok := x.ids[word]
	return id, ok
}

// NameOf returns the word owning vertex v.
// Returns ErrVertexOutOfRange unless 0 <= v < Len().
func (x *Index) NameOf(v int) (string, error) {
	if v < 0 || v >= len(x.words) {
		return "", fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(x.words))
	}
	return x.words[v], nil
}

// name is NameOf without the range check, for ids produced by this graph.
func (x *Index) name(v int) string { return x.words[v] }
