package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/synonet/dfs"
	"github.com/katalvlaran/synonet/dictionary"
	"github.com/katalvlaran/synonet/pathfind"
	"github.com/katalvlaran/synonet/symgraph"
	"github.com/katalvlaran/synonet/synonyms"
	"github.com/katalvlaran/synonet/walk"
)

// Sentinel errors for engine construction.
var (
	// ErrNilSource indicates New was given a nil graph or dictionary.
	ErrNilSource = errors.New("engine: nil graph or dictionary")

	// ErrLoad wraps every failure of Load.
	ErrLoad = errors.New("engine: load failed")
)

// PathInfo bundles everything known about the shortest path between two words.
type PathInfo struct {
	Path        []string            `json:"path"`
	Level       int                 `json:"level"`
	Synonyms    map[string][]string `json:"synonyms"`
	Definitions map[string]string   `json:"definitions"`
}

// Stats describes one built engine.
type Stats struct {
	Generation  uuid.UUID `json:"generation"`
	Vertices    int       `json:"vertices"`
	Edges       int       `json:"edges"`
	Definitions int       `json:"definitions"`

	// Components counts connected components; LargestComponent is the vertex
	// count of the biggest one.
	Components       int       `json:"components"`
	LargestComponent int       `json:"largest_component"`
	BuiltAt          time.Time `json:"built_at"`
}

// Engine answers connectivity, synonym, walk and definition queries over one
// immutable graph and dictionary.
type Engine struct {
	sg      *symgraph.SymbolGraph
	dict    *dictionary.Store
	comps   *dfs.Components
	finder  *pathfind.Finder
	sampler *synonyms.Sampler
	walker  *walk.Walker

	logger  *slog.Logger
	metrics *Metrics

	generation uuid.UUID
	builtAt    time.Time
}

// New composes an Engine over sg and dict, which must not be modified afterwards.
func New(sg *symgraph.SymbolGraph, dict *dictionary.Store, opts ...Option) (*Engine, error) {
	o := newOptions(opts)
	if sg == nil || dict == nil {
		o.metrics.buildFailed()
		return nil, ErrNilSource
	}
	e, err := newEngine(sg, dict, o)
	if err != nil {
		o.metrics.buildFailed()
		return nil, err
	}
	return e, nil
}

func newEngine(sg *symgraph.SymbolGraph, dict *dictionary.Store, o options) (*Engine, error) {
	comps, err := dfs.FindComponents(sg.Graph())
	if err != nil {
		return nil, fmt.Errorf("engine: label components: %w", err)
	}
	e := &Engine{
		sg:         sg,
		dict:       dict,
		comps:      comps,
		finder:     pathfind.New(sg),
		sampler:    synonyms.New(sg, synonyms.WithCap(o.synCap)),
		walker:     walk.New(sg, o.walkOpts...),
		metrics:    o.metrics,
		generation: uuid.New(),
		builtAt:    time.Now(),
	}
	e.logger = o.logger.With(slog.String("generation", e.generation.String()))
	o.metrics.built(e.Stats())
	return e, nil
}

// Generation identifies this engine among rebuilds.
func (e *Engine) Generation() uuid.UUID { return e.generation }

// Graph exposes the underlying symbol graph.
func (e *Engine) Graph() *symgraph.SymbolGraph { return e.sg }

// Stats returns the size and identity of the engine.
func (e *Engine) Stats() Stats {
	return Stats{
		Generation:       e.generation,
		Vertices:         e.sg.Graph().V(),
		Edges:            e.sg.Graph().E(),
		Definitions:      e.dict.Len(),
		Components:       e.comps.Count(),
		LargestComponent: e.comps.Largest(),
		BuiltAt:          e.builtAt,
	}
}

// Contains reports whether word is a vertex of the graph.
func (e *Engine) Contains(word string) bool {
	start := time.Now()
	ok := e.sg.Contains(word)
	e.metrics.query("contains", hitOrMiss(ok), start)
	return ok
}

// FindPath returns a shortest chain of words from a to b inclusive.
// The bool is false when either word is unknown or no chain exists.
func (e *Engine) FindPath(a, b string) ([]string, bool) {
	start := time.Now()
	path, ok := e.finder.FindPath(a, b)
	e.metrics.query("find_path", hitOrMiss(ok), start)
	return path, ok
}

// ConnectionLevel returns the number of edges on a shortest chain from a to b,
// or pathfind.NoConnection.
func (e *Engine) ConnectionLevel(a, b string) int {
	start := time.Now()
	level := e.finder.ConnectionLevel(a, b)
	e.metrics.query("connection_level", hitOrMiss(level != pathfind.NoConnection), start)
	return level
}

// Connected reports whether a chain exists between a and b. It compares
// component labels instead of searching.
func (e *Engine) Connected(a, b string) bool {
	start := time.Now()
	u, okA := e.sg.IndexOf(a)
	v, okB := e.sg.IndexOf(b)
	ok := okA && okB && e.comps.Same(u, v)
	e.metrics.query("connected", hitOrMiss(ok), start)
	return ok
}

// PathSynonyms samples up to the configured cap of neighbors for every word of path.
func (e *Engine) PathSynonyms(path []string) map[string][]string {
	start := time.Now()
	syn := e.sampler.PathSynonyms(path)
	e.metrics.query("path_synonyms", hitOrMiss(len(syn) > 0), start)
	return syn
}

// RandomWalk returns depth+1 distinct words forming a chain from startWord.
// The bool is false when the start is unknown, depth < 1, or every attempt
// dead-ended.
func (e *Engine) RandomWalk(startWord string, depth int) ([]string, bool) {
	start := time.Now()
	res := e.walker.Walk(startWord, depth)
	e.metrics.query("random_walk", res.Outcome.String(), start)
	if res.Outcome == walk.Exhausted {
		e.logger.Debug("random walk exhausted",
			slog.String("start", startWord),
			slog.Int("depth", depth),
			slog.Int("attempts", res.Attempts))
	}
	return res.Path, res.OK()
}

// DefinitionOf returns the definition of word or dictionary.NotFoundMessage.
func (e *Engine) DefinitionOf(word string) string {
	start := time.Now()
	def, ok := e.dict.Lookup(word)
	e.metrics.query("definition", hitOrMiss(ok), start)
	if !ok {
		return dictionary.NotFoundMessage
	}
	return def
}

// Definitions maps every word of path to its definition or NotFoundMessage.
func (e *Engine) Definitions(path []string) map[string]string {
	if len(path) == 0 {
		return nil
	}
	start := time.Now()
	defs := make(map[string]string, len(path))
	found := 0
	for _, w := range path {
		if def, ok := e.dict.Lookup(w); ok {
			defs[w] = def
			found++
			continue
		}
		defs[w] = dictionary.NotFoundMessage
	}
	e.metrics.query("definitions", hitOrMiss(found > 0), start)
	return defs
}

// PathInfo resolves the shortest path between a and b together with its level,
// sampled synonyms and definitions. The bool is false when no path exists.
func (e *Engine) PathInfo(a, b string) (PathInfo, bool) {
	start := time.Now()
	path, ok := e.finder.FindPath(a, b)
	e.metrics.query("path_info", hitOrMiss(ok), start)
	if !ok {
		return PathInfo{Level: pathfind.NoConnection}, false
	}
	return PathInfo{
		Path:        path,
		Level:       len(path) - 1,
		Synonyms:    e.sampler.PathSynonyms(path),
		Definitions: e.Definitions(path),
	}, true
}
