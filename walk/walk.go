package walk

import (
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/synonet/symgraph"
)

// DefaultMaxAttempts is the number of whole-walk attempts before giving up.
const DefaultMaxAttempts = 100

// Outcome classifies a walk result.
type Outcome int

const (
	// Found means Path holds exactly depth+1 words.
	Found Outcome = iota
	// UnknownStart means the start word is not in the graph.
	UnknownStart
	// InvalidDepth means depth < 1.
	InvalidDepth
	// Exhausted means every attempt hit a dead end before reaching depth,
	// or depth is at least the vertex count and no attempt was made.
	Exhausted
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case UnknownStart:
		return "unknown_start"
	case InvalidDepth:
		return "invalid_depth"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the value produced by Walk. Path is nil unless Outcome == Found.
type Result struct {
	Path     []string
	Attempts int
	Outcome  Outcome
}

// OK reports whether the walk reached the requested depth.
func (r Result) OK() bool { return r.Outcome == Found }

// Option configures a Walker.
type Option func(*Walker)

// WithSeed seeds the walker's generator deterministically.
func WithSeed(seed int64) Option {
	return func(w *Walker) { w.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned generator. A nil r is ignored.
// The walker serializes its own use of r; callers must not use r concurrently.
func WithRand(r *rand.Rand) Option {
	return func(w *Walker) {
		if r != nil {
			w.rng = r
		}
	}
}

// WithMaxAttempts sets the attempt budget. n < 1 keeps DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(w *Walker) {
		if n >= 1 {
			w.maxAttempts = n
		}
	}
}

// Walker draws random walks from an immutable SymbolGraph. Concurrent
// callers share only the generator, which is locked per draw.
type Walker struct {
	sg          *symgraph.SymbolGraph
	maxAttempts int

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New returns a Walker over sg.
func New(sg *symgraph.SymbolGraph, opts ...Option) *Walker {
	w := &Walker{sg: sg, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return w
}

// MaxAttempts returns the configured attempt budget.
func (w *Walker) MaxAttempts() int { return w.maxAttempts }

// Walk returns a chain of exactly depth+1 distinct words starting at start,
// each consecutive pair joined by an edge.
//
// A walk visits at most V distinct words, so depth >= V is Exhausted
// with zero attempts.
//
// Complexity: O(MaxAttempts · depth · d), d = the largest degree visited.
func (w *Walker) Walk(start string, depth int) Result {
	if depth < 1 {
		return Result{Outcome: InvalidDepth}
	}
	s, ok := w.sg.IndexOf(start)
	if !ok {
		return Result{Outcome: UnknownStart}
	}

	g := w.sg.Graph()
	if depth >= g.V() {
		return Result{Outcome: Exhausted}
	}

	path := make([]int, 0, depth+1)
	onPath := make(map[int]struct{}, depth+1)
	candidates := make([]int, 0, 16)

	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		path = append(path[:0], s)
		clear(onPath)
		onPath[s] = struct{}{}

		for step := 0; step < depth; step++ {
			candidates = candidates[:0]
			for _, nbr := range g.Adj(path[len(path)-1]) {
				if _, seen := onPath[nbr]; !seen {
					candidates = append(candidates, nbr)
				}
			}
			if len(candidates) == 0 {
				break // dead end, retry from scratch
			}
			next := candidates[w.intn(len(candidates))]
			path = append(path, next)
			onPath[next] = struct{}{}
		}

		if len(path) == depth+1 {
			return Result{Path: w.sg.Words(path), Attempts: attempt, Outcome: Found}
		}
	}
	return Result{Attempts: w.maxAttempts, Outcome: Exhausted}
}

func (w *Walker) intn(n int) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rng.Intn(n)
}
