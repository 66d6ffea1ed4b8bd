package symgraph

import (
	"errors"
	"strings"
)

// Sentinel errors for symbol graph construction and lookup.
var (
	// ErrSourceUnreadable indicates the adjacency source could not be opened or read.
	ErrSourceUnreadable = errors.New("symgraph: source unreadable")

	// ErrInvalidEncoding indicates a source line is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("symgraph: source is not valid UTF-8")

	// ErrEmptySource indicates the source contained no records.
	ErrEmptySource = errors.New("symgraph: source is empty")

	// ErrEmptyDelimiter indicates an empty field delimiter was configured.
	ErrEmptyDelimiter = errors.New("symgraph: delimiter is empty")

	// ErrVertexOutOfRange indicates a vertex id outside [0, V).
	ErrVertexOutOfRange = errors.New("symgraph: vertex id out of range")
)

const (
	// DefaultDelimiter separates fields of a record unless WithDelimiter says otherwise.
	DefaultDelimiter = ","

	// DefaultMaxLineBytes bounds a single source line. Thesaurus rows for common
	// words list thousands of neighbors, far beyond bufio's 64 KiB default.
	DefaultMaxLineBytes = 1 << 20
)

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	delimiter    string
	sortAdj      bool
	maxLineBytes int
}

func defaultOptions() buildOptions {
	return buildOptions{
		delimiter:    DefaultDelimiter,
		maxLineBytes: DefaultMaxLineBytes,
	}
}

// WithDelimiter sets the field separator. An empty delimiter makes Build
// fail with ErrEmptyDelimiter.
func WithDelimiter(d string) Option {
	return func(o *buildOptions) { o.delimiter = d }
}

// WithSortedAdjacency sorts every adjacency list lexicographically by word once
// the graph is built, making BFS tie-breaks independent of source order.
func WithSortedAdjacency() Option {
	return func(o *buildOptions) { o.sortAdj = true }
}

// WithMaxLineBytes raises or lowers the longest accepted source line.
// Values <= 0 keep DefaultMaxLineBytes.
func WithMaxLineBytes(n int) Option {
	return func(o *buildOptions) {
		if n > 0 {
			o.maxLineBytes = n
		}
	}
}

// Normalize lower-cases and trims a word the way lookups expect it.
// The graph itself stores fields verbatim; callers normalize user input.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
