// Package dictionary loads a word → definition table from CSV and serves lookups.
//
// The first column of every record is the key, the second the definition; extra
// columns are ignored and records with fewer than two columns are skipped. A Store
// is built once and never modified, so lookups need no locking. Definitions are
// independent of the synonym graph: a word may have one without the other.
package dictionary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
)

// NotFoundMessage is returned by Definition for words without an entry.
const NotFoundMessage = "This word is not currently in our dictionary."

// Sentinel errors for dictionary loading.
var (
	// ErrSourceUnreadable indicates the dictionary could not be opened or read.
	ErrSourceUnreadable = errors.New("dictionary: source unreadable")

	// ErrMalformed indicates the CSV could not be parsed.
	ErrMalformed = errors.New("dictionary: malformed csv")
)

// Option configures Build.
type Option func(*options)

type options struct {
	comma     rune
	lowerKeys bool
}

// WithComma sets the field separator (default ',').
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithLowerKeys lower-cases keys while loading so that normalized lookups match
// capitalized headwords.
func WithLowerKeys() Option {
	return func(o *options) { o.lowerKeys = true }
}

// Store is an immutable word → definition table.
type Store struct {
	defs map[string]string
}

// New returns a Store holding a copy of defs.
func New(defs map[string]string) *Store {
	return &Store{defs: maps.Clone(defs)}
}

// Load opens the CSV file at path and builds a Store from it.
func Load(path string, opts ...Option) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer f.Close()

	s, err := Build(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Build reads every CSV record from r. When a key repeats, the last definition wins.
func Build(r io.Reader, opts ...Option) (*Store, error) {
	o := options{comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	defs := make(map[string]string)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, perr)
			}
			return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
		}
		if len(rec) < 2 {
			continue
		}
		key := strings.TrimSpace(rec[0])
		if o.lowerKeys {
			key = strings.ToLower(key)
		}
		if key == "" {
			continue
		}
		defs[key] = strings.TrimSpace(rec[1])
	}
	return &Store{defs: defs}, nil
}

// Lookup returns the definition of word and whether one exists.
func (s *Store) Lookup(word string) (string, bool) {
	def, ok := s.defs[word]
	return def, ok
}

// Definition returns the definition of word, or NotFoundMessage.
func (s *Store) Definition(word string) string {
	if def, ok := s.defs[word]; ok {
		return def
	}
	return NotFoundMessage
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.defs) }
