// Package config holds the YAML configuration of synonet: where the thesaurus and
// dictionary live, how they are parsed, sampler and walker knobs, logging and the
// optional file watcher.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/synonet/symgraph"
	"github.com/katalvlaran/synonet/synonyms"
	"github.com/katalvlaran/synonet/walk"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of the YAML document.
type Config struct {
	Thesaurus  Thesaurus  `yaml:"thesaurus"`
	Dictionary Dictionary `yaml:"dictionary"`
	Synonyms   Synonyms   `yaml:"synonyms"`
	Walk       Walk       `yaml:"walk"`
	Log        Log        `yaml:"log"`
	Watch      Watch      `yaml:"watch"`
}

// Thesaurus describes the adjacency source.
type Thesaurus struct {
	Path          string `yaml:"path"`
	Delimiter     string `yaml:"delimiter"`
	SortAdjacency bool   `yaml:"sort_adjacency"`
	MaxLineBytes  int    `yaml:"max_line_bytes"`
}

// Dictionary describes the definitions CSV. An empty Path means no definitions.
type Dictionary struct {
	Path      string `yaml:"path"`
	LowerKeys bool   `yaml:"lower_keys"`
}

// Synonyms configures path synonym sampling.
type Synonyms struct {
	Cap int `yaml:"cap"`
}

// Walk configures the random walker. Seed 0 seeds from the clock.
type Walk struct {
	MaxAttempts int   `yaml:"max_attempts"`
	Seed        int64 `yaml:"seed"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Watch configures live reload of the sources.
type Watch struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Thesaurus: Thesaurus{
			Path:         "mthesaur.txt",
			Delimiter:    symgraph.DefaultDelimiter,
			MaxLineBytes: symgraph.DefaultMaxLineBytes,
		},
		Dictionary: Dictionary{Path: "dict.csv"},
		Synonyms:   Synonyms{Cap: synonyms.DefaultCap},
		Walk:       Walk{MaxAttempts: walk.DefaultMaxAttempts},
		Log:        Log{Level: "info", Format: "text"},
		Watch:      Watch{Debounce: 250 * time.Millisecond},
	}
}

// Load reads the YAML file at path over Default and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first invalid field, wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Thesaurus.Path == "":
		return fmt.Errorf("%w: thesaurus.path is empty", ErrInvalid)
	case c.Thesaurus.Delimiter == "":
		return fmt.Errorf("%w: thesaurus.delimiter is empty", ErrInvalid)
	case c.Thesaurus.MaxLineBytes <= 0:
		return fmt.Errorf("%w: thesaurus.max_line_bytes must be positive, got %d", ErrInvalid, c.Thesaurus.MaxLineBytes)
	case c.Synonyms.Cap < 1:
		return fmt.Errorf("%w: synonyms.cap must be at least 1, got %d", ErrInvalid, c.Synonyms.Cap)
	case c.Walk.MaxAttempts < 1:
		return fmt.Errorf("%w: walk.max_attempts must be at least 1, got %d", ErrInvalid, c.Walk.MaxAttempts)
	case c.Watch.Debounce < 0:
		return fmt.Errorf("%w: watch.debounce is negative", ErrInvalid)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
