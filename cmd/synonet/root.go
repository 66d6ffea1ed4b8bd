package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/synonet/config"
	"github.com/katalvlaran/synonet/engine"
)

// app carries flag values and the resolved configuration of one invocation.
type app struct {
	configPath string
	thesaurus  string
	dictionary string
	delimiter  string
	logLevel   string
	jsonOut    bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "synonet",
		Short: "Query a synonym graph for paths, walks and definitions",
		Long: `synonet builds an undirected word graph from a thesaurus adjacency file
(one record per line, first field the headword, remaining fields its synonyms)
and answers shortest-path, connection level, synonym sampling, random walk and
definition queries against it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	f.StringVar(&a.thesaurus, "thesaurus", "", "thesaurus adjacency file (overrides config)")
	f.StringVar(&a.dictionary, "dictionary", "", "definitions CSV (overrides config)")
	f.StringVar(&a.delimiter, "delimiter", "", "thesaurus field delimiter (overrides config)")
	f.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	f.BoolVar(&a.jsonOut, "json", false, "print results as JSON")

	for _, q := range queries {
		root.AddCommand(newQueryCmd(a, q))
	}
	root.AddCommand(
		newSynonymsCmd(a),
		newWalkCmd(a),
		newReplCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup resolves defaults, the config file and flag overrides, in that order.
func (a *app) setup(stderr io.Writer) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.thesaurus != "" {
		cfg.Thesaurus.Path = a.thesaurus
	}
	if a.dictionary != "" {
		cfg.Dictionary.Path = a.dictionary
	}
	if a.delimiter != "" {
		cfg.Thesaurus.Delimiter = a.delimiter
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(stderr, cfg.Log)
	return nil
}

// load builds an engine from the resolved configuration.
func (a *app) load(ctx context.Context, opts ...engine.Option) (*engine.Engine, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	e, err := engine.Load(ctx, a.cfg, append([]engine.Option{engine.WithLogger(a.logger)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load sources: %w", err)
	}
	return e, nil
}

func newLogger(w io.Writer, c config.Log) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
