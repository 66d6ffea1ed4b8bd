package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/synonet/config"
	"github.com/katalvlaran/synonet/dictionary"
	"github.com/katalvlaran/synonet/symgraph"
)

// Load reads the thesaurus and dictionary named by cfg concurrently and composes
// a new Engine. Options derived from cfg apply first, so opts override them.
// Any failure wraps ErrLoad; no partial engine is ever returned.
func Load(ctx context.Context, cfg config.Config, opts ...Option) (*Engine, error) {
	o := newOptions(append(fromConfig(cfg), opts...))

	ctx, span := o.tracer.Start(ctx, "engine.Load",
		trace.WithAttributes(
			attribute.String("thesaurus", cfg.Thesaurus.Path),
			attribute.String("dictionary", cfg.Dictionary.Path),
		),
	)
	defer span.End()

	begin := time.Now()
	fail := func(err error) (*Engine, error) {
		o.metrics.buildFailed()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.logger.Error("engine load failed",
			slog.String("thesaurus", cfg.Thesaurus.Path),
			slog.String("dictionary", cfg.Dictionary.Path),
			slog.Duration("elapsed", time.Since(begin)),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if err := cfg.Validate(); err != nil {
		return fail(err)
	}

	var (
		sg   *symgraph.SymbolGraph
		dict *dictionary.Store
		g    errgroup.Group
	)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		gopts := []symgraph.Option{
			symgraph.WithDelimiter(cfg.Thesaurus.Delimiter),
			symgraph.WithMaxLineBytes(cfg.Thesaurus.MaxLineBytes),
		}
		if cfg.Thesaurus.SortAdjacency {
			gopts = append(gopts, symgraph.WithSortedAdjacency())
		}
		var err error
		sg, err = symgraph.Load(cfg.Thesaurus.Path, gopts...)
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cfg.Dictionary.Path == "" {
			dict = dictionary.New(nil)
			return nil
		}
		var dopts []dictionary.Option
		if cfg.Dictionary.LowerKeys {
			dopts = append(dopts, dictionary.WithLowerKeys())
		}
		var err error
		dict, err = dictionary.Load(cfg.Dictionary.Path, dopts...)
		return err
	})
	if err := g.Wait(); err != nil {
		return fail(err)
	}

	e, err := newEngine(sg, dict, o)
	if err != nil {
		return fail(err)
	}

	st := e.Stats()
	span.SetAttributes(
		attribute.String("generation", st.Generation.String()),
		attribute.Int("vertices", st.Vertices),
		attribute.Int("edges", st.Edges),
		attribute.Int("definitions", st.Definitions),
	)
	span.SetStatus(codes.Ok, "")
	e.logger.Info("engine loaded",
		slog.Int("vertices", st.Vertices),
		slog.Int("edges", st.Edges),
		slog.Int("definitions", st.Definitions),
		slog.Duration("elapsed", time.Since(begin)))
	return e, nil
}
