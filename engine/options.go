package engine

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/synonet/config"
	"github.com/katalvlaran/synonet/synonyms"
	"github.com/katalvlaran/synonet/walk"
)

const tracerName = "github.com/katalvlaran/synonet/engine"

// Option configures New and Load.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	synCap   int
	walkOpts []walk.Option
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
		synCap: synonyms.DefaultCap,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records queries and builds into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracerProvider traces loads with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithSynonymCap bounds the synonyms returned per path word.
func WithSynonymCap(n int) Option {
	return func(o *options) { o.synCap = n }
}

// WithWalkSeed makes random walks reproducible.
func WithWalkSeed(seed int64) Option {
	return func(o *options) { o.walkOpts = append(o.walkOpts, walk.WithSeed(seed)) }
}

// WithWalkMaxAttempts sets the random walk attempt budget.
func WithWalkMaxAttempts(n int) Option {
	return func(o *options) { o.walkOpts = append(o.walkOpts, walk.WithMaxAttempts(n)) }
}

// fromConfig translates the sampler and walker sections of cfg.
// Seed 0 leaves the walker clock-seeded.
func fromConfig(cfg config.Config) []Option {
	opts := []Option{
		WithSynonymCap(cfg.Synonyms.Cap),
		WithWalkMaxAttempts(cfg.Walk.MaxAttempts),
	}
	if cfg.Walk.Seed != 0 {
		opts = append(opts, WithWalkSeed(cfg.Walk.Seed))
	}
	return opts
}
