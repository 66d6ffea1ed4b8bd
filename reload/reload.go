// Package reload rebuilds an engine when its source files change and publishes
// the result through an engine.Holder.
//
// The watcher observes the parent directories of the sources, so editors that
// replace files by rename are seen too. Bursts of events are debounced into a
// single rebuild. A failed rebuild is logged and the published engine stays in
// place; a published engine is never modified.
package reload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/synonet/engine"
)

// DefaultDebounce is the quiet period after the last event before a rebuild.
const DefaultDebounce = 250 * time.Millisecond

// Sentinel errors for watcher construction.
var (
	ErrNoPaths   = errors.New("reload: no paths to watch")
	ErrNilTarget = errors.New("reload: nil rebuild func or holder")
)

// RebuildFunc builds a fresh engine from the current sources.
type RebuildFunc func(ctx context.Context) (*engine.Engine, error)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. d <= 0 keeps DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// OnSwap registers fn to run after each successful swap.
func OnSwap(fn func(prev, next *engine.Engine)) Option {
	return func(w *Watcher) { w.onSwap = fn }
}

// OnError registers fn to run after each failed rebuild.
func OnError(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// Watcher rebuilds and swaps the engine in a Holder when watched files change.
type Watcher struct {
	files map[string]struct{}
	dirs  []string

	rebuild RebuildFunc
	holder  *engine.Holder

	debounce time.Duration
	logger   *slog.Logger
	onSwap   func(prev, next *engine.Engine)
	onError  func(error)

	ready     chan struct{}
	readyOnce sync.Once
}

// New returns a Watcher for paths. Empty paths are ignored.
func New(paths []string, rebuild RebuildFunc, holder *engine.Holder, opts ...Option) (*Watcher, error) {
	if rebuild == nil || holder == nil {
		return nil, ErrNilTarget
	}
	w := &Watcher{
		files:    make(map[string]struct{}, len(paths)),
		rebuild:  rebuild,
		holder:   holder,
		debounce: DefaultDebounce,
		logger:   slog.New(slog.DiscardHandler),
		ready:    make(chan struct{}),
	}
	seenDir := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("reload: %s: %w", p, err)
		}
		w.files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := seenDir[dir]; !ok {
			seenDir[dir] = struct{}{}
			w.dirs = append(w.dirs, dir)
		}
	}
	if len(w.files) == 0 {
		return nil, ErrNoPaths
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Ready is closed once Run has registered every watch, or once Run has
// returned if it could not.
func (w *Watcher) Ready() <-chan struct{} { return w.ready }

func (w *Watcher) markReady() { w.readyOnce.Do(func() { close(w.ready) }) }

// Run watches until ctx is cancelled and must be called at most once. It returns
// nil on cancellation and an error only when the watches cannot be set up.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.markReady()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("reload: create watcher: %w", err)
	}
	defer fw.Close()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("reload: watch %s: %w", dir, err)
		}
	}
	w.markReady()
	w.logger.Info("watching sources", slog.Any("dirs", w.dirs), slog.Duration("debounce", w.debounce))

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("source changed", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", slog.Any("error", err))

		case <-timerC:
			timerC = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	_, ok := w.files[filepath.Clean(ev.Name)]
	return ok
}

func (w *Watcher) reload(ctx context.Context) {
	begin := time.Now()
	next, err := w.rebuild(ctx)
	if err != nil {
		attrs := []any{slog.Any("error", err), slog.Duration("elapsed", time.Since(begin))}
		if cur := w.holder.Load(); cur != nil {
			attrs = append(attrs, slog.String("generation", cur.Generation().String()))
		}
		w.logger.Error("rebuild failed, keeping current engine", attrs...)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}

	prev := w.holder.Swap(next)
	st := next.Stats()
	attrs := []any{
		slog.String("generation", st.Generation.String()),
		slog.Int("vertices", st.Vertices),
		slog.Int("edges", st.Edges),
		slog.Duration("elapsed", time.Since(begin)),
	}
	if prev != nil {
		attrs = append(attrs, slog.String("previous", prev.Generation().String()))
	}
	w.logger.Info("engine swapped", attrs...)
	if w.onSwap != nil {
		w.onSwap(prev, next)
	}
}
