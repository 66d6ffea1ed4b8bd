package reload_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synonet/config"
	"github.com/katalvlaran/synonet/engine"
	"github.com/katalvlaran/synonet/reload"
)

type fixture struct {
	cfg    config.Config
	holder *engine.Holder
	swaps  atomic.Int32
	errs   chan error
	cancel context.CancelFunc
	done   chan error
}

func start(t *testing.T, extra ...reload.Option) *fixture {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Thesaurus.Path = filepath.Join(dir, "thesaurus.txt")
	cfg.Dictionary.Path = filepath.Join(dir, "dict.csv")
	require.NoError(t, os.WriteFile(cfg.Thesaurus.Path, []byte("happy,glad\n"), 0o600))
	require.NoError(t, os.WriteFile(cfg.Dictionary.Path, []byte("happy,Feeling pleasure.\n"), 0o600))

	first, err := engine.Load(context.Background(), cfg)
	require.NoError(t, err)

	f := &fixture{
		cfg:    cfg,
		holder: engine.NewHolder(first),
		errs:   make(chan error, 8),
		done:   make(chan error, 1),
	}
	rebuild := func(ctx context.Context) (*engine.Engine, error) {
		return engine.Load(ctx, cfg)
	}
	opts := append([]reload.Option{
		reload.WithDebounce(20 * time.Millisecond),
		reload.OnSwap(func(_, _ *engine.Engine) { f.swaps.Add(1) }),
		reload.OnError(func(err error) { f.errs <- err }),
	}, extra...)

	w, err := reload.New([]string{cfg.Thesaurus.Path, cfg.Dictionary.Path}, rebuild, f.holder, opts...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	go func() { f.done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case err := <-f.done:
		cancel()
		t.Fatalf("watcher exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher not ready")
	}
	t.Cleanup(f.stop)
	return f
}

func (f *fixture) stop() {
	f.cancel()
	<-f.done
}

func TestNew_Validation(t *testing.T) {
	h := engine.NewHolder(nil)
	rebuild := func(context.Context) (*engine.Engine, error) { return nil, nil }

	_, err := reload.New(nil, rebuild, h)
	assert.ErrorIs(t, err, reload.ErrNoPaths)
	_, err = reload.New([]string{"", ""}, rebuild, h)
	assert.ErrorIs(t, err, reload.ErrNoPaths)
	_, err = reload.New([]string{"a.txt"}, nil, h)
	assert.ErrorIs(t, err, reload.ErrNilTarget)
	_, err = reload.New([]string{"a.txt"}, rebuild, nil)
	assert.ErrorIs(t, err, reload.ErrNilTarget)
}

func TestWatcher_ReadyClosedWhenSetupFails(t *testing.T) {
	h := engine.NewHolder(nil)
	rebuild := func(context.Context) (*engine.Engine, error) { return nil, nil }
	missing := filepath.Join(t.TempDir(), "gone", "thesaurus.txt")

	w, err := reload.New([]string{missing}, rebuild, h)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()

	select {
	case <-w.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("ready never closed")
	}
	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
}

func TestWatcher_SwapsOnWrite(t *testing.T) {
	f := start(t)
	before := f.holder.Load()
	assert.False(t, before.Contains("joyful"))

	require.NoError(t, os.WriteFile(f.cfg.Thesaurus.Path, []byte("happy,glad,joyful\n"), 0o600))

	require.Eventually(t, func() bool {
		return f.holder.Load().Contains("joyful")
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotEqual(t, before.Generation(), f.holder.Load().Generation())
	assert.False(t, before.Contains("joyful"), "published engines are never modified")
}

func TestWatcher_DictionaryChange(t *testing.T) {
	f := start(t)

	require.NoError(t, os.WriteFile(f.cfg.Dictionary.Path, []byte("glad,Pleased.\n"), 0o600))

	require.Eventually(t, func() bool {
		return f.holder.Load().DefinitionOf("glad") == "Pleased."
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_KeepsEngineOnBrokenWrite(t *testing.T) {
	f := start(t)
	before := f.holder.Load()

	require.NoError(t, os.WriteFile(f.cfg.Thesaurus.Path, nil, 0o600))

	select {
	case err := <-f.errs:
		assert.ErrorIs(t, err, engine.ErrLoad)
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild error not reported")
	}
	assert.Same(t, before, f.holder.Load())
	assert.Zero(t, f.swaps.Load())
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	f := start(t)
	other := filepath.Join(filepath.Dir(f.cfg.Thesaurus.Path), "notes.txt")

	require.NoError(t, os.WriteFile(other, []byte("scratch\n"), 0o600))

	assert.Never(t, func() bool { return f.swaps.Load() > 0 }, 300*time.Millisecond, 20*time.Millisecond)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	f := start(t, reload.WithDebounce(200*time.Millisecond))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(f.cfg.Thesaurus.Path, []byte("happy,glad,joyful\n"), 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return f.swaps.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(1), f.swaps.Load())
}
