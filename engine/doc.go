// Package engine composes the synonym graph, path finder, synonym sampler,
// random walker and definition store behind one read-only facade.
//
// An Engine is immutable once built. Every query is safe for concurrent use; the
// walker serializes its own random source. To pick up changed sources, build a new
// Engine and publish it through a Holder:
//
//	h := engine.NewHolder(e)
//	next, err := engine.Load(ctx, cfg)
//	if err == nil {
//		h.Swap(next)
//	}
//
// Queries are counted in an optional Metrics bundle and loads are traced through
// the configured OpenTelemetry TracerProvider.
package engine
