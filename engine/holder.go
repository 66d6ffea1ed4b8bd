package engine

import "sync/atomic"

// Holder publishes the current Engine to concurrent readers. Readers call Load
// per request; a writer builds a fresh Engine and swaps it in. Published engines
// are never modified.
type Holder struct {
	p atomic.Pointer[Engine]
}

// NewHolder returns a Holder publishing e.
func NewHolder(e *Engine) *Holder {
	h := &Holder{}
	h.p.Store(e)
	return h
}

// Load returns the current Engine, or nil if none was published.
func (h *Holder) Load() *Engine { return h.p.Load() }

// Store publishes e.
func (h *Holder) Store(e *Engine) { h.p.Store(e) }

// Swap publishes e and returns the previous Engine.
func (h *Holder) Swap(e *Engine) *Engine { return h.p.Swap(e) }
