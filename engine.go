package stylecast

import "sync/atomic"

// Engine pairs a swappable store with a resolver. Readers resolve
// against an immutable store snapshot; hot reload replaces the whole
// store atomically so no reader ever observes a partially-updated rule
// set. Resolution never blocks.
type Engine struct {
	store atomic.Pointer[Store]
}

// NewEngine returns an engine serving from store.
func NewEngine(store *Store) *Engine {
	e := &Engine{}
	e.store.Store(store)
	return e
}

// Current returns the store snapshot in use.
func (e *Engine) Current() *Store {
	return e.store.Load()
}

// Swap atomically replaces the rule set. The previous store remains
// valid for resolutions already in flight.
func (e *Engine) Swap(store *Store) {
	e.store.Store(store)
}

// Resolve resolves d against the current store snapshot.
func (e *Engine) Resolve(d WidgetDescriptor) (ResolvedStyle, error) {
	return NewResolver(e.store.Load()).Resolve(d)
}
