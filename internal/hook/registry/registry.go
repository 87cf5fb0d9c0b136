// Package registry maps callback handles to live callbacks.
//
// Every callback owns a scope.Handle. The engine only ever sees the handle;
// entry points resolve it back to the callback here. Retiring a handle
// removes the mapping so that later firings referencing it are detected
// instead of reaching a callback its owner has finished with.
//
// Memory Model:
//   - Key: scope.Handle (UUID, stable for the callback's life)
//   - Value: the callback (any; callers type-assert the result)
//
// Thread Safety: All methods except Reset are safe for concurrent calls.
package registry

import (
	"sync"
	"sync/atomic"

	"github.com/kolkov/dynhook/hook/scope"
)

// Registry is a handle table.
type Registry struct {
	// entries maps scope.Handle to the registered value.
	//
	// sync.Map suits the access pattern: one write per callback at setup,
	// then concurrent reads on every firing.
	entries sync.Map

	// live counts registered, non-retired handles.
	live atomic.Int64
}

// Default is the process-wide registry used by the callback package.
var Default = New()

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register stores v under a fresh handle and returns the handle.
//
// Parameters:
//   - v: Callback to register (must be non-nil)
//
// Returns:
//   - scope.Handle: Stable handle for v (never zero)
func (r *Registry) Register(v any) scope.Handle {
	if v == nil {
		panic("registry: Register(nil)")
	}
	h := scope.NewHandle()
	r.entries.Store(h, v)
	r.live.Add(1)
	return h
}

// Lookup returns the value registered under h.
//
// Returns:
//   - any: Registered value (nil if not found)
//   - bool: false if h was never registered or has been retired
func (r *Registry) Lookup(h scope.Handle) (any, bool) {
	return r.entries.Load(h)
}

// Retire removes h. It reports whether h was live.
func (r *Registry) Retire(h scope.Handle) bool {
	if _, ok := r.entries.LoadAndDelete(h); ok {
		r.live.Add(-1)
		return true
	}
	return false
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	return int(r.live.Load())
}

// Reset clears all handles. Intended for tests.
//
// Thread Safety: NOT safe for concurrent access.
func (r *Registry) Reset() {
	r.entries = sync.Map{}
	r.live.Store(0)
}
