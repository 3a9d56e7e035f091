package syncmap

import "sync"

// Map is a concurrency-safe map keyed by name.
type Map[T any] struct {
	mux sync.RWMutex
	m   map[string]T
}

// New creates an empty Map.
func New[T any]() *Map[T] {
	return &Map[T]{m: make(map[string]T)}
}

// Lookup returns the value stored under name.
func (r *Map[T]) Lookup(name string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[name]
	return v, ok
}

// Set adds or replaces the value stored under name.
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[name] = value
}
