// Package tsync contains type-safe wrappers around functionality from the sync package in the standard library.
package tsync

import "sync"

// Map is a type-safe version of a sync.Map. The zero Map is empty and ready for use.
type Map[K comparable, V any] struct {
	m sync.Map
}

// Load returns the value stored in the map for a key, or the zero value if no value is present.
// The ok result indicates whether value was found in the map.
func (sm *Map[K, V]) Load(key K) (value V, ok bool) {
	v, ok := sm.m.Load(key)
	if !ok {
		return value, false
	}
	return v.(V), true
}

// LoadOrStore returns the existing value for the key if present. Otherwise, it stores and returns the given value.
// The loaded result is true if the value was loaded, false if stored.
func (sm *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	v, loaded := sm.m.LoadOrStore(key, value)
	return v.(V), loaded
}

// Pool is a type-safe version of a sync.Pool. A Pool must be created with NewPool.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool which calls newFn to generate a value when Get would otherwise have nothing to return.
func NewPool[T any](newFn func() T) *Pool[T] {
	p := &Pool[T]{}
	p.pool.New = func() any { return newFn() }
	return p
}

// Get selects an arbitrary item from the Pool, removes it from the Pool, and returns it to the caller.
// Callers should not assume any relation between values passed to Put and the values returned by Get.
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put adds x to the pool.
func (p *Pool[T]) Put(x T) {
	p.pool.Put(x)
}
