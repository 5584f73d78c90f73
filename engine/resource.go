package engine

import (
	"reflect"
	"sync"
)

// ResourceStore is a thread-safe container for global game resources
// It allows systems to access shared data (time, bounds, timers, cursors)
// without package-level state, so tests can build isolated worlds
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource in the store
// T should be a pointer type so systems can mutate the resource in place
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Useful for core resources (Time, Bounds) that must exist
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// RemoveResource deletes a resource of type T
func RemoveResource[T any](rs *ResourceStore) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	delete(rs.resources, reflect.TypeFor[T]())
}

// --- Core Resources ---

// TimeResource wraps tick timing for systems
// It is updated by the Scheduler at the start of every tick
type TimeResource struct {
	// Delta is the seconds elapsed since the previous tick, supplied by the clock provider
	Delta float64

	// Elapsed is the sum of all deltas
	Elapsed float64

	// Frame is the number of ticks started
	Frame int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(delta float64) {
	tr.Delta = delta
	tr.Elapsed += delta
	tr.Frame++
}
