package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Gauge is an atomic float64; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Metric is one entry of a Snapshot
type Metric struct {
	Key   string
	Value float64
}

// Registry holds named counters and gauges shared between the tick goroutine and readers
// Writers resolve a pointer once and then update it lock-free
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	gauges   map[string]*Gauge
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		gauges:   make(map[string]*Gauge),
	}
}

// Counter returns the counter for key, creating it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	return lookup(r, r.counters, key)
}

// Gauge returns the gauge for key, creating it on first use
func (r *Registry) Gauge(key string) *Gauge {
	return lookup(r, r.gauges, key)
}

func lookup[T any](r *Registry, items map[string]*T, key string) *T {
	r.mu.RLock()
	ptr, ok := items[key]
	r.mu.RUnlock()
	if ok {
		return ptr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ptr, ok := items[key]; ok {
		return ptr
	}
	ptr = new(T)
	items[key] = ptr
	return ptr
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.counters) + len(r.gauges)
}

// Snapshot returns every metric sorted by key; counters are reported as floats
func (r *Registry) Snapshot() []Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metric, 0, len(r.counters)+len(r.gauges))
	for k, c := range r.counters {
		out = append(out, Metric{Key: k, Value: float64(c.Load())})
	}
	for k, g := range r.gauges {
		out = append(out, Metric{Key: k, Value: g.Get()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
