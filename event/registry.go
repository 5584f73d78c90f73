package event

import (
	"reflect"
	"sync"
)

// Bus holds one Events log per event type
// Logs are created on first use, so senders and readers never need registration order
type Bus struct {
	mu   sync.RWMutex
	logs map[reflect.Type]any
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{logs: make(map[reflect.Type]any)}
}

// Log returns the log for event type E, creating it on first use
func Log[E any](b *Bus) *Events[E] {
	t := reflect.TypeFor[E]()

	b.mu.RLock()
	l, ok := b.logs[t]
	b.mu.RUnlock()
	if ok {
		return l.(*Events[E])
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if l, ok := b.logs[t]; ok {
		return l.(*Events[E])
	}
	created := NewEvents[E]()
	b.logs[t] = created
	return created
}

// Send appends ev to the log for its type
func Send[E any](b *Bus, ev E) {
	Log[E](b).Send(ev)
}

// Types returns the number of event types with a log
func (b *Bus) Types() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.logs)
}

// Register creates the log for event type E ahead of first send
// Optional; Log and Send create logs on demand
func Register[E any](b *Bus) *Events[E] {
	return Log[E](b)
}
