package event

import "iter"

// Events is an append-only log for one event type
// The log is never truncated; readers track their own position with a Reader
// Single-threaded: senders and readers run inside the same tick
type Events[E any] struct {
	items []E
}

// NewEvents creates an empty log
func NewEvents[E any]() *Events[E] {
	return &Events[E]{items: make([]E, 0, 64)}
}

// Send appends an event, preserving send order
func (l *Events[E]) Send(ev E) {
	l.items = append(l.items, ev)
}

// Len returns the total number of events ever sent
func (l *Events[E]) Len() int {
	return len(l.items)
}

// At returns the event at absolute index i
func (l *Events[E]) At(i int) E {
	return l.items[i]
}

// Reader is a consumer cursor over an Events log
// Independent readers over the same log progress at their own rate
type Reader[E any] struct {
	cursor int
}

// Read returns the events sent since the previous Read and advances the cursor to the log end
// The end is captured at call time: events sent while ranging are left for the next Read
// The returned sequence is finite and may be ranged more than once
func (r *Reader[E]) Read(l *Events[E]) iter.Seq[E] {
	start, end := r.cursor, l.Len()
	if start > end {
		start = end
	}
	r.cursor = end

	return func(yield func(E) bool) {
		for i := start; i < end; i++ {
			if !yield(l.items[i]) {
				return
			}
		}
	}
}

// Unread returns the number of events the next Read would yield
func (r *Reader[E]) Unread(l *Events[E]) int {
	if n := l.Len() - r.cursor; n > 0 {
		return n
	}
	return 0
}

// Cursor returns the absolute index of the next unread event
func (r *Reader[E]) Cursor() int {
	return r.cursor
}

// Skip moves the cursor to the end of the log without yielding events
func (r *Reader[E]) Skip(l *Events[E]) {
	r.cursor = l.Len()
}
