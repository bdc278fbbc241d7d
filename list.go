package events

import "sync"

// EventList maps event names to dispatchers that all share the payload
// type T. Dispatchers are created lazily on first Get and reused until
// removed.
type EventList[T any] struct {
	mu     sync.Mutex
	events map[string]*Dispatcher[T]
	opts   []Option
}

// AnyEventList is the non-uniform variant: every name carries an `any`
// payload, letting a single list serve events of different shapes.
// Handlers recover the concrete payload with PayloadAs.
type AnyEventList = EventList[any]

// NewEventList creates an empty list. Options are applied to every
// dispatcher the list creates.
func NewEventList[T any](opts ...Option) *EventList[T] {
	return &EventList[T]{
		events: make(map[string]*Dispatcher[T]),
		opts:   opts,
	}
}

// NewAnyEventList creates an empty non-uniform list.
func NewAnyEventList(opts ...Option) *AnyEventList {
	return NewEventList[any](opts...)
}

// Get returns the dispatcher for name, creating it on first access.
// Repeated calls with the same name return the same instance until
// Remove is called for it.
func (l *EventList[T]) Get(name string) *Dispatcher[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	if d, ok := l.events[name]; ok {
		return d
	}

	d := NewDispatcher[T](append([]Option{withName(name)}, l.opts...)...)
	l.events[name] = d
	return d
}

// Remove deletes the dispatcher stored under name, detaching all of its
// subscribers permanently. A later Get creates a fresh, empty one.
// Unknown names are a no-op.
func (l *EventList[T]) Remove(name string) {
	l.mu.Lock()
	delete(l.events, name)
	l.mu.Unlock()
}

// Names returns the names that currently have a dispatcher.
func (l *EventList[T]) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, 0, len(l.events))
	for name := range l.events {
		names = append(names, name)
	}
	return names
}

// Len returns the number of live dispatchers.
func (l *EventList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}
