package events

import (
	"reflect"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"
)

// Handler is a callable registered to receive event payloads.
type Handler[T any] func(T)

// Subscription identifies a single registered handler. Cancel removes
// exactly that registration, which matters when the same function has
// been subscribed more than once.
type Subscription struct {
	id     uuid.UUID
	cancel func()
}

// ID returns the unique id of this subscription.
func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Cancel removes the registration. Calling it again is a no-op.
func (s *Subscription) Cancel() {
	s.cancel()
}

// handlerEntry is one registered handler. key is the identity of the
// underlying func value, used for Has and Unsubscribe lookups.
type handlerEntry[T any] struct {
	id   uuid.UUID
	fn   Handler[T]
	key  uintptr
	once bool
}

// Registry stores an ordered list of handler entries and runs dispatch
// passes over them. Insertion order is dispatch order. It is safe for
// concurrent use; handlers are always invoked outside the registry lock,
// so a handler may subscribe or unsubscribe during its own dispatch.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries []*handlerEntry[T]
	cfg     config
}

// NewRegistry creates an empty registry.
func NewRegistry[T any](opts ...Option) *Registry[T] {
	return &Registry[T]{cfg: newConfig(opts)}
}

// handlerKey returns the identity of a func value. Go funcs are not
// comparable, so the code pointer stands in for identity; two variables
// holding the same func yield the same key.
func handlerKey[T any](fn Handler[T]) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// Subscribe appends a handler to the registry. The same function may be
// subscribed multiple times and will then be invoked once per entry.
// A nil handler registers nothing and returns nil.
func (r *Registry[T]) Subscribe(fn Handler[T]) *Subscription {
	return r.add(fn, false)
}

// SubscribeOnce appends a handler that is removed after its first
// invocation.
func (r *Registry[T]) SubscribeOnce(fn Handler[T]) *Subscription {
	return r.add(fn, true)
}

func (r *Registry[T]) add(fn Handler[T], once bool) *Subscription {
	if fn == nil {
		return nil
	}

	e := &handlerEntry[T]{
		id:   uuid.New(),
		fn:   fn,
		key:  handlerKey(fn),
		once: once,
	}

	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()

	return &Subscription{
		id:     e.id,
		cancel: func() { r.removeID(e.id) },
	}
}

// Unsubscribe removes every entry whose handler is the given function.
// Unknown handlers are a no-op.
func (r *Registry[T]) Unsubscribe(fn Handler[T]) {
	if fn == nil {
		return
	}
	key := handlerKey(fn)

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.key != key {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

// removeID removes the single entry with the given subscription id.
func (r *Registry[T]) removeID(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Has reports whether the given function is currently subscribed.
func (r *Registry[T]) Has(fn Handler[T]) bool {
	if fn == nil {
		return false
	}
	key := handlerKey(fn)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.key == key {
			return true
		}
	}
	return false
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear removes all entries.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

// DispatchSync invokes every currently registered handler in
// subscription order on the calling goroutine. Fire-once entries are
// removed before any handler runs, so a re-entrant dispatch from inside
// a handler cannot fire them twice.
func (r *Registry[T]) DispatchSync(payload T) {
	for _, e := range r.snapshot() {
		r.invoke(e, payload)
	}
}

// DispatchAsync runs the same pass as DispatchSync on a new goroutine
// and returns immediately. Fire-once entries are removed when the call
// is made, not when the pass eventually runs. There is no completion
// signal and no cancellation.
func (r *Registry[T]) DispatchAsync(payload T) {
	snapshot := r.snapshot()
	go func() {
		for _, e := range snapshot {
			r.invoke(e, payload)
		}
	}()
}

// AsEvent returns the subscribe-only view of this registry. The returned
// value carries no dispatch capability.
func (r *Registry[T]) AsEvent() Event[T] {
	return restrictedEvent[T]{r: r}
}

// snapshot copies the entry list for one dispatch pass and drops
// fire-once entries from the live list. Mutations made by handlers
// during the pass touch the live list only, never the snapshot.
func (r *Registry[T]) snapshot() []*handlerEntry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]*handlerEntry[T], len(r.entries))
	copy(snapshot, r.entries)

	hasOnce := false
	for _, e := range r.entries {
		if e.once {
			hasOnce = true
			break
		}
	}
	if hasOnce {
		kept := make([]*handlerEntry[T], 0, len(r.entries))
		for _, e := range r.entries {
			if !e.once {
				kept = append(kept, e)
			}
		}
		r.entries = kept
	}

	return snapshot
}

// invoke runs a single handler with panic recovery. A panicking handler
// never stops the remaining handlers in the pass.
func (r *Registry[T]) invoke(e *handlerEntry[T], payload T) {
	defer func() {
		if rec := recover(); rec != nil {
			stack := debug.Stack()
			log := r.cfg.logger.WithField("panic", rec)
			if r.cfg.name != "" {
				log = log.WithField("event", r.cfg.name)
			}
			log.Error("event handler panicked")
			if r.cfg.onPanic != nil {
				r.cfg.onPanic(rec, stack)
			}
		}
	}()

	e.fn(payload)
}
