package events

// Dispatcher is a single typed event channel. The owner creates it,
// keeps it private and fires it with Dispatch or DispatchAsync;
// consumers get the subscribe-only view from AsEvent.
type Dispatcher[T any] struct {
	registry *Registry[T]
}

// NewDispatcher creates a dispatcher with its own empty registry.
func NewDispatcher[T any](opts ...Option) *Dispatcher[T] {
	return &Dispatcher[T]{registry: NewRegistry[T](opts...)}
}

// Dispatch invokes all subscribed handlers synchronously, in
// subscription order, and returns when the last one has run.
func (d *Dispatcher[T]) Dispatch(args T) {
	d.registry.DispatchSync(args)
}

// DispatchAsync schedules the dispatch pass on a new goroutine and
// returns without waiting for any handler. Fire-and-forget: there is no
// completion signal and handler panics surface only through the logger.
func (d *Dispatcher[T]) DispatchAsync(args T) {
	d.registry.DispatchAsync(args)
}

// AsEvent returns the subscribe-only view of this dispatcher.
func (d *Dispatcher[T]) AsEvent() Event[T] {
	return d.registry.AsEvent()
}

// Subscribe registers a handler for every future dispatch.
func (d *Dispatcher[T]) Subscribe(fn Handler[T]) *Subscription {
	return d.registry.Subscribe(fn)
}

// One registers a handler that fires at most once.
func (d *Dispatcher[T]) One(fn Handler[T]) *Subscription {
	return d.registry.SubscribeOnce(fn)
}

// Unsubscribe removes every registration of the given function.
func (d *Dispatcher[T]) Unsubscribe(fn Handler[T]) {
	d.registry.Unsubscribe(fn)
}

// Has reports whether the given function is subscribed.
func (d *Dispatcher[T]) Has(fn Handler[T]) bool {
	return d.registry.Has(fn)
}

// Len returns the number of current subscriptions.
func (d *Dispatcher[T]) Len() int {
	return d.registry.Len()
}

// Clear removes all subscriptions.
func (d *Dispatcher[T]) Clear() {
	d.registry.Clear()
}
