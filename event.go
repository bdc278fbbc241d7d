package events

// Event is the subscribe-only view of a dispatcher. It is the surface
// an owner hands to external consumers: they can manage their own
// subscriptions but cannot fire the event or clear other subscribers.
type Event[T any] interface {
	// Subscribe registers a handler for every future dispatch.
	Subscribe(fn Handler[T]) *Subscription
	// One registers a handler that fires at most once.
	One(fn Handler[T]) *Subscription
	// Unsubscribe removes every registration of the given function.
	Unsubscribe(fn Handler[T])
	// Has reports whether the given function is subscribed.
	Has(fn Handler[T]) bool
}

// restrictedEvent backs the Event view. It is a separate type rather
// than a narrowed *Registry so that no type assertion on an Event can
// ever reach a dispatch method.
type restrictedEvent[T any] struct {
	r *Registry[T]
}

func (e restrictedEvent[T]) Subscribe(fn Handler[T]) *Subscription {
	return e.r.Subscribe(fn)
}

func (e restrictedEvent[T]) One(fn Handler[T]) *Subscription {
	return e.r.SubscribeOnce(fn)
}

func (e restrictedEvent[T]) Unsubscribe(fn Handler[T]) {
	e.r.Unsubscribe(fn)
}

func (e restrictedEvent[T]) Has(fn Handler[T]) bool {
	return e.r.Has(fn)
}
