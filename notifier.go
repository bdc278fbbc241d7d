package events

import "sync"

// Notifier gives an owning struct named event methods by embedding:
//
//	type Clock struct {
//		events.Notifier[string]
//	}
//
// Consumers call Subscribe/Sub/One/Has/Unsubscribe/Unsub with an event
// name; the owner fires events with DispatchEvent or DispatchEventAsync.
// The backing EventList is private and created on first use. Owners that
// must hide the dispatch methods from consumers embed the Notifier in an
// unexported field and forward only the subscribe side, or hand out
// per-event views via EventFor.
//
// Every named operation creates the named dispatcher if it does not
// exist yet, so even Has or Unsubscribe on a never-used name allocates
// an empty dispatcher under that name.
type Notifier[T any] struct {
	once sync.Once
	list *EventList[T]
}

func (n *Notifier[T]) events() *EventList[T] {
	n.once.Do(func() {
		n.list = NewEventList[T]()
	})
	return n.list
}

// Subscribe registers a handler for the named event.
func (n *Notifier[T]) Subscribe(name string, fn Handler[T]) *Subscription {
	return n.events().Get(name).Subscribe(fn)
}

// Sub is shorthand for Subscribe.
func (n *Notifier[T]) Sub(name string, fn Handler[T]) *Subscription {
	return n.Subscribe(name, fn)
}

// One registers a handler that fires at most once for the named event.
func (n *Notifier[T]) One(name string, fn Handler[T]) *Subscription {
	return n.events().Get(name).One(fn)
}

// Has reports whether fn is subscribed to the named event.
func (n *Notifier[T]) Has(name string, fn Handler[T]) bool {
	return n.events().Get(name).Has(fn)
}

// Unsubscribe removes every registration of fn from the named event.
func (n *Notifier[T]) Unsubscribe(name string, fn Handler[T]) {
	n.events().Get(name).Unsubscribe(fn)
}

// Unsub is shorthand for Unsubscribe.
func (n *Notifier[T]) Unsub(name string, fn Handler[T]) {
	n.Unsubscribe(name, fn)
}

// EventFor returns the subscribe-only view of the named event.
func (n *Notifier[T]) EventFor(name string) Event[T] {
	return n.events().Get(name).AsEvent()
}

// DispatchEvent fires the named event synchronously. Owner-side.
func (n *Notifier[T]) DispatchEvent(name string, args T) {
	n.events().Get(name).Dispatch(args)
}

// DispatchEventAsync fires the named event on a new goroutine and
// returns immediately. Owner-side.
func (n *Notifier[T]) DispatchEventAsync(name string, args T) {
	n.events().Get(name).DispatchAsync(args)
}

// RemoveEvent drops the named dispatcher, permanently detaching its
// subscribers. Owner-side.
func (n *Notifier[T]) RemoveEvent(name string) {
	n.events().Remove(name)
}
