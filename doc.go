// Package events provides typed in-process event dispatch.
//
// A Dispatcher is a single event channel: the owner keeps the dispatcher
// and fires it, consumers receive a subscribe-only Event view obtained
// from AsEvent(). An EventList maps event names to lazily created
// dispatchers, and Notifier can be embedded in any struct to give it
// named subscribe/one/has/unsubscribe methods.
//
// Dispatch is synchronous and runs handlers in subscription order on the
// calling goroutine. DispatchAsync runs the same pass on a new goroutine
// and returns immediately. A handler that panics does not stop the rest
// of the pass; the panic is logged and dispatch continues.
package events
