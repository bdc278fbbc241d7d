package events

import "github.com/sirupsen/logrus"

// PanicHandler receives the recovered value and stack trace of a
// handler that panicked during dispatch.
type PanicHandler func(recovered any, stack []byte)

type config struct {
	logger  logrus.FieldLogger
	onPanic PanicHandler
	name    string
}

func newConfig(opts []Option) config {
	cfg := config{logger: defaultLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a registry, dispatcher or event list.
type Option func(*config)

// WithLogger sets the logger used to report handler panics. It replaces
// the package default.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithPanicHandler installs a callback invoked after a handler panic has
// been recovered and logged. Dispatch continues either way.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		c.onPanic = h
	}
}

// withName tags log entries with the event name. Set by EventList when
// it creates named dispatchers.
func withName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
