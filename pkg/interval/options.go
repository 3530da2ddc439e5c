package interval

import "github.com/go-logr/logr"

type options struct {
	log               logr.Logger
	parallelThreshold int
}

// Option configures how an Index is built.
type Option func(*options)

// WithLogger sets the logger receiving construction events.
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithParallelThreshold builds both remainders of a subtree concurrently
// when each of them holds at least n ranges. n <= 0 disables it.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.parallelThreshold = n
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
