package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds parameters and callbacks shared by all searches.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called on every fringe push.
	OnEnqueue func(node int)

	// OnDequeue is called on every fringe pop.
	OnDequeue func(node int)

	// OnVisit is called when a node is first discovered. Returning an
	// error stops the search.
	OnVisit func(node int) error

	// MaxDepth bounds iterative deepening. 0 means the grid size.
	MaxDepth int

	// Logger receives debug records. Defaults to a discarding logger.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultOptions returns Options with a background context, no-op hooks,
// no depth limit and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int) {},
		OnDequeue: func(int) {},
		OnVisit:   func(int) error { return nil },
		Logger:    discard,
	}
}

// Apply folds opts over DefaultOptions and reports any recorded violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on push.
func WithOnEnqueue(fn func(node int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on pop.
func WithOnDequeue(fn func(node int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on first discovery; returning an
// error from it stops the search.
func WithOnVisit(fn func(node int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth caps the depth limit of iterative deepening.
//
//	d > 0: limit to depth d
//	d == 0: use the grid size
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("MaxDepth cannot be negative (%d): %w", d, ErrOptionViolation)
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
