package knapsack

import (
	"fmt"
	"time"
)

// Options configures one exact solve.
//
// Strategy    – traversal: DepthFirst (default) or BestFirst.
// NodeLimit   – maximum processed nodes; 0 means unlimited.
// TimeLimit   – wall-clock budget; 0 means unlimited.
// MaxFrontier – best-first frontier cap; 0 means unlimited (ignored by DepthFirst).
// Observer    – optional callback invoked on every strict incumbent improvement.
//
// A budget that expires never fails the solve: the current incumbent is
// returned with Optimal=false and Result.Abort set.
type Options struct {
	Strategy    Strategy
	NodeLimit   int64
	TimeLimit   time.Duration
	MaxFrontier int
	Observer    func(Improvement)
}

// Option is a functional option for Solve / SolveCatalog.
type Option func(*Options)

// DefaultOptions returns depth-first search without any budget.
func DefaultOptions() Options {
	return Options{
		Strategy:    DepthFirst,
		NodeLimit:   0,
		TimeLimit:   0,
		MaxFrontier: 0,
	}
}

// WithStrategy selects the traversal.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithNodeLimit caps the number of processed nodes (0 = unlimited).
// Negative values are rejected by Solve with ErrInvalidOptions.
func WithNodeLimit(n int64) Option {
	return func(o *Options) { o.NodeLimit = n }
}

// WithTimeLimit sets a wall-clock budget (0 = unlimited).
// Negative values are rejected by Solve with ErrInvalidOptions.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithMaxFrontier caps the best-first frontier size (0 = unlimited).
func WithMaxFrontier(n int) Option {
	return func(o *Options) { o.MaxFrontier = n }
}

// WithObserver registers a callback for incumbent improvements. The callback
// runs on the search goroutine and must not block.
// Panics on nil to surface programmer error early.
func WithObserver(fn func(Improvement)) Option {
	if fn == nil {
		panic("knapsack: WithObserver(nil)")
	}
	return func(o *Options) { o.Observer = fn }
}

// WithOptions replaces the whole option set, e.g. with a value decoded from
// configuration.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// validateOptions rejects negative budgets and unknown strategies.
func validateOptions(o Options) error {
	switch o.Strategy {
	case DepthFirst, BestFirst:
	default:
		return fmt.Errorf("%w: unknown strategy %d", ErrInvalidOptions, int(o.Strategy))
	}
	if o.NodeLimit < 0 {
		return fmt.Errorf("%w: negative node limit %d", ErrInvalidOptions, o.NodeLimit)
	}
	if o.TimeLimit < 0 {
		return fmt.Errorf("%w: negative time limit %s", ErrInvalidOptions, o.TimeLimit)
	}
	if o.MaxFrontier < 0 {
		return fmt.Errorf("%w: negative frontier limit %d", ErrInvalidOptions, o.MaxFrontier)
	}

	return nil
}
