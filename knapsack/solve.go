// Package knapsack — unified entry points.
//
//   - Solve: validate a raw Instance into a Catalog, then delegate.
//   - SolveCatalog: run the selected traversal on a prepared Catalog.
//
// Both return a feasible Result whenever the instance is well-formed. Budget
// expiry is not an error: the incumbent (at worst the greedy seed) comes back
// with Optimal=false and Result.Abort describing the reason.

package knapsack

import (
	"context"
	"fmt"
	"time"
)

// Solve validates inst and runs an exact search on it.
//
// Errors:
//   - ErrMalformedInstance (wrapped) for invalid instances; no search is run.
//   - ErrInvalidOptions (wrapped) for invalid options.
//
// Complexity: O(n log n) preparation + the search (worst case exponential).
func Solve(ctx context.Context, inst Instance, opts ...Option) (Result, error) {
	cat, err := NewCatalog(inst)
	if err != nil {
		return Result{}, err
	}

	return SolveCatalog(ctx, cat, opts...)
}

// SolveCatalog runs the search configured by opts on cat. The catalog is only
// read, so the same catalog may be solved concurrently from several goroutines;
// each call owns a fresh incumbent.
//
// The context is treated as one more budget: cancellation or its deadline stop
// the search with Optimal=false, they never turn into an error return.
func SolveCatalog(ctx context.Context, cat *Catalog, opts ...Option) (Result, error) {
	if cat == nil {
		return Result{}, fmt.Errorf("%w: nil catalog", ErrMalformedInstance)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := validateOptions(cfg); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	s := newSession(ctx, cat, cfg, start)

	// A budget that is already spent yields the greedy seed untouched.
	if !s.checkClock() {
		switch cfg.Strategy {
		case DepthFirst:
			newDFSEngine(s).run()
		case BestFirst:
			newBestFirstEngine(s, cfg.MaxFrontier).run()
		}
	}

	return s.result(cfg.Strategy, start), nil
}

// Verify checks that res is a feasible assignment of inst and that its
// reported value and weight match the selection.
func (inst Instance) Verify(res Result) error {
	value, weight, err := inst.Evaluate(res.Selection)
	if err != nil {
		return err
	}
	if weight > inst.Capacity {
		return fmt.Errorf("%w: weight %d exceeds capacity %d", ErrInfeasible, weight, inst.Capacity)
	}
	if value != res.Value || weight != res.Weight {
		return fmt.Errorf("%w: selection sums to value %d weight %d, result reports %d/%d",
			ErrInfeasible, value, weight, res.Value, res.Weight)
	}

	return nil
}
