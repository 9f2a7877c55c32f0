package knapsack

import (
	"context"
	"fmt"
	"time"
)

// clockCheckMask sets how often (in processed nodes) the context and the
// deadline are polled.
const clockCheckMask = 1023

// session is the state owned by exactly one solve: the incumbent, the search
// counters and the resource budget. Engines embed it; nothing here is shared
// across solves.
type session struct {
	cat      *Catalog
	ctx      context.Context
	observer func(Improvement)

	// Budget
	nodeLimit   int64
	useDeadline bool
	deadline    time.Time
	abort       error // non-nil once any budget expired

	// Incumbent (lower bound) and counters
	best  Incumbent
	stats Stats
}

// newSession seeds the incumbent with the greedy solution and arms the budget.
func newSession(ctx context.Context, cat *Catalog, opts Options, start time.Time) *session {
	s := &session{
		cat:       cat,
		ctx:       ctx,
		observer:  opts.Observer,
		nodeLimit: opts.NodeLimit,
		best:      cat.Greedy(),
	}
	if opts.TimeLimit > 0 {
		s.useDeadline = true
		s.deadline = start.Add(opts.TimeLimit)
	}
	s.stats.GreedyValue = s.best.Value
	s.stats.RootBound = cat.Bound(0, 0, cat.capacity)

	return s
}

// stop records the first budget that expired; later reasons are ignored.
func (s *session) stop(reason error) {
	if s.abort == nil {
		s.abort = fmt.Errorf("%w: %w", ErrBudgetExhausted, reason)
	}
}

// checkClock polls cancellation and the deadline. It reports whether the
// search must stop.
func (s *session) checkClock() bool {
	if s.abort != nil {
		return true
	}
	if err := s.ctx.Err(); err != nil {
		s.stop(err)
		return true
	}
	if s.useDeadline && !time.Now().Before(s.deadline) {
		s.stop(ErrTimeLimit)
		return true
	}

	return false
}

// tick accounts for one node about to be processed. It reports whether the
// search must stop instead; in that case the node is not counted.
func (s *session) tick() bool {
	if s.abort != nil {
		return true
	}
	if s.nodeLimit > 0 && s.stats.Nodes >= s.nodeLimit {
		s.stop(fmt.Errorf("%w (%d nodes)", ErrNodeLimit, s.nodeLimit))
		return true
	}
	s.stats.Nodes++
	if s.stats.Nodes&clockCheckMask == 0 {
		return s.checkClock()
	}

	return false
}

// improves reports whether a complete assignment of the given value would
// replace the incumbent (strict improvement only: earlier ties win).
func (s *session) improves(value int64) bool { return value > s.best.Value }

// commit finalizes an improvement whose selection the caller has already
// written into s.best.Selection.
func (s *session) commit(value, weight int64) {
	prev := s.best.Value
	s.best.Value = value
	s.best.Weight = weight
	s.stats.Improvements++
	if s.observer != nil {
		s.observer(Improvement{Value: value, Previous: prev, Node: s.stats.Nodes})
	}
}

// result packages the incumbent. Optimal holds iff no budget expired.
func (s *session) result(strategy Strategy, start time.Time) Result {
	s.stats.Elapsed = time.Since(start)

	return Result{
		Value:     s.best.Value,
		Weight:    s.best.Weight,
		Optimal:   s.abort == nil,
		Selection: s.best.Selection,
		Strategy:  strategy,
		Abort:     s.abort,
		Stats:     s.stats,
	}
}
