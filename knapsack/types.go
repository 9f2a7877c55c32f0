package knapsack

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors returned by the knapsack package.
var (
	// ErrMalformedInstance indicates an instance that cannot be searched:
	// item count mismatch, non-positive weight, negative value or negative capacity.
	ErrMalformedInstance = errors.New("knapsack: malformed instance")

	// ErrInvalidOptions indicates meaningless solver options (negative limits,
	// unknown strategy).
	ErrInvalidOptions = errors.New("knapsack: invalid options")

	// ErrBudgetExhausted marks a search stopped by a resource budget. It is never
	// returned as the error of Solve; it is carried in Result.Abort.
	ErrBudgetExhausted = errors.New("knapsack: search budget exhausted")

	// ErrNodeLimit is wrapped into Result.Abort when Options.NodeLimit is reached.
	ErrNodeLimit = errors.New("knapsack: node limit reached")

	// ErrTimeLimit is wrapped into Result.Abort when Options.TimeLimit elapses.
	ErrTimeLimit = errors.New("knapsack: time limit reached")

	// ErrFrontierLimit is wrapped into Result.Abort when the best-first frontier
	// grows beyond Options.MaxFrontier.
	ErrFrontierLimit = errors.New("knapsack: frontier limit reached")

	// ErrSelectionMismatch is returned by Instance.Evaluate for a selection of the
	// wrong length or with flags other than 0/1.
	ErrSelectionMismatch = errors.New("knapsack: selection does not match instance")

	// ErrInfeasible is returned by Instance.Verify when a result exceeds the
	// capacity or misreports its value or weight.
	ErrInfeasible = errors.New("knapsack: infeasible or inconsistent result")
)

// Entry is one raw (value, weight) input record.
type Entry struct {
	Value  int64 `json:"value" yaml:"value"`
	Weight int64 `json:"weight" yaml:"weight"`
}

// Instance is a parsed problem: the declared item count, the capacity and
// the records in input order. Count is kept separately from len(Entries) so
// that a header/record mismatch can be reported instead of silently ignored.
type Instance struct {
	Count    int
	Capacity int64
	Entries  []Entry
}

// NewInstance builds a consistent Instance (Count == len(entries)).
func NewInstance(capacity int64, entries ...Entry) Instance {
	return Instance{Count: len(entries), Capacity: capacity, Entries: entries}
}

// Evaluate returns the total value and weight of sel (0/1 flags in input order).
// It does not check the capacity; compare the weight with inst.Capacity.
func (inst Instance) Evaluate(sel []int) (value, weight int64, err error) {
	if len(sel) != len(inst.Entries) {
		return 0, 0, ErrSelectionMismatch
	}
	for i, x := range sel {
		switch x {
		case 0:
		case 1:
			value += inst.Entries[i].Value
			weight += inst.Entries[i].Weight
		default:
			return 0, 0, ErrSelectionMismatch
		}
	}

	return value, weight, nil
}

// Item is an input record tagged with its original position and density.
type Item struct {
	Index   int     // position in the input
	Value   int64   // profit
	Weight  int64   // always > 0
	Density float64 // Value / Weight
}

// Incumbent is the best complete feasible assignment known to a search.
// Selection is indexed by original input position.
type Incumbent struct {
	Value     int64
	Weight    int64
	Selection []int
}

// Strategy selects the tree traversal used by the exact search.
type Strategy int

const (
	// DepthFirst explores include-then-exclude recursively (call stack frontier).
	DepthFirst Strategy = iota

	// BestFirst expands the pending node with the highest bound first.
	BestFirst
)

// String returns the CLI name of the strategy.
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BestFirst:
		return "best-first"
	default:
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseStrategy maps a CLI name ("dfs", "depth-first", "best-first", "bfs")
// to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first", "depthfirst":
		return DepthFirst, nil
	case "best-first", "bestfirst", "bfs":
		return BestFirst, nil
	default:
		return 0, ErrInvalidOptions
	}
}

// Improvement describes one incumbent replacement, as seen by an Observer.
type Improvement struct {
	Value    int64 // new incumbent value (strictly greater than Previous)
	Previous int64 // incumbent value before the update
	Node     int64 // node counter at the time of the update
}

// Stats holds search counters for one solve.
type Stats struct {
	Nodes        int64         // nodes processed (DFS visits / best-first pops)
	Pruned       int64         // subtrees discarded by the bound test
	Improvements int64         // strict incumbent replacements
	MaxFrontier  int           // best-first frontier peak (0 for DFS)
	GreedyValue  int64         // value of the greedy seed
	RootBound    float64       // relaxation bound of the whole instance
	Elapsed      time.Duration // wall-clock search time
}

// Result is the outcome of one solve.
//
//   - Value/Weight/Selection describe a feasible assignment (Selection in input order).
//   - Optimal is true iff the search finished exhaustively.
//   - Abort is nil for exhaustive searches; otherwise it wraps ErrBudgetExhausted
//     and the reason (ErrNodeLimit, ErrTimeLimit, ErrFrontierLimit or a context error).
type Result struct {
	Value     int64
	Weight    int64
	Optimal   bool
	Selection []int
	Strategy  Strategy
	Abort     error
	Stats     Stats
}

// String renders the result in the classic two-line output format:
//
//	<value> <optimal 0|1>
//	<x_0> <x_1> ... <x_{n-1}>
func (r Result) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(r.Value, 10))
	if r.Optimal {
		sb.WriteString(" 1\n")
	} else {
		sb.WriteString(" 0\n")
	}
	for i, x := range r.Selection {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(x))
	}

	return sb.String()
}
