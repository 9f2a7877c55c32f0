// Package knapsack_test — shared helpers for the exact solver tests.
//
// Policy:
//   - Deterministic fixtures: fixed seeds, no time-based randomness.
//   - Brute force is the oracle; it is only used on n ≤ 16.
package knapsack_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvknap/knapsack"
	"github.com/stretchr/testify/require"
)

// seedDet is the fixed seed for random fixtures.
const seedDet int64 = 20240917

// scenarioFour is the 4-item instance with optimum 19 = items 2 and 3.
func scenarioFour() knapsack.Instance {
	return knapsack.NewInstance(11,
		knapsack.Entry{Value: 8, Weight: 4},
		knapsack.Entry{Value: 10, Weight: 5},
		knapsack.Entry{Value: 15, Weight: 8},
		knapsack.Entry{Value: 4, Weight: 3},
	)
}

// randomInstance draws n items with values in [0,maxV] and weights in
// [1,maxW]; the capacity is roughly half of the total weight.
func randomInstance(rng *rand.Rand, n int, maxV, maxW int64) knapsack.Instance {
	entries := make([]knapsack.Entry, n)
	var total int64
	for i := range entries {
		entries[i] = knapsack.Entry{
			Value:  rng.Int63n(maxV + 1),
			Weight: 1 + rng.Int63n(maxW),
		}
		total += entries[i].Weight
	}

	return knapsack.NewInstance(total/2, entries...)
}

// correlatedInstance is a strongly correlated family (value = weight + 10):
// equal-ish densities make pruning weak, so the tree stays large.
func correlatedInstance(n int) knapsack.Instance {
	rng := rand.New(rand.NewSource(seedDet))
	entries := make([]knapsack.Entry, n)
	var total int64
	for i := range entries {
		w := 1 + rng.Int63n(1000)
		entries[i] = knapsack.Entry{Value: w + 10, Weight: w}
		total += w
	}

	return knapsack.NewInstance(total/2, entries...)
}

// bruteForce enumerates every subset and returns the optimal value.
func bruteForce(inst knapsack.Instance) int64 {
	n := len(inst.Entries)
	var best int64
	for mask := 0; mask < 1<<n; mask++ {
		var v, w int64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				v += inst.Entries[i].Value
				w += inst.Entries[i].Weight
			}
		}
		if w <= inst.Capacity && v > best {
			best = v
		}
	}

	return best
}

// bestCompletion returns the best 0/1 value obtainable from items[pos:] of
// cat with the given residual capacity (brute force over the suffix).
func bestCompletion(cat *knapsack.Catalog, pos int, residual int64) int64 {
	if pos == cat.Len() {
		return 0
	}
	it := cat.Item(pos)
	best := bestCompletion(cat, pos+1, residual)
	if it.Weight <= residual {
		if v := it.Value + bestCompletion(cat, pos+1, residual-it.Weight); v > best {
			best = v
		}
	}

	return best
}

// mustSolve runs Solve and requires no error and a verified result.
func mustSolve(t *testing.T, inst knapsack.Instance, opts ...knapsack.Option) knapsack.Result {
	t.Helper()
	res, err := knapsack.Solve(context.Background(), inst, opts...)
	require.NoError(t, err)
	require.NoError(t, inst.Verify(res), "returned selection must be feasible and consistent")

	return res
}
