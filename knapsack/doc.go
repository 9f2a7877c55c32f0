// Package knapsack provides an exact solver for the 0/1 knapsack problem.
//
// Given n items with integer values and weights and a capacity, it finds a
// subset of maximum total value whose total weight does not exceed the
// capacity. The search is a Branch-and-Bound over include/exclude decisions:
//
//   - Catalog   — validated items sorted by descending density (value/weight),
//     ties in input order.
//   - Bound     — fractional (LP) relaxation of the remaining suffix;
//     FloorBound is its exact integer floor, the admissible pruning test.
//   - Greedy    — one density-order pass; the initial incumbent and the
//     fallback answer of an interrupted search.
//   - DepthFirst — recursive include-then-exclude backtracking.
//   - BestFirst  — max-bound priority frontier (FIFO among equal bounds).
//
// Complexity:
//   - Worst case exponential in n (the problem is NP-hard); pruning makes
//     typical instances fast.
//   - Memory: O(n) for DepthFirst; the BestFirst frontier may grow
//     exponentially and can be capped with WithMaxFrontier.
//
// Budgets (WithNodeLimit, WithTimeLimit, WithMaxFrontier and the context)
// never fail a solve. When one expires the best incumbent found so far is
// returned with Optimal=false and Result.Abort wrapping ErrBudgetExhausted.
//
// Errors (sentinel):
//   - ErrMalformedInstance — count mismatch, weight ≤ 0, value < 0, capacity < 0.
//   - ErrInvalidOptions    — negative limits or unknown strategy.
//
// Example:
//
//	inst := knapsack.NewInstance(11,
//		knapsack.Entry{Value: 8, Weight: 4},
//		knapsack.Entry{Value: 10, Weight: 5},
//		knapsack.Entry{Value: 15, Weight: 8},
//		knapsack.Entry{Value: 4, Weight: 3},
//	)
//	res, err := knapsack.Solve(ctx, inst, knapsack.WithStrategy(knapsack.BestFirst))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res) // "19 1\n0 0 1 1"
//
// Concurrency: a Catalog is immutable and may be shared; every solve owns its
// own incumbent and search state. The search itself is single-threaded.
package knapsack
