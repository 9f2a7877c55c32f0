// Package knapsack_test provides runnable examples for the exact solver.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package knapsack_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvknap/knapsack"
)

// ExampleSolve solves the classic 4-item instance. The greedy seed takes the
// two densest items (value 18); the search proves that items 2 and 3 are better.
func ExampleSolve() {
	inst := knapsack.NewInstance(11,
		knapsack.Entry{Value: 8, Weight: 4},
		knapsack.Entry{Value: 10, Weight: 5},
		knapsack.Entry{Value: 15, Weight: 8},
		knapsack.Entry{Value: 4, Weight: 3},
	)
	res, err := knapsack.Solve(context.Background(), inst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	// Output:
	// 19 1
	// 0 0 1 1
}

// ExampleSolve_bestFirst runs the priority-frontier traversal on the same
// instance and reports the search counters that do not depend on timing.
func ExampleSolve_bestFirst() {
	inst := knapsack.NewInstance(11,
		knapsack.Entry{Value: 8, Weight: 4},
		knapsack.Entry{Value: 10, Weight: 5},
		knapsack.Entry{Value: 15, Weight: 8},
		knapsack.Entry{Value: 4, Weight: 3},
	)
	res, _ := knapsack.Solve(context.Background(), inst, knapsack.WithStrategy(knapsack.BestFirst))
	fmt.Printf("strategy=%s value=%d optimal=%t greedy=%d\n",
		res.Strategy, res.Value, res.Optimal, res.Stats.GreedyValue)
	// Output: strategy=best-first value=19 optimal=true greedy=18
}

// ExampleSolve_budget shows an interrupted search: the incumbent comes back
// with Optimal=false and the reason in Abort.
func ExampleSolve_budget() {
	inst := knapsack.NewInstance(11,
		knapsack.Entry{Value: 8, Weight: 4},
		knapsack.Entry{Value: 10, Weight: 5},
		knapsack.Entry{Value: 15, Weight: 8},
		knapsack.Entry{Value: 4, Weight: 3},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := knapsack.Solve(ctx, inst)
	fmt.Println(err, res.Optimal, errors.Is(res.Abort, knapsack.ErrBudgetExhausted))
	fmt.Println(res)
	// Output:
	// <nil> false true
	// 18 0
	// 1 1 0 0
}
