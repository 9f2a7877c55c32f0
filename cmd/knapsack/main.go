// Command knapsack solves 0/1 knapsack instances exactly (Branch-and-Bound),
// approximately (MBO), and generates benchmark instances.
//
//	knapsack solve items.txt
//	knapsack solve --strategy both --time-limit 10s a.txt b.yaml.gz
//	knapsack heuristic --iterations 200 --seed 7 items.txt
//	knapsack generate --kind strong --n 60 --seed 3 > hard.txt
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			} else {
				fmt.Fprintln(os.Stderr, "Run with --verbose for stack trace")
			}
			os.Exit(ExitError)
		}
	}()

	root := newRootCmd()
	if err := Execute(context.Background(), root); err != nil {
		os.Exit(HandleError(root, err))
	}
	os.Exit(ExitSuccess)
}
