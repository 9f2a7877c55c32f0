// Package lvknap is a toolkit for the 0/1 knapsack problem — exact
// Branch-and-Bound search, a population heuristic and reproducible instance
// generators, behind one small CLI.
//
// 🚀 What is lvknap?
//
//	A pure-Go library and command that brings together:
//		• Exact search: depth-first and best-first Branch-and-Bound
//		• Bounds: greedy seed (lower) and fractional relaxation (upper)
//		• Budgets: node, time, frontier and context limits with graceful fallback
//		• Heuristic: Marriage-in-honey-Bees Optimization over bitset genomes
//		• Instances: text/YAML codecs, gzip/zstd inputs, seeded generators
//
// ✨ Why choose lvknap?
//
//   - Deterministic – ties broken by input order, seeded randomness only
//   - Honest – every answer is feasible; Optimal is set only on exhaustive runs
//   - Composable – functional options everywhere, contexts on every search
//
// Packages:
//
//	knapsack/  — Catalog, Bound, Greedy, DepthFirst/BestFirst search, Result
//	instance/  — text and YAML instance codec, compressed inputs, result output
//	mbo/       — Marriage-in-honey-Bees Optimization heuristic
//	builder/   — seeded instance generators (uncorrelated … subset-sum)
//	cmd/knapsack — the CLI: solve, heuristic, generate, version
//	examples/  — runnable demos (go run ./examples)
//
// Quick example:
//
//	4 11      ← item count, capacity
//	8 4       ← value weight
//	10 5
//	15 8
//	4 3
//
//	$ knapsack solve items.txt
//	19 1
//	0 0 1 1
//
//	go get github.com/katalvlaran/lvknap/knapsack
package lvknap
