// SPDX-License-Identifier: MIT
// Package: lvknap/builder
//
// generate.go — implementation of Generate(n, kind, opts...).
//
// Contract:
//   - n ≥ MinItems (else ErrTooFewItems).
//   - kind is one of the declared Kinds (else ErrUnknownKind).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for n = 0.
//   - Weights come from cfg.weightFn (default U[1,R]) and must be ≥ 1
//     (else ErrConstructFailed); values follow the family rule.
//   - capacity = ⌊capacityRatio · Σw⌋.
//
// Complexity:
//   - Time: O(n). Space: O(n) for the entries.
//
// Determinism:
//   - Items are drawn in index order; per item the weight is drawn before
//     the value, so a fixed seed yields a fixed instance.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvknap/knapsack"
)

// Generate draws an instance of n items from family kind.
func Generate(n int, kind Kind, opts ...BuilderOption) (knapsack.Instance, error) {
	if n < MinItems {
		return knapsack.Instance{}, fmt.Errorf("%s: n=%d < min=%d: %w",
			MethodGenerate, n, MinItems, ErrTooFewItems)
	}
	if _, ok := kindNames[kind]; !ok {
		return knapsack.Instance{}, fmt.Errorf("%s: %s: %w", MethodGenerate, kind, ErrUnknownKind)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return knapsack.Instance{}, fmt.Errorf("%s: %w", MethodGenerate, ErrNeedRandSource)
	}

	var (
		weightFn = cfg.resolveWeightFn()
		entries  = make([]knapsack.Entry, n)
		total    float64
		w        int64
		i        int
	)
	for i = 0; i < n; i++ {
		w = weightFn(cfg.rng)
		if w < 1 {
			return knapsack.Instance{}, fmt.Errorf("%s: item %d: weight %d < 1: %w",
				MethodGenerate, i, w, ErrConstructFailed)
		}
		entries[i] = knapsack.Entry{Value: kind.value(cfg.rng, w, cfg.valueRange), Weight: w}
		total += float64(w)
	}

	capacity := int64(math.MaxInt64)
	if c := math.Floor(cfg.capacityRatio * total); c < math.MaxInt64 {
		capacity = int64(c)
	}

	return knapsack.NewInstance(capacity, entries...), nil
}
