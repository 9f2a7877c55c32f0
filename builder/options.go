// SPDX-License-Identifier: MIT
// Package: lvknap/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig before
// any draw happens.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange sets R, the upper end of weights (default distribution) and of
// uncorrelated values. Panics if R < MinRange.
func WithRange(r int64) BuilderOption {
	if r < MinRange {
		panic(fmt.Sprintf("builder: WithRange(%d) < %d", r, MinRange))
	}
	return func(c *builderConfig) {
		c.valueRange = r
	}
}

// WithCapacityRatio sets capacity = ⌊ratio · Σw⌋.
// Panics unless ratio ∈ [MinCapacityRatio, MaxCapacityRatio].
func WithCapacityRatio(ratio float64) BuilderOption {
	if !(ratio >= MinCapacityRatio && ratio <= MaxCapacityRatio) {
		panic(fmt.Sprintf("builder: WithCapacityRatio(%g) outside [0,1]", ratio))
	}
	return func(c *builderConfig) {
		c.capacityRatio = ratio
	}
}

// WithWeightFn overrides the weight distribution. The function must draw
// only from the RNG it receives to keep generation deterministic.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
