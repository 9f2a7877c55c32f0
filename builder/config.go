// SPDX-License-Identifier: MIT
// Package: lvknap/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng           = nil                 (Generate requires WithSeed/WithRand)
//   • valueRange    = DefaultRange        (1000)
//   • capacityRatio = DefaultCapacityRatio (0.5)
//   • weightFn      = nil                 (resolved to U[1,R] at generation)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for all draws; nil means “not configured”.
	rng *rand.Rand
	// R: upper end of the default weight distribution and of uncorrelated values.
	valueRange int64
	// Capacity as a fraction of the total weight.
	capacityRatio float64
	// Optional weight distribution; nil selects U[1,R].
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:           nil,
		valueRange:    DefaultRange,
		capacityRatio: DefaultCapacityRatio,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// resolveWeightFn returns the configured WeightFn or U[1,R].
func (c builderConfig) resolveWeightFn() WeightFn {
	if c.weightFn != nil {
		return c.weightFn
	}

	return UniformWeightFn(MinRange, c.valueRange)
}
