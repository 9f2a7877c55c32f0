// Package builder provides weight distributions for instance generators.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces one item weight from the generator's RNG.
// It must be deterministic for a given RNG state and return values ≥ 1.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields w.
// Panics if w < 1.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(w int64) WeightFn {
	if w < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: weight must be ≥ 1, got %d", w))
	}

	return func(_ *rand.Rand) int64 {
		return w
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi] inclusive.
// Panics if lo < 1 or hi < lo.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev), rounded to
// the nearest integer and clipped to [1, MaxInt64].
// Panics if stddev < 0.
// Complexity: O(1) time, O(1) space.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) int64 {
		return clipWeight(math.Round(rng.NormFloat64()*stddev + mean))
	}
}

// ExponentialWeightFn returns a WeightFn sampling 1 + Exp(rate), rounded.
// Panics if rate ≤ 0.
// Complexity: O(1) time, O(1) space.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) int64 {
		return clipWeight(1 + math.Round(rng.ExpFloat64()/rate))
	}
}

// clipWeight maps a real sample into the valid weight domain.
func clipWeight(x float64) int64 {
	if x < 1 {
		return 1
	}
	if x >= math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(x)
}

// WithConstantWeight sets a fixed item weight via ConstantWeightFn.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[lo,hi] via UniformWeightFn.
func WithUniformWeight(lo, hi int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithNormalWeight sets weights ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets weights ∼ 1+Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
