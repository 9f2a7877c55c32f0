// Package builder generates reproducible 0/1 knapsack instances from the
// classic benchmark families, in the same functional-options style used by
// the rest of lvknap.
//
// The package offers the following key components:
//
//   - Generate(n, kind, opts...): draws n items of the requested Kind and
//     returns a valid knapsack.Instance.
//   - Kinds (R = value range, w ~ weight distribution, default U[1,R]):
//     – Uncorrelated:       v ~ U[1,R], independent of w.
//     – WeaklyCorrelated:   v ~ U[w−R/10, w+R/10], clipped to ≥ 1.
//     – StronglyCorrelated: v = w + R/10.
//     – SubsetSum:          v = w.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: the RNG source (required; generation is stochastic).
//     – WithRange:         R, the upper end of weights and uncorrelated values.
//     – WithCapacityRatio: capacity = ⌊ratio · Σw⌋.
//     – WithWeightFn:      custom weight distribution (WeightFn family).
//
// Guarantees:
//
//   - Determinism: the same seed and options always produce the same instance.
//   - Every weight is ≥ 1 and every value ≥ 0, so the result always passes
//     knapsack.NewCatalog.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     runtime parameters (n, kind, rng presence) return sentinel errors.
//
// Correlated families are much harder for Branch-and-Bound: densities are
// nearly equal, so the relaxation bound prunes little.
package builder
