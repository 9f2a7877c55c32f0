// SPDX-License-Identifier: MIT
// Package: lvknap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: "<Method>: <detail>: %w".
//   • Generators never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewItems indicates a negative item count.
// Usage: if errors.Is(err, ErrTooFewItems) { /* report invalid size */ }.
var ErrTooFewItems = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that no RNG was configured (WithSeed/WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownKind indicates an instance family this package does not generate.
var ErrUnknownKind = errors.New("builder: unknown instance kind")

// ErrConstructFailed indicates that a custom WeightFn produced a weight
// below 1, which would make the instance malformed.
var ErrConstructFailed = errors.New("builder: construction failed")
