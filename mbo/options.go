package mbo

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions indicates parameters outside their documented ranges.
var ErrInvalidOptions = errors.New("mbo: invalid options")

// Options configures one heuristic run.
//
// Iterations      – number of mating flights (0 keeps the worker-improved initial queen).
// SpermathecaSize – drones stored per flight (≥ 1).
// MaxBroods       – larvae bred per flight (≥ 1).
// Alpha           – speed decay per flight step, in (0, 1].
// MutationProb    – per-gene flip probability of a larva, in [0, 1].
// Colonies        – independent colonies run concurrently (≥ 1).
// Seed            – RNG seed; 0 selects a fixed default.
type Options struct {
	Iterations      int
	SpermathecaSize int
	MaxBroods       int
	Alpha           float64
	MutationProb    float64
	Colonies        int
	Seed            int64
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns the classic parameterization: 100 flights, a
// spermatheca of 15, 10 broods, Alpha 0.9, mutation 0.1, one colony.
func DefaultOptions() Options {
	return Options{
		Iterations:      100,
		SpermathecaSize: 15,
		MaxBroods:       10,
		Alpha:           0.9,
		MutationProb:    0.1,
		Colonies:        1,
		Seed:            0,
	}
}

// WithIterations sets the number of mating flights.
func WithIterations(n int) Option { return func(o *Options) { o.Iterations = n } }

// WithSpermathecaSize sets the drone capacity of one flight.
func WithSpermathecaSize(n int) Option { return func(o *Options) { o.SpermathecaSize = n } }

// WithMaxBroods sets the number of larvae bred per flight.
func WithMaxBroods(n int) Option { return func(o *Options) { o.MaxBroods = n } }

// WithAlpha sets the speed decay factor.
func WithAlpha(a float64) Option { return func(o *Options) { o.Alpha = a } }

// WithMutationProb sets the per-gene mutation probability.
func WithMutationProb(p float64) Option { return func(o *Options) { o.MutationProb = p } }

// WithColonies sets the number of independent concurrent colonies.
func WithColonies(n int) Option { return func(o *Options) { o.Colonies = n } }

// WithSeed fixes the RNG seed (0 ⇒ default seed).
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithOptions replaces the whole option set.
func WithOptions(src Options) Option { return func(o *Options) { *o = src } }

func validateOptions(o Options) error {
	switch {
	case o.Iterations < 0:
		return fmt.Errorf("%w: iterations %d < 0", ErrInvalidOptions, o.Iterations)
	case o.SpermathecaSize < 1:
		return fmt.Errorf("%w: spermatheca size %d < 1", ErrInvalidOptions, o.SpermathecaSize)
	case o.MaxBroods < 1:
		return fmt.Errorf("%w: broods %d < 1", ErrInvalidOptions, o.MaxBroods)
	case !(o.Alpha > 0 && o.Alpha <= 1):
		return fmt.Errorf("%w: alpha %g outside (0,1]", ErrInvalidOptions, o.Alpha)
	case !(o.MutationProb >= 0 && o.MutationProb <= 1):
		return fmt.Errorf("%w: mutation probability %g outside [0,1]", ErrInvalidOptions, o.MutationProb)
	case o.Colonies < 1:
		return fmt.Errorf("%w: colonies %d < 1", ErrInvalidOptions, o.Colonies)
	}

	return nil
}
