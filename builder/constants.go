// Package builder defines shared constants used by instance generators,
// ensuring consistent defaults and validation across all families.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for the Generate entry point.
	MethodGenerate = "Generate"
	// MethodParseKind is the canonical name for ParseKind.
	MethodParseKind = "ParseKind"
)

//-----------------------------------------------------------------------------
// Defaults and Bounds
//-----------------------------------------------------------------------------

// MinItems is the smallest accepted item count; an empty instance is valid.
const MinItems = 0

// DefaultRange is the default R: weights and uncorrelated values in [1,R].
const DefaultRange int64 = 1000

// MinRange is the smallest accepted R.
const MinRange int64 = 1

// DefaultCapacityRatio sets the capacity to half of the total weight.
const DefaultCapacityRatio = 0.5

// MinCapacityRatio and MaxCapacityRatio bound WithCapacityRatio, inclusive.
const (
	MinCapacityRatio = 0.0
	MaxCapacityRatio = 1.0
)

// correlationDivisor is the 10 in the R/10 spread of the correlated families.
const correlationDivisor = 10
