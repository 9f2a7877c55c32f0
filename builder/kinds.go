// Package builder defines the supported instance families.
package builder

import (
	"fmt"
	"math/rand"
	"strings"
)

// Kind enumerates the generated instance families.
// Complexity for each: O(1) per item.
type Kind int

const (
	// Uncorrelated draws values independently of weights: v ~ U[1,R].
	Uncorrelated Kind = iota

	// WeaklyCorrelated draws v ~ U[w−R/10, w+R/10], clipped to ≥ 1.
	WeaklyCorrelated

	// StronglyCorrelated sets v = w + R/10.
	StronglyCorrelated

	// SubsetSum sets v = w: every density is 1.
	SubsetSum
)

// kindNames maps each Kind to its CLI name.
var kindNames = map[Kind]string{
	Uncorrelated:       "uncorrelated",
	WeaklyCorrelated:   "weak",
	StronglyCorrelated: "strong",
	SubsetSum:          "subset-sum",
}

// String returns the CLI name of k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a CLI name to a Kind. Long forms ("weakly-correlated",
// "strongly-correlated", "subsetsum") are accepted too.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uncorrelated", "u":
		return Uncorrelated, nil
	case "weak", "weakly-correlated", "w":
		return WeaklyCorrelated, nil
	case "strong", "strongly-correlated", "s":
		return StronglyCorrelated, nil
	case "subset-sum", "subsetsum", "ss":
		return SubsetSum, nil
	default:
		return 0, fmt.Errorf("%s: %q: %w", MethodParseKind, name, ErrUnknownKind)
	}
}

// value draws the value of an item of weight w for family k with range r.
func (k Kind) value(rng *rand.Rand, w, r int64) int64 {
	spread := r / correlationDivisor
	switch k {
	case Uncorrelated:
		return 1 + rng.Int63n(r)
	case WeaklyCorrelated:
		v := w - spread + rng.Int63n(2*spread+1)
		if v < 1 {
			v = 1
		}
		return v
	case StronglyCorrelated:
		return w + spread
	default: // SubsetSum
		return w
	}
}
