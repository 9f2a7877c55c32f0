package knapsack

import "math/bits"

// Bound returns the fractional-relaxation upper bound on the total value of
// any completion of a prefix that decided items [0, pos) with accumulated
// value `value` and `residual` capacity left.
//
// Walk the density-sorted suffix from pos adding whole items while they fit;
// the first item that does not fit contributes residual·density and the walk
// stops. This is the LP relaxation optimum for the suffix, hence never below
// the best 0/1 completion.
//
// The float64 result is for reporting (Stats.RootBound); above 2⁵³ it is
// rounded. The search prunes with FloorBound.
//
// Pure; O(n-pos) time, no allocations.
func (c *Catalog) Bound(pos int, value, residual int64) float64 {
	var (
		n     = len(c.items)
		bound = float64(value)
		it    Item
	)
	for ; pos < n; pos++ {
		it = c.items[pos]
		if it.Weight > residual {
			bound += float64(residual) * it.Density
			break
		}
		bound += float64(it.Value)
		residual -= it.Weight
	}

	return bound
}

// FloorBound is ⌊Bound(pos, value, residual)⌋ computed in integer arithmetic.
// Every completion value is an integer, so a subtree whose FloorBound does
// not exceed the incumbent cannot improve it. The result is exact for all
// instances accepted by NewCatalog (value must be a sum of distinct item
// values, so it never overflows).
//
// Pure; O(n-pos) time, no allocations.
func (c *Catalog) FloorBound(pos int, value, residual int64) int64 {
	var (
		n     = len(c.items)
		bound = value
		it    Item
	)
	for ; pos < n; pos++ {
		it = c.items[pos]
		if it.Weight > residual {
			bound += fraction(residual, it.Value, it.Weight)
			break
		}
		bound += it.Value
		residual -= it.Weight
	}

	return bound
}

// fraction returns ⌊r·v/w⌋ for 0 ≤ r < w and v ≥ 0. The 128-bit product
// has a high word below w, so Div64 cannot overflow, and the quotient is
// below v.
func fraction(r, v, w int64) int64 {
	if r <= 0 || v == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(r), uint64(v))
	q, _ := bits.Div64(hi, lo, uint64(w))

	return int64(q)
}
