package knapsack

// Greedy fills the knapsack in density order without backtracking: each item
// is taken if it still fits, skipped otherwise. The result is feasible and is
// used as the initial incumbent and as the fallback answer of an aborted search.
//
// An instance where every item is heavier than the capacity yields the empty
// selection with value 0.
//
// Complexity: O(n) time, O(n) space for the selection.
func (c *Catalog) Greedy() Incumbent {
	inc := Incumbent{Selection: make([]int, len(c.items))}
	for _, it := range c.items {
		if inc.Weight+it.Weight <= c.capacity {
			inc.Value += it.Value
			inc.Weight += it.Weight
			inc.Selection[it.Index] = 1
		}
	}

	return inc
}
