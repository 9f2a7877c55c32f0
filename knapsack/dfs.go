// Package knapsack — depth-first Branch-and-Bound.
//
// The decision tree has one level per item in density order. At each level
// the engine tries, in this fixed order:
//  1. include — only if the item fits; tentative add, recurse, undo on return;
//  2. exclude — only if the relaxation bound of the remaining suffix beats
//     the incumbent; otherwise the whole subtree is pruned.
//
// Include-first in density order reaches good incumbents early, which
// tightens the pruning test sooner. At the terminal level an assignment
// replaces the incumbent only on strict improvement.
//
// Complexity:
//   - Worst case O(2ⁿ) nodes; O(n) bound per exclude test.
//   - Memory: O(n) for the prefix and the recursion (depth ≤ n+1).

package knapsack

// dfsEngine holds the decision prefix of the current path.
type dfsEngine struct {
	*session

	items    []Item
	capacity int64
	n        int

	// Current prefix
	value  int64
	weight int64 // invariant: weight ≤ capacity
	taken  []int // inclusion flags in input order
}

func newDFSEngine(s *session) *dfsEngine {
	return &dfsEngine{
		session:  s,
		items:    s.cat.items,
		capacity: s.cat.capacity,
		n:        len(s.cat.items),
		taken:    make([]int, len(s.cat.items)),
	}
}

func (e *dfsEngine) run() { e.visit(0) }

// visit explores the subtree rooted at the current prefix of length pos.
func (e *dfsEngine) visit(pos int) {
	if e.tick() {
		return
	}

	if pos == e.n {
		if e.improves(e.value) {
			copy(e.best.Selection, e.taken)
			e.commit(e.value, e.weight)
		}
		return
	}

	it := e.items[pos]

	// Include branch.
	if e.weight+it.Weight <= e.capacity {
		e.value += it.Value
		e.weight += it.Weight
		e.taken[it.Index] = 1
		e.visit(pos + 1)
		e.value -= it.Value
		e.weight -= it.Weight
		e.taken[it.Index] = 0
	}
	if e.abort != nil {
		return
	}

	// Exclude branch, pruned by the relaxation bound.
	if e.cat.FloorBound(pos+1, e.value, e.capacity-e.weight) > e.best.Value {
		e.visit(pos + 1)
		return
	}
	e.stats.Pruned++
}
