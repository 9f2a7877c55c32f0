// Package knapsack — best-first Branch-and-Bound.
//
// The frontier is a max-heap of pending decisions ordered by relaxation
// bound (highest first); equal bounds are served FIFO by insertion sequence so
// that runs are deterministic. Loop:
//  1. pop the node with the highest bound;
//  2. if its bound ≤ incumbent, stop: every remaining node is bounded by it
//     (optimality certificate);
//  3. terminal node: replace the incumbent on strict improvement;
//  4. otherwise push the include child (if it fits; same bound as the parent,
//     since the relaxation would take that item whole first) and the exclude
//     child (fresh bound), each only if its bound beats the incumbent.
//
// A drained frontier means every node was expanded or pruned, which is also
// an exhaustive (optimal) termination.
//
// Complexity:
//   - Worst case O(2ⁿ) nodes, O(log F) per heap operation, F = frontier size.
//   - Memory: the frontier is the dominant cost; cap it with WithMaxFrontier.

package knapsack

import "container/heap"

// bfNode is one pending branch decision. The parent chain is shared between
// siblings and rebuilds the selection of a terminal node on demand.
type bfNode struct {
	bound  int64   // floor of the relaxation bound of the subtree
	value  int64   // accumulated value
	weight int64   // accumulated weight (≤ capacity)
	pos    int     // next item position to decide
	taken  bool    // whether items[pos-1] was included
	parent *bfNode // nil for the root
	seq    uint64  // insertion order, FIFO tie-break
}

// frontier is a max-heap of *bfNode by bound, then ascending seq.
type frontier []*bfNode

// Len returns the number of pending nodes.
func (f frontier) Len() int { return len(f) }

// Less puts higher bounds first; equal bounds keep insertion order.
func (f frontier) Less(i, j int) bool {
	if f[i].bound != f[j].bound {
		return f[i].bound > f[j].bound
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two nodes.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*bfNode)) }

// Pop removes the last node; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	nd := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return nd
}

// bestFirstEngine drives the frontier for one solve.
type bestFirstEngine struct {
	*session

	items       []Item
	capacity    int64
	n           int
	maxFrontier int

	pq  frontier
	seq uint64
}

func newBestFirstEngine(s *session, maxFrontier int) *bestFirstEngine {
	return &bestFirstEngine{
		session:     s,
		items:       s.cat.items,
		capacity:    s.cat.capacity,
		n:           len(s.cat.items),
		maxFrontier: maxFrontier,
	}
}

// push enqueues nd when its bound beats the incumbent. It returns false when
// the frontier cap was exceeded and the search must stop.
func (e *bestFirstEngine) push(nd *bfNode) bool {
	if nd.bound <= e.best.Value {
		e.stats.Pruned++
		return true
	}
	nd.seq = e.seq
	e.seq++
	heap.Push(&e.pq, nd)
	if l := e.pq.Len(); l > e.stats.MaxFrontier {
		e.stats.MaxFrontier = l
	}
	if e.maxFrontier > 0 && e.pq.Len() > e.maxFrontier {
		e.stop(ErrFrontierLimit)
		return false
	}

	return true
}

func (e *bestFirstEngine) run() {
	root := &bfNode{bound: e.cat.FloorBound(0, 0, e.capacity), pos: 0, taken: true}
	// The root is enqueued unconditionally; the first pop applies the
	// certificate test to it like to any other node.
	root.seq = e.seq
	e.seq++
	heap.Push(&e.pq, root)
	e.stats.MaxFrontier = 1

	var (
		nd *bfNode
		it Item
	)
	for e.pq.Len() > 0 {
		if e.tick() {
			return
		}
		nd = heap.Pop(&e.pq).(*bfNode)

		if nd.bound <= e.best.Value {
			return
		}

		if nd.pos == e.n {
			if e.improves(nd.value) {
				e.fill(nd)
				e.commit(nd.value, nd.weight)
			}
			continue
		}

		it = e.items[nd.pos]
		if nd.weight+it.Weight <= e.capacity {
			if !e.push(&bfNode{
				bound:  nd.bound,
				value:  nd.value + it.Value,
				weight: nd.weight + it.Weight,
				pos:    nd.pos + 1,
				taken:  true,
				parent: nd,
			}) {
				return
			}
		}
		if !e.push(&bfNode{
			bound:  e.cat.FloorBound(nd.pos+1, nd.value, e.capacity-nd.weight),
			value:  nd.value,
			weight: nd.weight,
			pos:    nd.pos + 1,
			taken:  false,
			parent: nd,
		}) {
			return
		}
	}
}

// fill rewrites the incumbent selection from the decision chain ending at nd.
func (e *bestFirstEngine) fill(nd *bfNode) {
	sel := e.best.Selection
	for i := range sel {
		sel[i] = 0
	}
	for ; nd.parent != nil; nd = nd.parent {
		if nd.taken {
			sel[e.items[nd.pos-1].Index] = 1
		}
	}
}
