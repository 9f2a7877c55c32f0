package mbo

import (
	"math"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// problem is the read-only instance data shared by all colonies.
type problem struct {
	n        uint
	values   []int64
	weights  []int64
	capacity int64
}

// value sums the values of all set genes; feasibility is not checked.
func (p *problem) value(g *bitset.BitSet) int64 {
	var v int64
	for i, ok := g.NextSet(0); ok; i, ok = g.NextSet(i + 1) {
		v += p.values[i]
	}

	return v
}

// weight sums the weights of all set genes.
func (p *problem) weight(g *bitset.BitSet) int64 {
	var w int64
	for i, ok := g.NextSet(0); ok; i, ok = g.NextSet(i + 1) {
		w += p.weights[i]
	}

	return w
}

// selection converts g to 0/1 flags in input order.
func (p *problem) selection(g *bitset.BitSet) []int {
	sel := make([]int, p.n)
	for i, ok := g.NextSet(0); ok; i, ok = g.NextSet(i + 1) {
		sel[i] = 1
	}

	return sel
}

// randomGenome sets each gene independently with probability 1/2.
func (p *problem) randomGenome(rng *rand.Rand) *bitset.BitSet {
	g := bitset.New(p.n)
	for i := uint(0); i < p.n; i++ {
		if rng.Intn(2) == 1 {
			g.Set(i)
		}
	}

	return g
}

// drone is a half genome: genes where absent is set are not carried.
type drone struct {
	genes  *bitset.BitSet
	absent *bitset.BitSet
}

// randomDrone draws random genes and marks a random half (rounded up) of the
// positions as absent.
func (p *problem) randomDrone(rng *rand.Rand) drone {
	marks := make([]bool, p.n)
	for i := p.n / 2; i < p.n; i++ {
		marks[i] = true
	}
	shuffleInPlace(marks, rng)

	absent := bitset.New(p.n)
	for i, m := range marks {
		if m {
			absent.Set(uint(i))
		}
	}

	return drone{genes: p.randomGenome(rng), absent: absent}
}

// crossover keeps the queen's gene where the drone's is absent and the
// drone's gene elsewhere.
func crossover(queen *bitset.BitSet, d drone) *bitset.BitSet {
	return queen.Intersection(d.absent).Union(d.genes.Difference(d.absent))
}

// flip toggles each gene of g with probability prob.
func (p *problem) flip(g *bitset.BitSet, prob float64, rng *rand.Rand) {
	if prob <= 0 {
		return
	}
	for i := uint(0); i < p.n; i++ {
		if rng.Float64() < prob {
			g.Flip(i)
		}
	}
}

// matingProb is the annealing-style acceptance probability of a drone.
// With zero capacity only drones of identical fitness are accepted.
func (p *problem) matingProb(queenFit, droneFit int64, speed float64) float64 {
	d := queenFit - droneFit
	if d < 0 {
		d = -d
	}
	if p.capacity == 0 {
		if d == 0 {
			return 1
		}
		return 0
	}

	return math.Exp(-float64(d) / float64(p.capacity) / speed)
}

// improve is the worker: it drops random included items until g is feasible,
// then makes n attempts to add a random excluded item, keeping additions that
// fit and add value. g is modified in place; value and weight are returned.
func (p *problem) improve(g *bitset.BitSet, rng *rand.Rand) (int64, int64) {
	w := p.weight(g)
	if w > p.capacity {
		set := make([]uint, 0, g.Count())
		for i, ok := g.NextSet(0); ok; i, ok = g.NextSet(i + 1) {
			set = append(set, i)
		}
		for w > p.capacity {
			k := rng.Intn(len(set))
			g.Clear(set[k])
			w -= p.weights[set[k]]
			set[k] = set[len(set)-1]
			set = set[:len(set)-1]
		}
	}

	var j uint
	for attempt := uint(0); attempt < p.n; attempt++ {
		if g.Count() == p.n {
			break
		}
		for {
			j = uint(rng.Intn(int(p.n)))
			if !g.Test(j) {
				break
			}
		}
		if w+p.weights[j] <= p.capacity && p.values[j] > 0 {
			g.Set(j)
			w += p.weights[j]
		}
	}

	return p.value(g), w
}
