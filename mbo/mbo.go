package mbo

import (
	"context"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvknap/knapsack"
)

// Result is the best genome found by a run.
//
//   - Selection is in input order and always feasible.
//   - History[i] is the best value after flight i (across colonies).
//   - Flights counts completed flights; it is below Options.Iterations only
//     when the context stopped the run, in which case Abort holds ctx.Err().
type Result struct {
	Value     int64
	Weight    int64
	Selection []int
	History   []int64
	Flights   int
	Abort     error
}

// Run executes MBO on inst. The instance is validated like an exact solve
// (knapsack.ErrMalformedInstance); invalid options return ErrInvalidOptions.
// Cancellation is checked between flights and never turns into an error:
// the colonies report it through the errgroup and Run stores it in Abort.
func Run(ctx context.Context, inst knapsack.Instance, opts ...Option) (Result, error) {
	if _, err := knapsack.NewCatalog(inst); err != nil {
		return Result{}, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := validateOptions(cfg); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	p := &problem{
		n:        uint(len(inst.Entries)),
		values:   make([]int64, len(inst.Entries)),
		weights:  make([]int64, len(inst.Entries)),
		capacity: inst.Capacity,
	}
	for i, e := range inst.Entries {
		p.values[i] = e.Value
		p.weights[i] = e.Weight
	}

	colonies := make([]*colony, cfg.Colonies)
	var g errgroup.Group
	for k := range colonies {
		colonies[k] = newColony(p, cfg, colonyRNG(cfg.Seed, k))
		c := colonies[k]
		g.Go(func() error { return c.fly(ctx) })
	}
	abort := g.Wait()

	res := merge(p, colonies)
	res.Abort = abort

	return res, nil
}

// merge picks the best queen (lowest colony index on ties) and combines the
// per-flight histories.
func merge(p *problem, colonies []*colony) Result {
	best := colonies[0]
	flights := len(best.history)
	for _, c := range colonies[1:] {
		if c.value > best.value {
			best = c
		}
		flights = min(flights, len(c.history))
	}

	history := make([]int64, flights)
	for i := range history {
		for _, c := range colonies {
			history[i] = max(history[i], c.history[i])
		}
	}

	return Result{
		Value:     best.value,
		Weight:    best.weight,
		Selection: p.selection(best.queen),
		History:   history,
		Flights:   flights,
	}
}

// colony is one independent population; it is owned by one goroutine.
type colony struct {
	p   *problem
	opt Options
	rng *rand.Rand

	queen  *bitset.BitSet
	value  int64
	weight int64

	history []int64
}

// newColony builds a random genome and lets a worker turn it into the first
// feasible queen.
func newColony(p *problem, opt Options, rng *rand.Rand) *colony {
	c := &colony{p: p, opt: opt, rng: rng, history: make([]int64, 0, opt.Iterations)}
	c.queen = p.randomGenome(rng)
	c.value, c.weight = p.improve(c.queen, rng)

	return c
}

// fly runs the configured number of mating flights. It returns the context
// error when cancellation cut the run short; the queen stays valid.
func (c *colony) fly(ctx context.Context) error {
	spermatheca := make([]drone, 0, c.opt.SpermathecaSize)
	for it := 0; it < c.opt.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		spermatheca = c.mate(spermatheca[:0])
		c.breed(spermatheca)
		c.history = append(c.history, c.value)
	}

	return nil
}

// mate performs one flight and returns the accepted drones.
func (c *colony) mate(spermatheca []drone) []drone {
	energy := 0.5 + 0.5*c.rng.Float64()
	speed := 0.5 + 0.5*c.rng.Float64()
	gamma := energy * 0.5 / float64(c.opt.SpermathecaSize)

	flying := c.queen.Clone()
	for energy > 0 && len(spermatheca) < c.opt.SpermathecaSize {
		d := c.p.randomDrone(c.rng)
		if c.rng.Float64() < c.p.matingProb(c.p.value(flying), c.p.value(d.genes), speed) {
			spermatheca = append(spermatheca, d)
		}
		c.p.flip(flying, speed, c.rng)
		energy -= gamma
		speed *= c.opt.Alpha
	}

	return spermatheca
}

// breed raises larvae from random stored drones and crowns the best one if it
// beats the queen. Each drone mates at most once.
func (c *colony) breed(spermatheca []drone) {
	var (
		bestLarva *bitset.BitSet
		bestValue int64
		bestW     int64
	)
	for broods := 0; broods < c.opt.MaxBroods && len(spermatheca) > 0; broods++ {
		k := c.rng.Intn(len(spermatheca))
		d := spermatheca[k]
		spermatheca[k] = spermatheca[len(spermatheca)-1]
		spermatheca = spermatheca[:len(spermatheca)-1]

		larva := crossover(c.queen, d)
		c.p.flip(larva, c.opt.MutationProb, c.rng)
		v, w := c.p.improve(larva, c.rng)
		if bestLarva == nil || v > bestValue {
			bestLarva, bestValue, bestW = larva, v, w
		}
	}
	if bestLarva != nil && bestValue > c.value {
		c.queen, c.value, c.weight = bestLarva, bestValue, bestW
	}
}
