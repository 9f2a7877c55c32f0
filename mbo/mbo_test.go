package mbo_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/knapsack"
	"github.com/katalvlaran/lvknap/mbo"
)

const seedDet int64 = 20240917

// twenty is the classic 20-item benchmark instance.
func twenty() knapsack.Instance {
	values := []int64{92, 4, 43, 83, 84, 68, 92, 82, 6, 44, 32, 18, 56, 83, 25, 96, 70, 48, 14, 58}
	weights := []int64{44, 46, 90, 72, 91, 40, 75, 35, 8, 54, 78, 40, 77, 15, 61, 17, 75, 29, 75, 63}
	entries := make([]knapsack.Entry, len(values))
	for i := range values {
		entries[i] = knapsack.Entry{Value: values[i], Weight: weights[i]}
	}

	return knapsack.NewInstance(878, entries...)
}

func randomInstance(rng *rand.Rand, n int) knapsack.Instance {
	entries := make([]knapsack.Entry, n)
	var total int64
	for i := range entries {
		entries[i] = knapsack.Entry{Value: rng.Int63n(60), Weight: 1 + rng.Int63n(40)}
		total += entries[i].Weight
	}

	return knapsack.NewInstance(total/3, entries...)
}

// TestRun_FeasibleAndBounded compares against the exact optimum.
func TestRun_FeasibleAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	insts := []knapsack.Instance{twenty()}
	for i := 0; i < 15; i++ {
		insts = append(insts, randomInstance(rng, 1+rng.Intn(25)))
	}
	for i, inst := range insts {
		res, err := mbo.Run(context.Background(), inst, mbo.WithIterations(30), mbo.WithSeed(int64(i+1)))
		require.NoError(t, err)

		exact, err := knapsack.Solve(context.Background(), inst)
		require.NoError(t, err)
		require.True(t, exact.Optimal)

		require.NoError(t, inst.Verify(knapsack.Result{Value: res.Value, Weight: res.Weight, Selection: res.Selection}))
		require.LessOrEqualf(t, res.Value, exact.Value, "instance %d: heuristic cannot beat the optimum", i)
		require.Nil(t, res.Abort)
	}
}

// TestRun_Deterministic repeats runs with one seed, for one and several colonies.
func TestRun_Deterministic(t *testing.T) {
	for _, colonies := range []int{1, 4} {
		a, err := mbo.Run(context.Background(), twenty(), mbo.WithSeed(seedDet), mbo.WithColonies(colonies), mbo.WithIterations(25))
		require.NoError(t, err)
		b, err := mbo.Run(context.Background(), twenty(), mbo.WithSeed(seedDet), mbo.WithColonies(colonies), mbo.WithIterations(25))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

// TestRun_History is non-decreasing, one entry per flight, ending at Value.
func TestRun_History(t *testing.T) {
	res, err := mbo.Run(context.Background(), twenty(), mbo.WithIterations(40), mbo.WithColonies(3))
	require.NoError(t, err)
	require.Len(t, res.History, 40)
	require.Equal(t, 40, res.Flights)
	for i := 1; i < len(res.History); i++ {
		require.GreaterOrEqual(t, res.History[i], res.History[i-1])
	}
	assert.Equal(t, res.Value, res.History[len(res.History)-1])
}

// TestRun_NoFlights returns the worker-improved initial queen.
func TestRun_NoFlights(t *testing.T) {
	inst := twenty()
	res, err := mbo.Run(context.Background(), inst, mbo.WithIterations(0))
	require.NoError(t, err)
	assert.Empty(t, res.History)
	assert.NoError(t, inst.Verify(knapsack.Result{Value: res.Value, Weight: res.Weight, Selection: res.Selection}))
}

// TestRun_Canceled stops before the first flight without failing.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inst := twenty()
	res, err := mbo.Run(ctx, inst, mbo.WithColonies(2))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Flights)
	assert.ErrorIs(t, res.Abort, context.Canceled)
	assert.NoError(t, inst.Verify(knapsack.Result{Value: res.Value, Weight: res.Weight, Selection: res.Selection}))
}

// TestRun_Degenerate covers empty, zero-capacity and all-too-heavy instances.
func TestRun_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		inst knapsack.Instance
		sel  []int
	}{
		{"empty", knapsack.NewInstance(10), []int{}},
		{"zero capacity", knapsack.NewInstance(0,
			knapsack.Entry{Value: 3, Weight: 1}, knapsack.Entry{Value: 3, Weight: 2}), []int{0, 0}},
		{"too heavy", knapsack.NewInstance(5, knapsack.Entry{Value: 10, Weight: 6}), []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := mbo.Run(context.Background(), tt.inst, mbo.WithIterations(5))
			require.NoError(t, err)
			assert.Equal(t, int64(0), res.Value)
			assert.Equal(t, tt.sel, res.Selection)
		})
	}
}

// TestRun_Errors rejects malformed instances and out-of-range options.
func TestRun_Errors(t *testing.T) {
	_, err := mbo.Run(context.Background(), knapsack.NewInstance(5, knapsack.Entry{Value: 1, Weight: 0}))
	assert.ErrorIs(t, err, knapsack.ErrMalformedInstance)

	for name, opt := range map[string]mbo.Option{
		"iterations":  mbo.WithIterations(-1),
		"spermatheca": mbo.WithSpermathecaSize(0),
		"broods":      mbo.WithMaxBroods(0),
		"alpha zero":  mbo.WithAlpha(0),
		"alpha big":   mbo.WithAlpha(1.5),
		"mutation":    mbo.WithMutationProb(-0.1),
		"colonies":    mbo.WithColonies(0),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := mbo.Run(context.Background(), twenty(), opt)
			assert.ErrorIs(t, err, mbo.ErrInvalidOptions)
		})
	}
}

// TestDefaultOptions documents the classic parameterization.
func TestDefaultOptions(t *testing.T) {
	o := mbo.DefaultOptions()
	assert.Equal(t, 100, o.Iterations)
	assert.Equal(t, 15, o.SpermathecaSize)
	assert.Equal(t, 10, o.MaxBroods)
	assert.InDelta(t, 0.9, o.Alpha, 1e-12)
	assert.InDelta(t, 0.1, o.MutationProb, 1e-12)
	assert.Equal(t, 1, o.Colonies)

	got := mbo.DefaultOptions()
	mbo.WithOptions(mbo.Options{Iterations: 3})(&got)
	assert.Equal(t, 3, got.Iterations)
	assert.Zero(t, got.Colonies)
}
