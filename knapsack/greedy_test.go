package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvknap/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGreedy_Scenario checks the greedy seed of the 4-item scenario:
// (8,4) and (10,5) fit, (15,8) and (4,3) do not.
func TestGreedy_Scenario(t *testing.T) {
	cat, err := knapsack.NewCatalog(scenarioFour())
	require.NoError(t, err)

	inc := cat.Greedy()
	assert.Equal(t, int64(18), inc.Value)
	assert.Equal(t, int64(9), inc.Weight)
	assert.Equal(t, []int{1, 1, 0, 0}, inc.Selection)
}

// TestGreedy_AllTooHeavy yields the empty selection without special cases.
func TestGreedy_AllTooHeavy(t *testing.T) {
	inst := knapsack.NewInstance(5,
		knapsack.Entry{Value: 10, Weight: 6},
		knapsack.Entry{Value: 7, Weight: 9},
	)
	cat, err := knapsack.NewCatalog(inst)
	require.NoError(t, err)

	inc := cat.Greedy()
	assert.Equal(t, int64(0), inc.Value)
	assert.Equal(t, []int{0, 0}, inc.Selection)
}

// TestGreedy_FeasibleAndBelowOptimum checks feasibility and greedy ≤ optimal.
func TestGreedy_FeasibleAndBelowOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	for trial := 0; trial < 50; trial++ {
		inst := randomInstance(rng, rng.Intn(13), 50, 20)
		cat, err := knapsack.NewCatalog(inst)
		require.NoError(t, err)

		inc := cat.Greedy()
		v, w, err := inst.Evaluate(inc.Selection)
		require.NoError(t, err)
		require.Equal(t, inc.Value, v)
		require.Equal(t, inc.Weight, w)
		require.LessOrEqual(t, w, inst.Capacity)

		res := mustSolve(t, inst)
		require.True(t, res.Optimal)
		require.LessOrEqual(t, inc.Value, res.Value, "greedy must not beat the exact optimum")
		require.Equal(t, inc.Value, res.Stats.GreedyValue)
	}
}
