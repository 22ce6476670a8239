package refine_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/cvrp/auxgraph"
	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/refine"
	"github.com/katalvlaran/cvrp/route"
	"github.com/katalvlaran/cvrp/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImprove_RelocatesIntoCheaperRoute(t *testing.T) {
	// Customer 3 sits next to 1 and 2 but starts alone on its own route.
	inst, err := instance.New(10, []instance.Node{
		{},
		{X: 10, Y: 0, Demand: 2},
		{X: 10, Y: 2, Demand: 2},
		{X: 11, Y: 1, Demand: 2},
	})
	require.NoError(t, err)

	in := []route.Route{{1, 2}, {3}}
	out, st, err := refine.Improve(inst, in, refine.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, out, 1, "emptied route is dropped")
	assert.ElementsMatch(t, []int{1, 2, 3}, out[0])
	assert.GreaterOrEqual(t, st.Relocated, 1)
	assert.Less(t, st.After, st.Before)
	assert.Equal(t, []route.Route{{1, 2}, {3}}, in, "input untouched")
}

func TestImprove_RespectsCapacity(t *testing.T) {
	inst, err := instance.New(4, []instance.Node{
		{},
		{X: 10, Y: 0, Demand: 2},
		{X: 10, Y: 2, Demand: 2},
		{X: 11, Y: 1, Demand: 2},
	})
	require.NoError(t, err)

	out, st, err := refine.Improve(inst, []route.Route{{1, 2}, {3}}, refine.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, route.Verify(inst, out, inst.Capacity()))
	assert.Len(t, out, 2, "three customers of demand 2 never fit one vehicle of 4")
	assert.LessOrEqual(t, st.After, st.Before)
}

func TestImprove_FractionalDemandsAtCapacity(t *testing.T) {
	// Customer 1 fits route {3, 2} only at the tail: 0.3+0.2+0.1 == 0.6,
	// every other insertion sums to 0.6000000000000001.
	inst, err := instance.New(0.6, []instance.Node{
		{},
		{X: 10, Y: 0, Demand: 0.1},
		{X: 10, Y: 1, Demand: 0.2},
		{X: 10, Y: 2, Demand: 0.3},
	})
	require.NoError(t, err)

	for _, in := range [][]route.Route{
		{{3, 2}, {1}},
		{{2, 3}, {1}},
		{{1, 2}, {3}},
	} {
		out, st, err := refine.Improve(inst, in, refine.DefaultOptions())
		require.NoError(t, err)
		require.NoError(t, route.Verify(inst, out, inst.Capacity()), "%v", in)
		for _, r := range out {
			assert.LessOrEqual(t, route.Load(inst, r), inst.Capacity(), "%v", in)
		}
		assert.LessOrEqual(t, st.After, st.Before+1e-9)
	}
}

func TestImprove_NeverWorseAndFeasible(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 4))
	nodes := make([]instance.Node, 101)
	for i := 1; i < len(nodes); i++ {
		nodes[i] = instance.Node{X: rng.Float64() * 100, Y: rng.Float64() * 100, Demand: float64(1 + rng.IntN(15))}
	}
	inst, err := instance.New(50, nodes)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.Width = 45
	opts.Builder = auxgraph.Proximity{MaxDegree: 6}
	opts.Trials = 50
	res, err := search.Solve(context.Background(), inst, opts)
	require.NoError(t, err)

	out, st, err := refine.Improve(inst, res.Solution.Routes, refine.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, route.Verify(inst, out, inst.Capacity()))
	assert.LessOrEqual(t, st.After, res.Solution.Cost+1e-9)
	assert.InDelta(t, route.TotalCost(inst, out), st.After, 1e-12)
	assert.LessOrEqual(t, st.Passes, refine.DefaultMaxPasses)
	for _, r := range out {
		assert.NotEmpty(t, r)
	}
}

func TestImprove_ZeroPassesOnlyTwoOpt(t *testing.T) {
	inst, err := instance.New(10, []instance.Node{
		{},
		{X: 1, Y: 0, Demand: 1},
		{X: 1, Y: 1, Demand: 1},
		{X: 0, Y: 1, Demand: 1},
	})
	require.NoError(t, err)

	out, st, err := refine.Improve(inst, []route.Route{{1, 3, 2}}, refine.Options{})
	require.NoError(t, err)
	assert.Zero(t, st.Passes)
	assert.InDelta(t, 4.0, st.After, 1e-9)
	assert.Len(t, out[0], 3)
}

func TestImprove_Errors(t *testing.T) {
	inst, err := instance.New(10, []instance.Node{{}, {X: 1, Demand: 1}})
	require.NoError(t, err)

	_, _, err = refine.Improve(inst, nil, refine.Options{MaxPasses: -1})
	assert.ErrorIs(t, err, refine.ErrInvalidPasses)

	out, st, err := refine.Improve(inst, nil, refine.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, st.After)
}
