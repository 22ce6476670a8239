package search_test

import (
	"context"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/cvrp/auxgraph"
	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/route"
	"github.com/katalvlaran/cvrp/search"
	"github.com/katalvlaran/cvrp/sector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cluster builds n random customers around a central depot.
func cluster(t testing.TB, n int, seed uint64) *instance.Instance {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 1))
	nodes := make([]instance.Node, n+1)
	for i := 1; i <= n; i++ {
		nodes[i] = instance.Node{
			ID:     i + 1,
			X:      rng.NormFloat64() * 40,
			Y:      rng.NormFloat64() * 40,
			Demand: float64(1 + rng.IntN(9)),
		}
	}
	inst, err := instance.New(40, nodes, instance.WithName("cluster"))
	require.NoError(t, err)
	return inst
}

func options(b auxgraph.Builder, width float64, trials, p int) search.Options {
	o := search.DefaultOptions()
	o.Builder = b
	o.Width = width
	o.Trials = trials
	o.Parallelism = p
	o.Seed = 2024
	return o
}

type countingObserver struct {
	graphs, trials, partitions atomic.Int64
}

func (c *countingObserver) GraphBuilt(string)                     { c.graphs.Add(1) }
func (c *countingObserver) TrialsDone(n int)                      { c.trials.Add(int64(n)) }
func (c *countingObserver) PartitionDone(search.PartitionResult) { c.partitions.Add(1) }

func TestSolve_Invariants(t *testing.T) {
	inst := cluster(t, 120, 1)
	for _, b := range []auxgraph.Builder{
		auxgraph.Proximity{MaxDegree: 8},
		auxgraph.Proximity{MaxDegree: 6, WedgeDeg: 10},
		auxgraph.MST{},
		auxgraph.MSTRestart{Rounds: 3},
	} {
		res, err := search.Solve(context.Background(), inst, options(b, 60, 200, 4))
		require.NoError(t, err, b.Name())

		sol := res.Solution
		require.NoError(t, route.Verify(inst, sol.Routes, inst.Capacity()), b.Name())
		assert.InDelta(t, route.TotalCost(inst, sol.Routes), sol.Cost, search.CostTolerance)
		assert.Len(t, res.Partitions, 6)

		var sum float64
		for i, p := range res.Partitions {
			assert.Equal(t, i, p.Index)
			sum += p.Best.Cost
		}
		assert.Equal(t, sol.Cost, sum)
	}
}

func TestSolve_DeterministicAcrossParallelism(t *testing.T) {
	inst := cluster(t, 90, 7)
	for _, b := range []auxgraph.Builder{auxgraph.Proximity{MaxDegree: 6}, auxgraph.MSTRestart{Rounds: 2}} {
		ref, err := search.Solve(context.Background(), inst, options(b, 90, 300, 1))
		require.NoError(t, err)

		for _, p := range []int{2, 3, 8} {
			got, err := search.Solve(context.Background(), inst, options(b, 90, 300, p))
			require.NoError(t, err)
			assert.Equal(t, ref.Solution, got.Solution, "%s P=%d", b.Name(), p)
			for i := range ref.Partitions {
				assert.Equal(t, ref.Partitions[i].BestTrial, got.Partitions[i].BestTrial)
			}
		}
	}
}

func TestSearchPartition_WorkerCountIndependent(t *testing.T) {
	inst := cluster(t, 60, 3)
	parts, err := sector.Split(inst, 360)
	require.NoError(t, err)

	var ref search.PartitionResult
	for i, w := range []int{1, 2, 5, 16} {
		o := options(auxgraph.MST{}, 360, 257, 0)
		o.TrialWorkers = w
		res, err := search.SearchPartition(context.Background(), inst, parts[0], o.Builder, o)
		require.NoError(t, err)
		assert.Equal(t, 257, res.Trials)
		assert.Equal(t, 1, res.Graphs)
		if i == 0 {
			ref = res
			continue
		}
		assert.Equal(t, ref.Best, res.Best, "workers=%d", w)
		assert.Equal(t, ref.BestTrial, res.BestTrial)
	}
}

func TestSearchPartition_BestIsMinimum(t *testing.T) {
	inst := cluster(t, 30, 5)
	parts, err := sector.Split(inst, 360)
	require.NoError(t, err)

	few := options(auxgraph.Proximity{MaxDegree: 4}, 360, 1, 0)
	many := options(auxgraph.Proximity{MaxDegree: 4}, 360, 500, 0)

	one, err := search.SearchPartition(context.Background(), inst, parts[0], few.Builder, few)
	require.NoError(t, err)
	lots, err := search.SearchPartition(context.Background(), inst, parts[0], many.Builder, many)
	require.NoError(t, err)

	assert.Equal(t, 0, one.BestTrial)
	assert.LessOrEqual(t, lots.Best.Cost, one.Best.Cost, "trial 0 is among the 500")
}

func TestSolve_FiveSymmetricCustomers(t *testing.T) {
	nodes := []instance.Node{{}}
	for k := 0; k < 5; k++ {
		a := 2 * math.Pi * float64(k) / 5
		nodes = append(nodes, instance.Node{X: 10 * math.Cos(a), Y: 10 * math.Sin(a), Demand: 2})
	}
	inst, err := instance.New(50, nodes)
	require.NoError(t, err)

	res, err := search.Solve(context.Background(), inst, options(auxgraph.Proximity{MaxDegree: 2}, 360, 50, 2))
	require.NoError(t, err)
	require.Len(t, res.Solution.Routes, 1)
	assert.Len(t, res.Solution.Routes[0], 5)
	assert.True(t, route.Feasible(inst, res.Solution.Routes, inst.Capacity()))
	assert.InDelta(t, route.Cost(inst, res.Solution.Routes[0]), res.Solution.Cost, 1e-9)
}

func TestSolve_TwoFullCustomers(t *testing.T) {
	inst, err := instance.New(7, []instance.Node{
		{},
		{X: 3, Y: 4, Demand: 7},
		{X: 6, Y: 8, Demand: 7},
	})
	require.NoError(t, err)

	res, err := search.Solve(context.Background(), inst, options(auxgraph.MST{}, 360, 20, 1))
	require.NoError(t, err)
	require.Len(t, res.Solution.Routes, 2)
	assert.InDelta(t, 2*5.0+2*10.0, res.Solution.Cost, 1e-9)
}

func TestSolve_EmptyPartitionsContributeNothing(t *testing.T) {
	// Every customer lies in the first quadrant; sectors 1..3 hold only the depot.
	inst, err := instance.New(10, []instance.Node{
		{},
		{X: 5, Y: 1, Demand: 3},
		{X: 4, Y: 3, Demand: 3},
		{X: 1, Y: 5, Demand: 3},
	})
	require.NoError(t, err)

	obs := &countingObserver{}
	o := options(auxgraph.Proximity{MaxDegree: 2}, 90, 10, 4)
	o.Observer = obs
	res, err := search.Solve(context.Background(), inst, o)
	require.NoError(t, err)

	require.Len(t, res.Partitions, 4)
	for _, p := range res.Partitions[1:] {
		assert.Empty(t, p.Best.Routes)
		assert.Zero(t, p.Best.Cost)
		assert.Equal(t, -1, p.BestTrial)
		assert.Zero(t, p.Graphs)
	}
	assert.Equal(t, res.Partitions[0].Best.Cost, res.Solution.Cost)
	assert.Equal(t, int64(1), obs.graphs.Load())
	assert.Equal(t, int64(10), obs.trials.Load())
	assert.Equal(t, int64(4), obs.partitions.Load())
}

func TestSolve_EmptyPartitionsLeaveBudgetToBusyOnes(t *testing.T) {
	inst, err := instance.New(10, []instance.Node{
		{},
		{X: 5, Y: 1, Demand: 3},
		{X: 4, Y: 3, Demand: 3},
		{X: 1, Y: 5, Demand: 3},
	})
	require.NoError(t, err)

	res, err := search.Solve(context.Background(), inst, options(auxgraph.MST{}, 45, 20, 8))
	require.NoError(t, err)

	require.Len(t, res.Partitions, 8)
	assert.Equal(t, 2, res.Partitions[0].Customers)
	assert.Equal(t, 1, res.Partitions[1].Customers)
	// Two busy sectors out of eight: four trial workers each, not one.
	assert.Equal(t, 4, res.Partitions[0].Workers)
	assert.Equal(t, 4, res.Partitions[1].Workers)
	for _, p := range res.Partitions[2:] {
		assert.Zero(t, p.Workers)
	}
}

func TestSolve_DepotOnlyInstance(t *testing.T) {
	inst, err := instance.New(1, []instance.Node{{}})
	require.NoError(t, err)

	res, err := search.Solve(context.Background(), inst, options(auxgraph.MST{}, 45, 5, 2))
	require.NoError(t, err)
	assert.Empty(t, res.Solution.Routes)
	assert.Zero(t, res.Solution.Cost)
}

func TestSolve_RestartsCountGraphs(t *testing.T) {
	inst := cluster(t, 40, 2)
	obs := &countingObserver{}
	o := options(auxgraph.MSTRestart{Rounds: 4}, 360, 25, 2)
	o.Observer = obs

	res, err := search.Solve(context.Background(), inst, o)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Partitions[0].Graphs)
	assert.Equal(t, 100, res.Partitions[0].Trials)
	assert.Equal(t, int64(4), obs.graphs.Load())
	assert.Equal(t, int64(100), obs.trials.Load())
}

func TestSolve_Errors(t *testing.T) {
	inst := cluster(t, 10, 1)

	o := options(nil, 90, 10, 1)
	_, err := search.Solve(context.Background(), inst, o)
	assert.ErrorIs(t, err, search.ErrNilBuilder)

	o = options(auxgraph.MST{}, 90, 0, 1)
	_, err = search.Solve(context.Background(), inst, o)
	assert.ErrorIs(t, err, search.ErrInvalidTrials)

	o = options(auxgraph.MST{}, 0, 10, 1)
	_, err = search.Solve(context.Background(), inst, o)
	assert.ErrorIs(t, err, sector.ErrInvalidWidth)

	o = options(auxgraph.Proximity{MaxDegree: -1}, 90, 10, 1)
	_, err = search.Solve(context.Background(), inst, o)
	assert.ErrorIs(t, err, auxgraph.ErrInvalidDegree)
}

func TestSolve_Cancelled(t *testing.T) {
	inst := cluster(t, 50, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Solve(ctx, inst, options(auxgraph.MST{}, 360, 1000, 2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPartitioning(t *testing.T) {
	o := search.DefaultOptions()
	o.Parallelism = 8

	outer, inner := search.Partitioning(o, 3)
	assert.Equal(t, 3, outer)
	assert.Equal(t, 2, inner)
	assert.LessOrEqual(t, outer*inner, 8)

	outer, inner = search.Partitioning(o, 20)
	assert.Equal(t, 8, outer)
	assert.Equal(t, 1, inner)

	outer, inner = search.Partitioning(o, 0)
	assert.Equal(t, 1, outer)
	assert.Equal(t, 8, inner)
}
