package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvrp/auxgraph"
	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/metrics"
	"github.com/katalvlaran/cvrp/route"
	"github.com/katalvlaran/cvrp/search"
)

func TestObserver(t *testing.T) {
	m := metrics.New()
	m.GraphBuilt(auxgraph.StrategyMST)
	m.GraphBuilt(auxgraph.StrategyMST)
	m.TrialsDone(40)
	m.TrialsDone(2)
	m.PartitionDone(search.PartitionResult{Index: 3, Best: route.Solution{Cost: 12.5}, Elapsed: time.Millisecond})
	m.RecordSolution(metrics.StatusValid)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GraphBuilds.WithLabelValues(auxgraph.StrategyMST)))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.Trials))
	assert.Equal(t, 12.5, testutil.ToFloat64(m.PartitionBest.WithLabelValues("3")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solutions.WithLabelValues(metrics.StatusValid)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.PartitionTime))
}

func TestObserver_WiredIntoSolve(t *testing.T) {
	inst, err := instance.New(10, []instance.Node{
		{},
		{X: 1, Y: 1, Demand: 3},
		{X: -1, Y: 1, Demand: 3},
		{X: -1, Y: -1, Demand: 3},
	})
	require.NoError(t, err)

	m := metrics.New()
	opts := search.DefaultOptions()
	opts.Width = 90
	opts.Builder = auxgraph.MST{}
	opts.Trials = 30
	opts.Parallelism = 2
	opts.Observer = m

	_, err = search.Solve(context.Background(), inst, opts)
	require.NoError(t, err)

	assert.Equal(t, 90.0, testutil.ToFloat64(m.Trials))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.GraphBuilds.WithLabelValues(auxgraph.StrategyMST)))
	assert.Equal(t, 4, testutil.CollectAndCount(m.PartitionBest))
}

func TestWriteTextfile(t *testing.T) {
	m := metrics.New()
	m.TrialsDone(7)

	path := filepath.Join(t.TempDir(), "cvrp.prom")
	require.NoError(t, m.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "cvrp_trials_total 7"))
}
