package search

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/cvrp/auxgraph"
	"github.com/katalvlaran/cvrp/route"
)

var (
	// ErrCostMismatch indicates tracked and recomputed costs that disagree
	// by more than CostTolerance.
	ErrCostMismatch = errors.New("search: tracked cost does not match recomputed cost")

	// ErrInvalidTrials indicates Trials ≤ 0.
	ErrInvalidTrials = errors.New("search: trials must be positive")

	// ErrNilBuilder indicates a search without a graph builder.
	ErrNilBuilder = errors.New("search: nil graph builder")
)

// CostTolerance is the allowed absolute gap between tracked and recomputed
// costs.
const CostTolerance = 1e-3

// Defaults for Options.
const (
	DefaultWidth  = 50.0
	DefaultTrials = 10000
	DefaultSeed   = 1
)

// Observer receives coarse progress events. Calls come from many
// goroutines; implementations must be safe for concurrent use.
type Observer interface {
	// GraphBuilt is called after every auxiliary graph build.
	GraphBuilt(strategy string)

	// TrialsDone is called once per worker per graph with its trial count.
	TrialsDone(n int)

	// PartitionDone is called when a partition's search completes.
	PartitionDone(res PartitionResult)
}

// Options configures Solve and SearchPartition.
type Options struct {
	// Width is the sector width in degrees, (0, 360].
	Width float64

	// Builder selects the auxiliary graph strategy.
	Builder auxgraph.Builder

	// Trials is ρ, the number of trials per graph.
	Trials int

	// Seed roots every rng stream. Zero selects DefaultSeed.
	Seed uint64

	// Parallelism is P, the total goroutine budget. Zero or negative
	// selects runtime.GOMAXPROCS(0).
	Parallelism int

	// TrialWorkers fixes the inner worker count. Zero derives it from
	// Parallelism; Solve always derives it.
	TrialWorkers int

	// Logger receives partition-level records. Nil discards.
	Logger *slog.Logger

	// Observer receives progress events. Nil disables them.
	Observer Observer
}

// DefaultOptions returns 50° sectors, a degree-12 proximity graph and
// DefaultTrials trials per partition.
func DefaultOptions() Options {
	return Options{
		Width:   DefaultWidth,
		Builder: auxgraph.Proximity{MaxDegree: auxgraph.DefaultMaxDegree},
		Trials:  DefaultTrials,
		Seed:    DefaultSeed,
	}
}

// PartitionResult is the outcome of one partition search.
type PartitionResult struct {
	// Index is the partition index.
	Index int

	// Customers is the number of customers in the partition.
	Customers int

	// Best is the lowest-cost trial solution.
	Best route.Solution

	// BestTrial is the trial number k of Best, or -1 for an empty partition.
	BestTrial int

	// Trials is the number of trials run, Graphs the number of graphs built.
	Trials, Graphs int

	// Workers is the number of trial goroutines used, 0 when the partition
	// had no customers.
	Workers int

	// Elapsed is the wall time of the partition search.
	Elapsed time.Duration
}

// Result is the assembled outcome of Solve.
type Result struct {
	// Solution holds the routes of every partition, in partition order.
	Solution route.Solution

	// Partitions holds one entry per partition, in partition order.
	Partitions []PartitionResult

	// Elapsed is the wall time of the construction phase.
	Elapsed time.Duration
}
