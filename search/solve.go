package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/route"
	"github.com/katalvlaran/cvrp/sector"
)

// Solve partitions inst, searches every partition and assembles the
// global solution.
//
// Steps:
//  1. Validate options and split inst into sectors.
//  2. outer = min(P, non-empty partitions) partition searches run at
//     once, each with inner = max(1, P/outer) trial workers.
//  3. Results land in per-partition slots; after the barrier the routes
//     are concatenated in partition order and the costs summed.
//  4. The total is recomputed from the routes and compared against the
//     tracked sum within CostTolerance.
//
// The first failing partition cancels the rest; its error is returned and
// no partial result is.
func Solve(ctx context.Context, inst *instance.Instance, opts Options) (Result, error) {
	start := time.Now()
	log := logger(opts)

	if opts.Builder == nil {
		return Result{}, ErrNilBuilder
	}
	if opts.Trials <= 0 {
		return Result{}, fmt.Errorf("%d: %w", opts.Trials, ErrInvalidTrials)
	}
	parts, err := sector.Split(inst, opts.Width)
	if err != nil {
		return Result{}, err
	}

	// Empty sectors return at once; only busy ones share the budget.
	busy := 0
	for _, p := range parts {
		if p.Customers() > 0 {
			busy++
		}
	}
	outer, inner := Partitioning(opts, busy)
	popts := opts
	popts.TrialWorkers = inner

	log.Info("search started",
		slog.String("instance", inst.Name()),
		slog.Int("nodes", inst.Size()),
		slog.Int("partitions", len(parts)),
		slog.Int("busy", busy),
		slog.String("strategy", opts.Builder.Name()),
		slog.Int("trials", opts.Trials),
		slog.Int("outer", outer),
		slog.Int("inner", inner),
	)

	slots := make([]PartitionResult, len(parts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(outer)
	for i := range parts {
		g.Go(func() error {
			res, err := SearchPartition(gctx, inst, parts[i], opts.Builder, popts)
			if err != nil {
				return fmt.Errorf("partition %d: %w", i, err)
			}
			slots[i] = res
			if opts.Observer != nil {
				opts.Observer.PartitionDone(res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	out := Result{Partitions: slots}
	for _, res := range slots {
		out.Solution.Routes = append(out.Solution.Routes, res.Best.Routes...)
		out.Solution.Cost += res.Best.Cost
	}

	recomputed := route.TotalCost(inst, out.Solution.Routes)
	if math.Abs(recomputed-out.Solution.Cost) > CostTolerance {
		return Result{}, fmt.Errorf("tracked %.6f, recomputed %.6f: %w", out.Solution.Cost, recomputed, ErrCostMismatch)
	}
	out.Elapsed = time.Since(start)

	log.Info("search finished",
		slog.String("instance", inst.Name()),
		slog.Int("routes", len(out.Solution.Routes)),
		slog.Float64("cost", out.Solution.Cost),
		slog.Duration("elapsed", out.Elapsed),
	)
	return out, nil
}

// Partitioning returns the outer and inner worker counts Solve uses for
// the given number of non-empty partitions.
func Partitioning(opts Options, partitions int) (outer, inner int) {
	p := parallelism(opts)
	outer = p
	if outer > partitions {
		outer = partitions
	}
	if outer < 1 {
		outer = 1
	}
	inner = p / outer
	if inner < 1 {
		inner = 1
	}
	return outer, inner
}
