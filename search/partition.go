package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/cvrp/auxgraph"
	"github.com/katalvlaran/cvrp/construct"
	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/route"
	"github.com/katalvlaran/cvrp/sector"
)

// best is one worker's lowest-cost trial.
type best struct {
	cost  float64
	trial int
	sol   route.Solution
	err   error
}

// better reports whether b beats o: lower cost, then lower trial number.
func (b best) better(o best) bool {
	if b.cost != o.cost {
		return b.cost < o.cost
	}
	return b.trial < o.trial
}

// SearchPartition runs Trials randomized constructions on each graph that
// builder draws for part and returns the best.
//
// Steps:
//  1. Empty partition → zero routes, zero cost, no graph.
//  2. For each restart r (Restarter.Restarts, else 1): build the graph
//     from the restart's stream, then fan out to the trial workers.
//  3. Worker w runs trials t = w, w+W, … with stream k = r·Trials + t and
//     keeps a local best.
//  4. After the barrier, reduce the worker bests into the partition best.
//
// Errors from the builder or any trial abort the partition.
func SearchPartition(ctx context.Context, inst *instance.Instance, part sector.Partition, builder auxgraph.Builder, opts Options) (PartitionResult, error) {
	start := time.Now()
	res := PartitionResult{Index: part.Index, Customers: part.Customers(), BestTrial: -1}

	if builder == nil {
		return res, ErrNilBuilder
	}
	if opts.Trials <= 0 {
		return res, fmt.Errorf("%d: %w", opts.Trials, ErrInvalidTrials)
	}
	// 1. Nothing to route.
	if part.Customers() == 0 {
		res.Best = route.Solution{}
		res.Elapsed = time.Since(start)
		return res, nil
	}

	restarts := 1
	if r, ok := builder.(auxgraph.Restarter); ok {
		restarts = r.Restarts()
	}
	workers := opts.TrialWorkers
	if workers <= 0 {
		workers = parallelism(opts)
	}
	if workers > opts.Trials {
		workers = opts.Trials
	}
	res.Workers = workers

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctors := make([]*construct.Constructor, workers)
	graphRNG := newStream()
	overall := best{cost: math.Inf(1), trial: -1}

	for r := 0; r < restarts; r++ {
		// 2. Draw this restart's graph from its own stream.
		g, err := builder.Build(inst, part, graphRNG.at(opts.Seed, part.Index, graphStream|uint64(r)))
		if err != nil {
			return res, err
		}
		res.Graphs++
		if opts.Observer != nil {
			opts.Observer.GraphBuilt(builder.Name())
		}

		// 2a. One Constructor per worker, rebound to the new graph.
		for w := range ctors {
			if ctors[w] == nil {
				if ctors[w], err = construct.New(inst, part, g); err != nil {
					return res, err
				}
			} else if err = ctors[w].Use(g); err != nil {
				return res, err
			}
		}

		// 3. Fan out; worker w writes only bests[w].
		bests := make([]best, workers)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				bests[w] = runTrials(ctx, ctors[w], opts, part.Index, r, w, workers)
				if bests[w].err != nil {
					cancel()
				}
			}(w)
		}
		wg.Wait()

		// 4. Barrier passed: surface the first error, then reduce.
		for _, b := range bests {
			if b.err != nil {
				return res, b.err
			}
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		for _, b := range bests {
			if b.trial >= 0 && b.better(overall) {
				overall = b
			}
		}
		res.Trials += opts.Trials
	}

	res.Best = overall.sol
	res.BestTrial = overall.trial
	res.Elapsed = time.Since(start)

	logger(opts).Debug("partition searched",
		slog.Int("partition", part.Index),
		slog.Int("customers", res.Customers),
		slog.Int("graphs", res.Graphs),
		slog.Int("trials", res.Trials),
		slog.Int("best_trial", res.BestTrial),
		slog.Float64("cost", res.Best.Cost),
		slog.Int("routes", len(res.Best.Routes)),
		slog.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

// runTrials is the body of one trial worker for restart r.
func runTrials(ctx context.Context, c *construct.Constructor, opts Options, partition, r, w, workers int) best {
	b := best{cost: math.Inf(1), trial: -1}
	s := newStream()
	done := ctx.Done()
	n := 0

	for t := w; t < opts.Trials; t += workers {
		select {
		case <-done:
			return b
		default:
		}

		k := r*opts.Trials + t
		cost, err := c.Trial(s.at(opts.Seed, partition, uint64(k)))
		if err != nil {
			b.err = err
			return b
		}
		n++
		// Strides visit k in ascending order, so strict < keeps the lowest k.
		if cost < b.cost {
			b.cost = cost
			b.trial = k
			b.sol = c.Solution()
		}
	}

	if opts.Observer != nil {
		opts.Observer.TrialsDone(n)
	}
	return b
}

// parallelism resolves Options.Parallelism.
func parallelism(opts Options) int {
	if opts.Parallelism > 0 {
		return opts.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}

func logger(opts Options) *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return slog.New(slog.DiscardHandler)
}
