// Package search runs the randomized multi-start construction over every
// partition of an instance and assembles the global solution.
//
// Two levels of parallelism:
//
//   - Outer: partitions are searched concurrently by an errgroup limited
//     to min(P, partitions) goroutines.
//   - Inner: inside a partition, TrialWorkers goroutines split the trials
//     by stride. Each keeps its own Constructor and its own best, and the
//     bests are reduced after a WaitGroup barrier. Nothing is locked while
//     trials run.
//
// outer × inner never exceeds P (Options.Parallelism, GOMAXPROCS by
// default).
//
// Determinism:
//
// Trial k of restart r in partition p is k = r·Trials + t, and its rng is
// seeded from (Seed, p, k) alone. Graph draws for restart r use their own
// stream. The best trial is the lowest cost, ties going to the lowest k,
// so the result is bit-identical for a fixed seed whatever the worker
// count or scheduling.
//
// Verification:
//
// After assembly the total cost is recomputed from the routes; a gap above
// CostTolerance to the tracked cost is reported as ErrCostMismatch.
package search
