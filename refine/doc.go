// Package refine improves an assembled CVRP solution with local search
// while keeping it feasible.
//
// Improve runs, in order:
//
//  1. 2-opt on every route (package tsp).
//  2. Relocate passes: each customer is moved to the cheapest feasible
//     position in another route when that lowers the total cost. A pass
//     visits every customer once; passes repeat until one makes no move
//     or MaxPasses is reached.
//  3. A final 2-opt polish of every route.
//  4. Routes left empty are dropped.
//
// Every accepted move lowers the cost by more than Eps and respects
// capacity, so the result is never worse than the input and serves the
// same customers.
package refine
