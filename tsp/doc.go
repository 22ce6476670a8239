// Package tsp improves the visiting order of a single depot-anchored tour.
//
// A vehicle route is a travelling-salesman tour through the depot and its
// customers. TwoOpt runs deterministic first-improvement 2-opt on that
// closed tour: for cut positions 1 ≤ i < k ≤ n−1 of T it evaluates
//
//	Δ = d(T[i−1], T[k]) + d(T[i], T[k+1]) − d(T[i−1], T[i]) − d(T[k], T[k+1])
//
// and reverses T[i..k] whenever Δ < −Eps, restarting the scan after each
// accepted move. The depot stays at both ends throughout.
//
// Distances come from any Distancer, so an *instance.Instance is used
// directly without building a sub-matrix.
//
// Costs returned by this package are rounded to 1e-9 so repeated runs
// compare equal across platforms.
//
// Complexity: O(n²) per scan, O(iter·n²) overall, O(n) memory.
package tsp
