// Package instance holds the read-only CVRP instance model shared by every
// stage of the solver: the depot, the customers with their demands and
// planar coordinates, the vehicle capacity, and the Euclidean distance
// function.
//
// Node 0 is always the depot. Loaders that read files where the depot has
// another identifier move it to index 0 and keep the remaining customers in
// file order; Node.ID preserves the identifier found in the file.
//
// Distances:
//
//   - Dist(i, j) is the exact (unrounded) Euclidean distance.
//   - For instances with at most MatrixLimit nodes the full n×n matrix is
//     precomputed at construction; larger instances evaluate on demand.
//     Both paths call the same function, so they are numerically identical.
//
// Concurrency:
//
//   - An *Instance is immutable after New returns and is safe for concurrent
//     reads from any number of goroutines without locking.
//
// Loading:
//
//   - Parse / Load read the TSPLIB CVRP format (CVRPLIB "X", "A", "P", …
//     families): NAME, TYPE, DIMENSION, EDGE_WEIGHT_TYPE, CAPACITY,
//     NODE_COORD_SECTION, DEMAND_SECTION, DEPOT_SECTION, EOF.
package instance
