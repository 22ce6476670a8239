// Package auxgraph builds the sparse auxiliary graph that guides randomized
// route construction inside one partition.
//
// A Builder turns a partition into a Graph whose vertices are the
// partition's local indices (0 is the depot). Three strategies exist:
//
//   - Proximity: every customer keeps directed edges to its D nearest
//     fellow customers, optionally ignoring those inside a ±θ wedge around
//     its own bearing. The depot links to every customer.
//   - MST: Prim's minimum spanning tree rooted at the depot, stored with
//     both edge directions.
//   - MSTRestart: the same tree grown from a uniformly random root; the
//     search layer rebuilds it Restarts times per partition.
//
// Every strategy leaves all customers reachable from the depot. A partition
// holding only the depot yields a graph with one vertex and no edges.
//
// Graphs are stored in compressed sparse row form and never change after
// Build returns, so one graph is read concurrently by every trial worker.
package auxgraph
