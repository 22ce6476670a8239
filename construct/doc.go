// Package construct builds one randomized route set for a partition by
// walking its auxiliary graph depth-first from the depot.
//
// Algorithm:
//
//   - The walk uses an explicit stack of (node, next) frames, never
//     recursion, so partition size is not limited by goroutine stack depth.
//   - When a node is pushed, the targets of its out-edges are copied into
//     that node's slot of a per-constructor arena and shuffled with the
//     trial's rng. This shuffle is the only randomness a trial consumes;
//     the graph itself is never touched.
//   - The first unvisited target of the top frame is taken next. If its
//     demand fits the residual capacity it extends the current route;
//     otherwise the route is closed (return leg included in the cost) and
//     a new route starts with that node.
//   - A node is marked visited when first reached and never considered
//     again in the same trial.
//
// Every customer must be reached. The builders in auxgraph guarantee
// reachability from the depot; a walk that misses a customer reports
// ErrIncompleteCoverage.
//
// A Constructor owns all of its scratch buffers (visited flags, arena,
// stack, route buffer) and reuses them across trials. It is not safe for
// concurrent use: give each worker goroutine its own.
package construct
