// Package cvrp is a randomized multi-start construction engine for the
// Capacitated Vehicle Routing Problem.
//
// An instance (instance) is split into angular sectors around the depot
// (sector). Each sector gets a sparse auxiliary graph (auxgraph): a
// degree-bounded proximity graph, a minimum spanning tree (mst), or a
// series of randomly rooted spanning trees. A stack-based randomized
// traversal of that graph (construct) yields one feasible set of routes
// per trial; search runs many trials per graph in parallel with
// deterministic per-trial seeds and keeps the cheapest. The per-sector
// winners are concatenated into the final solution, optionally polished
// by 2-opt (tsp) and inter-route relocation (refine), then checked by
// route.Verify.
//
// Quick start:
//
//	inst, _ := instance.Load("X-n101-k25.vrp")
//	res, _ := search.Solve(ctx, inst, search.DefaultOptions())
//	routes, _, _ := refine.Improve(inst, res.Solution.Routes, refine.DefaultOptions())
//
// The cvrp command under cmd/cvrp wires the same pipeline with YAML
// configuration (config), Prometheus metrics (metrics), and run reports
// with an optional SQLite ledger (report).
package cvrp
