// Package route defines routes and solutions and checks them against an
// instance.
//
// A Route lists the customers a vehicle serves, in order, by global node
// id; the depot is implicit at both ends and never appears inside. A
// Solution is a set of routes with its total cost.
//
// Verify is the single authority on feasibility: every customer served
// exactly once, no depot inside a route, no route over capacity.
package route
