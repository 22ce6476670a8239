package route

import (
	"fmt"

	"github.com/katalvlaran/cvrp/instance"
)

// Distancer is the part of an instance the cost functions need.
type Distancer interface {
	Dist(i, j int) float64
}

// Cost returns depot→r[0] + Σ legs + r[last]→depot. An empty route costs 0.
func Cost(d Distancer, r Route) float64 {
	if len(r) == 0 {
		return 0
	}
	c := d.Dist(instance.Depot, r[0])
	for i := 1; i < len(r); i++ {
		c += d.Dist(r[i-1], r[i])
	}
	return c + d.Dist(r[len(r)-1], instance.Depot)
}

// TotalCost sums Cost over routes.
func TotalCost(d Distancer, routes []Route) float64 {
	var sum float64
	for _, r := range routes {
		sum += Cost(d, r)
	}
	return sum
}

// Load returns the total demand served by r.
func Load(inst *instance.Instance, r Route) float64 {
	var sum float64
	for _, v := range r {
		sum += inst.Demand(v)
	}
	return sum
}

// Verify checks routes against inst with the given capacity.
//
// Checks, in order: ids in range, no depot inside a route, no customer
// twice, per-route load ≤ capacity with zero tolerance, and finally that
// every customer is served. The first violation is returned.
//
// Complexity: O(n + Σ|route|).
func Verify(inst *instance.Instance, routes []Route, capacity float64) error {
	n := inst.Size()
	seen := make([]bool, n)
	served := 0

	for ri, r := range routes {
		for _, v := range r {
			if v < 0 || v >= n {
				return fmt.Errorf("route %d: node %d: %w", ri, v, ErrNodeOutOfRange)
			}
			if v == instance.Depot {
				return fmt.Errorf("route %d: %w", ri, ErrDepotInRoute)
			}
			if seen[v] {
				return fmt.Errorf("route %d: node %d: %w", ri, v, ErrDuplicateNode)
			}
			seen[v] = true
			served++
		}
		if load := Load(inst, r); load > capacity {
			return fmt.Errorf("route %d: load %g > %g: %w", ri, load, capacity, ErrCapacityExceeded)
		}
	}

	if served != n-1 {
		for v := 1; v < n; v++ {
			if !seen[v] {
				return fmt.Errorf("node %d: %w", v, ErrMissingNode)
			}
		}
	}
	return nil
}

// Feasible reports whether Verify accepts routes.
func Feasible(inst *instance.Instance, routes []Route, capacity float64) bool {
	return Verify(inst, routes, capacity) == nil
}
