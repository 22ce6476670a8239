package refine

import (
	"fmt"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/route"
	"github.com/katalvlaran/cvrp/tsp"
)

// Improve returns a refined copy of routes. The input is not modified.
func Improve(inst *instance.Instance, routes []route.Route, opts Options) ([]route.Route, Stats, error) {
	if opts.MaxPasses < 0 {
		return nil, Stats{}, fmt.Errorf("%d: %w", opts.MaxPasses, ErrInvalidPasses)
	}
	st := Stats{Before: route.TotalCost(inst, routes)}

	work := make([]route.Route, len(routes))
	for i, r := range routes {
		work[i] = append(route.Route(nil), r...)
	}

	if err := twoOptAll(inst, work, opts.Eps); err != nil {
		return nil, Stats{}, err
	}

	for st.Passes < opts.MaxPasses {
		st.Passes++
		moved := relocatePass(inst, work, opts.Eps)
		st.Relocated += moved
		if moved == 0 {
			break
		}
	}

	if err := twoOptAll(inst, work, opts.Eps); err != nil {
		return nil, Stats{}, err
	}

	out := work[:0]
	for _, r := range work {
		if len(r) > 0 {
			out = append(out, r)
		}
	}
	st.After = route.TotalCost(inst, out)
	return out, st, nil
}

// twoOptAll replaces each route with its 2-opt local optimum. A reversal
// changes the order route.Load sums in, so a tour whose in-order load
// would tip over capacity is discarded and the route kept as it was.
func twoOptAll(inst *instance.Instance, routes []route.Route, eps float64) error {
	opts := tsp.DefaultOptions()
	opts.Depot = instance.Depot
	opts.Eps = eps
	capacity := inst.Capacity()
	for i, r := range routes {
		stops, _, err := tsp.TwoOpt(inst, r, opts)
		if err != nil {
			return fmt.Errorf("refine: route %d: %w", i, err)
		}
		if route.Load(inst, stops) > capacity && route.Load(inst, r) <= capacity {
			continue
		}
		routes[i] = stops
	}
	return nil
}

// relocatePass tries to move every customer once and returns the number
// of moves made. For each customer the best insertion over all other
// routes is taken if it gains more than eps and the receiving route,
// summed in its new order, stays within capacity.
func relocatePass(inst *instance.Instance, routes []route.Route, eps float64) int {
	capacity := inst.Capacity()
	moved := 0

	for ri := range routes {
		for pi := 0; pi < len(routes[ri]); {
			r := routes[ri]
			v := r[pi]
			prev, next := neighbours(r, pi)
			gain := inst.Dist(prev, v) + inst.Dist(v, next) - inst.Dist(prev, next)

			bestDelta, bestRoute, bestPos := -eps, -1, -1
			for rj := range routes {
				if rj == ri {
					continue
				}
				t := routes[rj]
				for q := 0; q <= len(t); q++ {
					a, b := gap(t, q)
					delta := inst.Dist(a, v) + inst.Dist(v, b) - inst.Dist(a, b) - gain
					if delta < bestDelta && loadWith(inst, t, q, v) <= capacity {
						bestDelta, bestRoute, bestPos = delta, rj, q
					}
				}
			}

			if bestRoute < 0 {
				pi++
				continue
			}
			routes[ri] = append(r[:pi:pi], r[pi+1:]...)
			routes[bestRoute] = insert(routes[bestRoute], bestPos, v)
			moved++
			// pi now holds the next customer of ri.
		}
	}
	return moved
}

// neighbours returns the nodes before and after position i of r, using
// the depot at both ends.
func neighbours(r route.Route, i int) (int, int) {
	prev, next := instance.Depot, instance.Depot
	if i > 0 {
		prev = r[i-1]
	}
	if i < len(r)-1 {
		next = r[i+1]
	}
	return prev, next
}

// gap returns the two nodes an insertion at position q of r sits between.
func gap(r route.Route, q int) (int, int) {
	a, b := instance.Depot, instance.Depot
	if q > 0 {
		a = r[q-1]
	}
	if q < len(r) {
		b = r[q]
	}
	return a, b
}

// loadWith returns route.Load of r with v inserted at position q, summed
// in the same order.
func loadWith(inst *instance.Instance, r route.Route, q, v int) float64 {
	var sum float64
	for i := 0; i <= len(r); i++ {
		if i == q {
			sum += inst.Demand(v)
		}
		if i < len(r) {
			sum += inst.Demand(r[i])
		}
	}
	return sum
}

// insert places v at position q of r.
func insert(r route.Route, q int, v int) route.Route {
	r = append(r, 0)
	copy(r[q+1:], r[q:])
	r[q] = v
	return r
}
