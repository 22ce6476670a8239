package tsp

// TwoOpt improves the order of stops on the depot-closed tour and returns
// the new stop order with its closed-tour cost. stops is not modified.
//
// Routes with fewer than three stops are returned unchanged: every order
// of one or two stops has the same length.
func TwoOpt(d Distancer, stops []int, opts Options) ([]int, float64, error) {
	if opts.Eps < 0 {
		return nil, 0, ErrNegativeEps
	}
	if err := validateStops(opts.Depot, stops); err != nil {
		return nil, 0, err
	}

	cur := Close(opts.Depot, stops)
	if len(stops) < 3 {
		return cur[1 : len(cur)-1 : len(cur)-1], TourCost(d, cur), nil
	}

	n := len(cur) - 1 // closed tour has n arcs
	accepted := 0
	for {
		improved := false

		var (
			a, b, c, e int
			delta      float64
		)
	scan:
		for i := 1; i <= n-2; i++ {
			a, b = cur[i-1], cur[i]
			for k := i + 1; k <= n-1; k++ {
				c, e = cur[k], cur[k+1]
				delta = d.Dist(a, c) + d.Dist(b, e) - d.Dist(a, b) - d.Dist(c, e)
				if delta >= -opts.Eps {
					continue
				}

				reverse(cur, i, k)
				accepted++
				improved = true
				break scan
			}
		}

		if !improved || (opts.MaxIters > 0 && accepted >= opts.MaxIters) {
			break
		}
	}

	return cur[1 : len(cur)-1 : len(cur)-1], TourCost(d, cur), nil
}
