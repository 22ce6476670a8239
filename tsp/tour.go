package tsp

import "fmt"

// Close returns depot, stops..., depot.
func Close(depot int, stops []int) []int {
	t := make([]int, len(stops)+2)
	t[0] = depot
	copy(t[1:], stops)
	t[len(t)-1] = depot
	return t
}

// validateStops rejects repeated nodes and the depot among the stops.
func validateStops(depot int, stops []int) error {
	seen := make(map[int]struct{}, len(stops))
	for _, v := range stops {
		if v == depot {
			return fmt.Errorf("depot %d among stops: %w", depot, ErrInvalidTour)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("node %d repeated: %w", v, ErrInvalidTour)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// reverse flips tour[i..k] in place.
//
// Complexity: O(k−i) time, O(1) space.
func reverse(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
