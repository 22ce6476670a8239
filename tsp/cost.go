package tsp

import "math"

// roundScale is the cost stabilisation precision (1e-9).
const roundScale = 1e9

// TourCost returns the length of a closed tour.
//
// Complexity: O(n).
func TourCost(d Distancer, closed []int) float64 {
	var sum float64
	for i := 1; i < len(closed); i++ {
		sum += d.Dist(closed[i-1], closed[i])
	}
	return round1e9(sum)
}

// round1e9 rounds x to 9 decimal places.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
