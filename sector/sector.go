package sector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cvrp/instance"
)

// Count returns the number of sectors for width, ceil(360/width).
// A quotient within boundaryEps of an integer is treated as that integer,
// so 360/7-degree sectors give 7, not 8.
func Count(width float64) (int, error) {
	if !(width > 0 && width <= 360) {
		return 0, fmt.Errorf("%g: %w", width, ErrInvalidWidth)
	}
	return int(math.Ceil(snap(360 / width))), nil
}

// Index returns the sector of a bearing for the given width and count.
func Index(bearing, width float64, k int) (int, error) {
	idx := int(math.Ceil(snap(bearing/width))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= k {
		return 0, fmt.Errorf("bearing %g, width %g: %w", bearing, width, ErrUncoveredNode)
	}
	return idx, nil
}

// Split assigns every customer of inst to exactly one sector.
//
// Steps:
//  1. Validate width and compute k.
//  2. Compute each customer's bearing and sector index.
//  3. Append it to that sector in ascending global order.
//
// Complexity: O(n) time and memory.
func Split(inst *instance.Instance, width float64) ([]Partition, error) {
	k, err := Count(width)
	if err != nil {
		return nil, err
	}

	parts := make([]Partition, k)
	for i := range parts {
		parts[i] = Partition{
			Index: i,
			Nodes: []int{instance.Depot},
			local: make(map[int]int),
		}
	}

	for u := 1; u < inst.Size(); u++ {
		idx, err := Index(inst.Bearing(u), width, k)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", u, err)
		}
		p := &parts[idx]
		p.local[u] = len(p.Nodes)
		p.Nodes = append(p.Nodes, u)
	}

	return parts, nil
}

// snap rounds q to the nearest integer when it is within boundaryEps.
func snap(q float64) float64 {
	r := math.Round(q)
	if math.Abs(q-r) < boundaryEps {
		return r
	}
	return q
}
