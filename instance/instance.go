package instance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Instance is an immutable CVRP instance. See the package doc for the
// depot and distance conventions.
type Instance struct {
	name     string
	capacity float64
	nodes    []Node
	pts      [][]float64 // pts[i] = {x, y}; fixed-length views for floats.Distance
	matrix   []float64   // row-major n×n, nil when evaluated on demand
	n        int
}

// New validates nodes and capacity and returns a ready-to-share Instance.
// nodes[0] must be the depot. The slice is copied; later mutation by the
// caller has no effect.
//
// Errors: ErrEmptyInstance, ErrInvalidCapacity, ErrDepotDemand,
// ErrNegativeDemand, ErrDemandExceedsCapacity, ErrBadCoordinate.
//
// Complexity: O(n) without a matrix, O(n²) time and memory with one.
func New(capacity float64, nodes []Node, opts ...Option) (*Instance, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if len(nodes) == 0 {
		return nil, ErrEmptyInstance
	}
	if capacity <= 0 || math.IsInf(capacity, 0) || math.IsNaN(capacity) {
		return nil, ErrInvalidCapacity
	}
	if nodes[Depot].Demand != 0 {
		return nil, ErrDepotDemand
	}

	n := len(nodes)
	inst := &Instance{
		name:     o.Name,
		capacity: capacity,
		nodes:    make([]Node, n),
		pts:      make([][]float64, n),
		n:        n,
	}
	copy(inst.nodes, nodes)

	flat := make([]float64, 2*n)
	for i, nd := range inst.nodes {
		if !finite(nd.X) || !finite(nd.Y) {
			return nil, fmt.Errorf("node %d: %w", i, ErrBadCoordinate)
		}
		if nd.Demand < 0 || !finite(nd.Demand) {
			return nil, fmt.Errorf("node %d: %w", i, ErrNegativeDemand)
		}
		if nd.Demand > capacity {
			return nil, fmt.Errorf("node %d demand %g > capacity %g: %w", i, nd.Demand, capacity, ErrDemandExceedsCapacity)
		}
		flat[2*i], flat[2*i+1] = nd.X, nd.Y
		inst.pts[i] = flat[2*i : 2*i+2 : 2*i+2]
	}

	if o.MatrixLimit > 0 && n <= o.MatrixLimit {
		inst.matrix = make([]float64, n*n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := inst.euclid(i, j)
				inst.matrix[i*n+j] = d
				inst.matrix[j*n+i] = d
			}
		}
	}

	return inst, nil
}

// Name returns the instance label.
func (in *Instance) Name() string { return in.name }

// Size returns the number of nodes including the depot.
func (in *Instance) Size() int { return in.n }

// Capacity returns the vehicle capacity.
func (in *Instance) Capacity() float64 { return in.capacity }

// Node returns a copy of node i. It panics when i is out of range, like a
// slice index would.
func (in *Instance) Node(i int) Node { return in.nodes[i] }

// Demand returns the demand of node i.
func (in *Instance) Demand(i int) float64 { return in.nodes[i].Demand }

// Precomputed reports whether distances are served from a matrix.
func (in *Instance) Precomputed() bool { return in.matrix != nil }

// Dist returns the Euclidean distance between nodes i and j.
// Symmetric, non-negative, and zero when i == j.
func (in *Instance) Dist(i, j int) float64 {
	if in.matrix != nil {
		return in.matrix[i*in.n+j]
	}
	if i == j {
		return 0
	}
	return in.euclid(i, j)
}

// euclid orders its arguments so the on-demand path and the matrix agree
// bit for bit regardless of call direction.
func (in *Instance) euclid(i, j int) float64 {
	if j < i {
		i, j = j, i
	}
	return floats.Distance(in.pts[i], in.pts[j], 2)
}

// Bearing returns the direction from the depot to node i in degrees,
// counter-clockwise from the positive x-axis, normalised to [0, 360).
// A node co-located with the depot has bearing 0.
func (in *Instance) Bearing(i int) float64 {
	dx := in.nodes[i].X - in.nodes[Depot].X
	dy := in.nodes[i].Y - in.nodes[Depot].Y
	if dx == 0 && dy == 0 {
		return 0
	}
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// TotalDemand returns the sum of all customer demands.
func (in *Instance) TotalDemand() float64 {
	var sum float64
	for _, nd := range in.nodes {
		sum += nd.Demand
	}
	return sum
}

// MinVehicles returns the trivial lower bound ⌈TotalDemand / Capacity⌉.
func (in *Instance) MinVehicles() int {
	return int(math.Ceil(in.TotalDemand()/in.capacity - 1e-9))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
