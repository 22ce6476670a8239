package auxgraph

import (
	"errors"
	"math/rand/v2"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/sector"
)

var (
	// ErrInvalidDegree indicates a proximity degree bound D ≤ 0.
	ErrInvalidDegree = errors.New("auxgraph: max degree must be positive")

	// ErrInvalidWedge indicates a wedge half-angle outside [0, 180).
	ErrInvalidWedge = errors.New("auxgraph: wedge must be in [0, 180)")

	// ErrInvalidRestarts indicates MSTRestart with fewer than one restart.
	ErrInvalidRestarts = errors.New("auxgraph: restarts must be at least 1")

	// ErrUnknownStrategy indicates a strategy name New does not recognise.
	ErrUnknownStrategy = errors.New("auxgraph: unknown strategy")

	// ErrNilRNG indicates a randomized strategy called without a generator.
	ErrNilRNG = errors.New("auxgraph: randomized strategy needs an rng")
)

// Strategy names accepted by New and reported by Builder.Name.
const (
	StrategyProximity  = "proximity"
	StrategyMST        = "mst"
	StrategyMSTRestart = "mst-restart"
)

// Defaults taken from the tuned runs of each strategy.
const (
	DefaultMaxDegree = 12
	DefaultRestarts  = 12
)

// Builder builds the auxiliary graph of one partition.
//
// Build must not retain rng; deterministic strategies ignore it.
// Implementations are stateless values and safe for concurrent use.
type Builder interface {
	Name() string
	Build(inst *instance.Instance, part sector.Partition, rng *rand.Rand) (*Graph, error)
}

// Restarter is implemented by builders whose graph depends on the rng.
// Restarts reports how many independent graphs to draw per partition.
type Restarter interface {
	Restarts() int
}

// Edge is a directed edge to a local vertex.
type Edge struct {
	To     int32
	Weight float64
}

// Graph is a CSR adjacency structure: the out-edges of u are
// Edges[Offsets[u]:Offsets[u+1]].
type Graph struct {
	Offsets []int32
	Edges   []Edge
}

// Nodes returns the vertex count.
func (g *Graph) Nodes() int { return len(g.Offsets) - 1 }

// Neighbors returns u's out-edges. The slice aliases the graph; callers
// must not modify it.
func (g *Graph) Neighbors(u int) []Edge { return g.Edges[g.Offsets[u]:g.Offsets[u+1]] }

// Degree returns u's out-degree.
func (g *Graph) Degree(u int) int { return int(g.Offsets[u+1] - g.Offsets[u]) }

// MaxDegree returns the largest out-degree.
func (g *Graph) MaxDegree() int {
	best := 0
	for u := 0; u < g.Nodes(); u++ {
		if d := g.Degree(u); d > best {
			best = d
		}
	}
	return best
}
