package auxgraph

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/mst"
	"github.com/katalvlaran/cvrp/sector"
)

// MST is the minimum-spanning-tree strategy rooted at the depot.
type MST struct{}

// Name implements Builder.
func (MST) Name() string { return StrategyMST }

// Build implements Builder.
func (MST) Build(inst *instance.Instance, part sector.Partition, _ *rand.Rand) (*Graph, error) {
	return treeGraph(inst, part, 0)
}

// MSTRestart grows the spanning tree from a uniformly random root.
type MSTRestart struct {
	// Rounds is λ, the number of graphs drawn per partition.
	Rounds int
}

// Name implements Builder.
func (MSTRestart) Name() string { return StrategyMSTRestart }

// Restarts implements Restarter.
func (r MSTRestart) Restarts() int { return r.Rounds }

// Validate checks λ.
func (r MSTRestart) Validate() error {
	if r.Rounds < 1 {
		return fmt.Errorf("%d: %w", r.Rounds, ErrInvalidRestarts)
	}
	return nil
}

// Build implements Builder. It draws the root from rng.
func (r MSTRestart) Build(inst *instance.Instance, part sector.Partition, rng *rand.Rand) (*Graph, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRNG
	}
	return treeGraph(inst, part, rng.IntN(part.Size()))
}

// treeGraph runs Prim over the partition from root and stores the tree
// with both directions of every edge. Each vertex lists its edges in the
// order they joined the tree.
func treeGraph(inst *instance.Instance, part sector.Partition, root int) (*Graph, error) {
	m := part.Size()
	if m <= 1 {
		return empty(m), nil
	}

	t, err := mst.Prim(m, root, func(u, v int) float64 {
		return inst.Dist(part.Global(u), part.Global(v))
	})
	if err != nil {
		return nil, fmt.Errorf("auxgraph: partition %d: %w", part.Index, err)
	}

	lists := make([][]Edge, m)
	for _, v := range t.Order[1:] {
		u := t.Parent[v]
		w := inst.Dist(part.Global(u), part.Global(v))
		lists[u] = append(lists[u], Edge{To: int32(v), Weight: w})
		lists[v] = append(lists[v], Edge{To: int32(u), Weight: w})
	}
	return fromLists(lists), nil
}
