package auxgraph

import (
	"container/heap"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/sector"
)

// Proximity is the bounded-degree nearest-neighbour strategy.
type Proximity struct {
	// MaxDegree is D, the out-degree bound of every customer.
	MaxDegree int

	// WedgeDeg is θ in degrees. When positive, customers whose bearing is
	// within ±θ of u's own bearing are not candidates for u.
	WedgeDeg float64
}

// Name implements Builder.
func (p Proximity) Name() string { return StrategyProximity }

// Validate checks D and θ.
func (p Proximity) Validate() error {
	if p.MaxDegree <= 0 {
		return fmt.Errorf("%d: %w", p.MaxDegree, ErrInvalidDegree)
	}
	if !(p.WedgeDeg >= 0 && p.WedgeDeg < 180) {
		return fmt.Errorf("%g: %w", p.WedgeDeg, ErrInvalidWedge)
	}
	return nil
}

// Build implements Builder.
//
// Steps:
//  1. The depot gets an edge to every customer, in local order.
//  2. For each customer u, scan the other customers in local order, drop
//     those inside u's wedge, and keep the D nearest in a bounded max-heap.
//     A candidate replaces the current maximum only when strictly closer.
//  3. Emit u's kept edges sorted by (weight, local index).
//
// Complexity: O(m² log D) time for m local vertices, O(m·D) memory.
func (p Proximity) Build(inst *instance.Instance, part sector.Partition, _ *rand.Rand) (*Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m := part.Size()
	if m <= 1 {
		return empty(m), nil
	}

	var bearing []float64
	if p.WedgeDeg > 0 {
		bearing = make([]float64, m)
		for l := 1; l < m; l++ {
			bearing[l] = inst.Bearing(part.Global(l))
		}
	}

	lists := make([][]Edge, m)
	fan := make([]Edge, 0, m-1)
	for v := 1; v < m; v++ {
		fan = append(fan, Edge{To: int32(v), Weight: inst.Dist(instance.Depot, part.Global(v))})
	}
	lists[0] = fan

	h := &nearest{}
	for u := 1; u < m; u++ {
		gu := part.Global(u)
		h.items = h.items[:0]
		for v := 1; v < m; v++ {
			if v == u {
				continue
			}
			if bearing != nil && angularGap(bearing[u], bearing[v]) <= p.WedgeDeg {
				continue
			}
			d := inst.Dist(gu, part.Global(v))
			if h.Len() < p.MaxDegree {
				heap.Push(h, Edge{To: int32(v), Weight: d})
			} else if d < h.items[0].Weight {
				h.items[0] = Edge{To: int32(v), Weight: d}
				heap.Fix(h, 0)
			}
		}

		kept := make([]Edge, len(h.items))
		copy(kept, h.items)
		sort.Slice(kept, func(i, j int) bool {
			if kept[i].Weight != kept[j].Weight {
				return kept[i].Weight < kept[j].Weight
			}
			return kept[i].To < kept[j].To
		})
		lists[u] = kept
	}

	return fromLists(lists), nil
}

// angularGap returns the smaller angle between two bearings, in [0, 180].
func angularGap(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// nearest is a max-heap of candidate edges. Among equal weights the later
// encountered (higher local index) is the maximum, so it is evicted first
// and the earlier candidate stays.
type nearest struct{ items []Edge }

func (h *nearest) Len() int { return len(h.items) }

func (h *nearest) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	return a.To > b.To
}

func (h *nearest) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *nearest) Push(x any) { h.items = append(h.items, x.(Edge)) }

func (h *nearest) Pop() any {
	last := len(h.items) - 1
	e := h.items[last]
	h.items = h.items[:last]
	return e
}
