package construct

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/cvrp/auxgraph"
	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/route"
	"github.com/katalvlaran/cvrp/sector"
)

// Constructor runs randomized DFS trials over one partition graph.
type Constructor struct {
	inst *instance.Instance
	part sector.Partition
	g    *auxgraph.Graph

	visited []bool
	arena   []int32 // arena[g.Offsets[u]:g.Offsets[u+1]] is u's shuffled slot
	stack   []frame

	// Last trial: customers in visit order, split at ends[i].
	flat []int
	ends []int
	cost float64
}

// New returns a Constructor for part walking g.
func New(inst *instance.Instance, part sector.Partition, g *auxgraph.Graph) (*Constructor, error) {
	c := &Constructor{
		inst:    inst,
		part:    part,
		visited: make([]bool, part.Size()),
		stack:   make([]frame, 0, part.Size()),
		flat:    make([]int, 0, part.Customers()),
	}
	if err := c.Use(g); err != nil {
		return nil, err
	}
	return c, nil
}

// Use switches to another graph of the same partition, keeping buffers.
func (c *Constructor) Use(g *auxgraph.Graph) error {
	if g == nil || g.Nodes() != c.part.Size() {
		return fmt.Errorf("partition %d: %w", c.part.Index, ErrGraphMismatch)
	}
	c.g = g
	if cap(c.arena) < len(g.Edges) {
		c.arena = make([]int32, len(g.Edges))
	}
	c.arena = c.arena[:len(g.Edges)]
	return nil
}

// Trial runs one walk and returns its cost. The routes stay in the
// Constructor until the next Trial; Solution copies them out.
//
// Steps:
//  1. Mark the depot and push it with a shuffled neighbour slot.
//  2. Take the top frame's next unvisited neighbour v; if load+demand(v)
//     exceeds capacity, return to the depot first, then append v.
//  3. A frame with no unvisited neighbour left is popped.
//  4. Close the open route.
//  5. Fewer than m-1 customers reached → ErrIncompleteCoverage.
//
// Complexity: O(m + E) time for m vertices and E edges, no allocation
// once the buffers have grown.
func (c *Constructor) Trial(rng *rand.Rand) (float64, error) {
	if rng == nil {
		return 0, ErrNilRNG
	}

	clear(c.visited)
	c.flat = c.flat[:0]
	c.ends = c.ends[:0]
	c.stack = c.stack[:0]
	c.cost = 0

	m := c.part.Size()
	if m <= 1 {
		return 0, nil
	}

	// load is summed in visit order, the same order route.Load uses, so
	// the admission test and verification agree to the last bit.
	capacity := c.inst.Capacity()
	load := 0.0
	last := instance.Depot
	covered := 0

	// 1. Seed the walk at the depot.
	c.visited[0] = true
	c.push(0, rng)

	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		end := c.g.Offsets[top.node+1]

		// 2. Advance the top frame to its next unvisited neighbour.
		advanced := false
		for top.next < end {
			v := c.arena[top.next]
			top.next++
			if c.visited[v] {
				continue
			}
			c.visited[v] = true
			covered++

			gv := c.part.Global(int(v))
			demand := c.inst.Demand(gv)

			// 2a. Close the current route when v does not fit.
			if load+demand > capacity {
				c.cost += c.inst.Dist(last, instance.Depot)
				c.ends = append(c.ends, len(c.flat))
				last = instance.Depot
				load = 0
			}

			// 2b. Append v to the open route.
			c.cost += c.inst.Dist(last, gv)
			c.flat = append(c.flat, gv)
			load += demand
			last = gv

			// 2c. Descend into v with a freshly shuffled neighbour slot.
			c.push(v, rng)
			advanced = true
			break
		}

		// 3. Exhausted frame: backtrack.
		if !advanced {
			c.stack = c.stack[:len(c.stack)-1]
		}
	}

	// 4. Close the last open route.
	if len(c.flat) > 0 {
		c.cost += c.inst.Dist(last, instance.Depot)
		c.ends = append(c.ends, len(c.flat))
	}

	// 5. Every partition customer must have been reached.
	if covered != m-1 {
		return 0, fmt.Errorf("partition %d: covered %d of %d: %w", c.part.Index, covered, m-1, ErrIncompleteCoverage)
	}
	return c.cost, nil
}

// Solution copies the routes of the last Trial out of the Constructor.
func (c *Constructor) Solution() route.Solution {
	s := route.Solution{Routes: make([]route.Route, len(c.ends)), Cost: c.cost}
	all := append([]int(nil), c.flat...)
	start := 0
	for i, end := range c.ends {
		s.Routes[i] = route.Route(all[start:end:end])
		start = end
	}
	return s
}

// Run is Trial followed by Solution.
func (c *Constructor) Run(rng *rand.Rand) (route.Solution, error) {
	if _, err := c.Trial(rng); err != nil {
		return route.Solution{}, err
	}
	return c.Solution(), nil
}

// push copies u's edge targets into its arena slot, shuffles them, and
// pushes a frame positioned at the start of the slot.
func (c *Constructor) push(u int32, rng *rand.Rand) {
	lo, hi := c.g.Offsets[u], c.g.Offsets[u+1]
	slot := c.arena[lo:hi]
	for i, e := range c.g.Edges[lo:hi] {
		slot[i] = e.To
	}
	for i := len(slot) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		slot[i], slot[j] = slot[j], slot[i]
	}
	c.stack = append(c.stack, frame{node: u, next: lo})
}
