package mst

import (
	"container/heap"
	"fmt"
	"math"
)

// Prim grows a minimum spanning tree over nodes [0, n) from root.
//
// Steps:
//  1. Validate n and root.
//  2. Seed the frontier with every non-root node keyed by w(root, v).
//  3. Pop the cheapest frontier node, attach it to its parent, and relax
//     every node still in the frontier through it (strictly cheaper only).
//  4. Stop when the frontier is empty or its cheapest key is +Inf.
//  5. Completed() < n → ErrDisconnected (the partial tree is returned too).
//
// Complexity: O(n² log n) time, O(n) memory.
func Prim(n, root int, w WeightFunc) (Tree, error) {
	// 1. Validate input.
	if n <= 0 {
		return Tree{}, ErrEmptyGraph
	}
	if root < 0 || root >= n {
		return Tree{}, fmt.Errorf("root %d, n %d: %w", root, n, ErrRootOutOfRange)
	}

	// 2. Root is placed; every other node waits in the frontier, keyed by
	//    its direct weight to root.
	t := Tree{
		Root:   root,
		Parent: make([]int, n),
		Order:  make([]int, 0, n),
	}
	for i := range t.Parent {
		t.Parent[i] = NoParent
	}
	t.Order = append(t.Order, root)

	f := newFrontier(n)
	for v := 0; v < n; v++ {
		if v == root {
			continue
		}
		f.key[v] = w(root, v)
		t.Parent[v] = root
		heap.Push(f, v)
	}

	// 3. Grow the tree one cheapest frontier node at a time.
	for f.Len() > 0 {
		u := f.nodes[0]

		// 4. Only +Inf keys remain: the rest is unreachable.
		if math.IsInf(f.key[u], 1) {
			break
		}

		// 3a. Attach u through the parent recorded at its last decrease.
		heap.Pop(f)
		t.Order = append(t.Order, u)
		t.Weight += f.key[u]

		// 3b. Relax in id order; decrease reshuffles f.nodes underneath us.
		for v := 0; v < n; v++ {
			if f.pos[v] < 0 {
				continue
			}
			if d := w(u, v); d < f.key[v] {
				f.key[v] = d
				t.Parent[v] = u
				f.decrease(v)
			}
		}
	}

	// 5. Nodes left in the frontier were never attached.
	if t.Completed() != n {
		for _, v := range f.nodes {
			t.Parent[v] = NoParent
		}
		return t, fmt.Errorf("spanned %d of %d: %w", t.Completed(), n, ErrDisconnected)
	}
	return t, nil
}

// frontier is an indexed min-heap of node ids keyed by key[node].
// pos[node] is the node's slot in nodes, or -1 once popped.
type frontier struct {
	nodes []int
	pos   []int
	key   []float64
}

func newFrontier(n int) *frontier {
	f := &frontier{
		nodes: make([]int, 0, n),
		pos:   make([]int, n),
		key:   make([]float64, n),
	}
	for i := range f.pos {
		f.pos[i] = -1
	}
	return f
}

// decrease restores heap order after key[v] was lowered.
func (f *frontier) decrease(v int) { heap.Fix(f, f.pos[v]) }

func (f *frontier) Len() int { return len(f.nodes) }

// Less orders by key, then by node id so equal keys pop deterministically.
func (f *frontier) Less(i, j int) bool {
	a, b := f.nodes[i], f.nodes[j]
	if f.key[a] != f.key[b] {
		return f.key[a] < f.key[b]
	}
	return a < b
}

func (f *frontier) Swap(i, j int) {
	f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i]
	f.pos[f.nodes[i]] = i
	f.pos[f.nodes[j]] = j
}

func (f *frontier) Push(x any) {
	v := x.(int)
	f.pos[v] = len(f.nodes)
	f.nodes = append(f.nodes, v)
}

func (f *frontier) Pop() any {
	last := len(f.nodes) - 1
	v := f.nodes[last]
	f.nodes = f.nodes[:last]
	f.pos[v] = -1
	return v
}
