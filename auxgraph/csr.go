package auxgraph

// empty returns a graph of n vertices and no edges.
func empty(n int) *Graph {
	return &Graph{Offsets: make([]int32, n+1)}
}

// fromLists packs per-vertex edge lists into CSR form.
func fromLists(lists [][]Edge) *Graph {
	g := &Graph{Offsets: make([]int32, len(lists)+1)}
	total := 0
	for u, l := range lists {
		total += len(l)
		g.Offsets[u+1] = int32(total)
	}
	g.Edges = make([]Edge, 0, total)
	for _, l := range lists {
		g.Edges = append(g.Edges, l...)
	}
	return g
}
