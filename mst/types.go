package mst

import "errors"

var (
	// ErrDisconnected indicates that the tree reached fewer nodes than n.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrEmptyGraph indicates n == 0.
	ErrEmptyGraph = errors.New("mst: graph has no nodes")

	// ErrRootOutOfRange indicates a root outside [0, n).
	ErrRootOutOfRange = errors.New("mst: root out of range")
)

// NoParent marks the root in Tree.Parent.
const NoParent = -1

// WeightFunc returns the weight of the undirected edge {u, v}.
type WeightFunc func(u, v int) float64

// Tree is a spanning tree rooted at Root.
type Tree struct {
	// Root is the node the tree was grown from.
	Root int

	// Parent[v] is v's parent, or NoParent for the root.
	Parent []int

	// Order lists nodes in the order they joined the tree, Root first.
	Order []int

	// Weight is the sum of the tree's edge weights.
	Weight float64
}

// Completed returns how many nodes the tree spans.
func (t Tree) Completed() int { return len(t.Order) }
