package sector

import "errors"

var (
	// ErrInvalidWidth indicates a sector width outside (0, 360].
	ErrInvalidWidth = errors.New("sector: width must be in (0, 360]")

	// ErrUncoveredNode indicates a customer whose bearing maps to no sector.
	ErrUncoveredNode = errors.New("sector: node not covered by any sector")
)

// boundaryEps is the snapping tolerance, in units of one sector width.
const boundaryEps = 1e-9

// Partition is one angular sector of an instance.
type Partition struct {
	// Index is the sector number in [0, k).
	Index int

	// Nodes holds global node ids; Nodes[0] is always the depot.
	Nodes []int

	local map[int]int
}

// Size returns the number of nodes including the depot.
func (p Partition) Size() int { return len(p.Nodes) }

// Customers returns the number of non-depot nodes.
func (p Partition) Customers() int { return len(p.Nodes) - 1 }

// Global maps a local index to its global node id.
func (p Partition) Global(local int) int { return p.Nodes[local] }

// Local maps a global node id to its local index. The depot maps to 0 in
// every partition; customers owned by another partition report false.
func (p Partition) Local(global int) (int, bool) {
	if global == p.Nodes[0] {
		return 0, true
	}
	l, ok := p.local[global]
	return l, ok
}
