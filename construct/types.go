package construct

import "errors"

var (
	// ErrIncompleteCoverage indicates a walk that left customers unvisited.
	ErrIncompleteCoverage = errors.New("construct: walk did not cover the partition")

	// ErrGraphMismatch indicates a graph whose vertex count differs from
	// the partition size.
	ErrGraphMismatch = errors.New("construct: graph does not match partition")

	// ErrNilRNG indicates Trial or Run called without a generator.
	ErrNilRNG = errors.New("construct: nil rng")
)

// frame is one level of the explicit DFS stack. next indexes the arena
// and runs up to the end of node's slot.
type frame struct {
	node int32
	next int32
}
