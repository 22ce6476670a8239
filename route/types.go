package route

import "errors"

var (
	// ErrCapacityExceeded indicates a route whose load is above capacity.
	ErrCapacityExceeded = errors.New("route: capacity exceeded")

	// ErrDuplicateNode indicates a customer served more than once.
	ErrDuplicateNode = errors.New("route: node visited more than once")

	// ErrMissingNode indicates a customer served by no route.
	ErrMissingNode = errors.New("route: node not visited")

	// ErrDepotInRoute indicates the depot listed inside a route.
	ErrDepotInRoute = errors.New("route: depot inside route")

	// ErrNodeOutOfRange indicates a node id outside the instance.
	ErrNodeOutOfRange = errors.New("route: node out of range")
)

// Route is an ordered list of customer ids. The depot is implicit at both
// ends.
type Route []int

// Solution is a set of routes and its total cost.
type Solution struct {
	Routes []Route
	Cost   float64
}

// Customers returns the number of customers served by s.
func (s Solution) Customers() int {
	n := 0
	for _, r := range s.Routes {
		n += len(r)
	}
	return n
}

// Clone returns a deep copy of s.
func (s Solution) Clone() Solution {
	out := Solution{Routes: make([]Route, len(s.Routes)), Cost: s.Cost}
	for i, r := range s.Routes {
		out.Routes[i] = append(Route(nil), r...)
	}
	return out
}
