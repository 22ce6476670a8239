package tsp

import "errors"

var (
	// ErrInvalidTour indicates a repeated node or the depot inside the tour.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrNegativeEps indicates Options.Eps < 0.
	ErrNegativeEps = errors.New("tsp: eps must be non-negative")
)

// DefaultEps is the minimum gain for an accepted move.
const DefaultEps = 1e-9

// Distancer supplies symmetric pairwise distances.
type Distancer interface {
	Dist(i, j int) float64
}

// Options configures TwoOpt.
type Options struct {
	// Depot closes the tour at both ends.
	Depot int

	// Eps is the minimum improvement for a move; Δ < −Eps is accepted.
	Eps float64

	// MaxIters caps accepted moves; 0 means run to a local optimum.
	MaxIters int
}

// DefaultOptions returns depot 0, Eps = DefaultEps and no move cap.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps}
}
