package refine

import "errors"

// ErrInvalidPasses indicates a negative MaxPasses.
var ErrInvalidPasses = errors.New("refine: max passes must be non-negative")

// DefaultMaxPasses bounds the relocate phase.
const DefaultMaxPasses = 50

// Options configures Improve.
type Options struct {
	// MaxPasses caps relocate passes; 0 skips the relocate phase.
	MaxPasses int

	// Eps is the minimum gain for any accepted move.
	Eps float64
}

// DefaultOptions returns DefaultMaxPasses passes and a 1e-9 gain threshold.
func DefaultOptions() Options {
	return Options{MaxPasses: DefaultMaxPasses, Eps: 1e-9}
}

// Stats reports what Improve did.
type Stats struct {
	Passes    int
	Relocated int
	Before    float64
	After     float64
}
