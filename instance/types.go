package instance

import "errors"

var (
	// ErrEmptyInstance indicates that an instance has no nodes (not even a depot).
	ErrEmptyInstance = errors.New("instance: no nodes")

	// ErrInvalidCapacity indicates a non-positive or non-finite vehicle capacity.
	ErrInvalidCapacity = errors.New("instance: capacity must be positive and finite")

	// ErrDepotDemand indicates that the depot (node 0) carries a non-zero demand.
	ErrDepotDemand = errors.New("instance: depot demand must be zero")

	// ErrNegativeDemand indicates a customer with negative or non-finite demand.
	ErrNegativeDemand = errors.New("instance: demand must be non-negative and finite")

	// ErrDemandExceedsCapacity indicates a customer that no single vehicle can serve.
	ErrDemandExceedsCapacity = errors.New("instance: demand exceeds vehicle capacity")

	// ErrBadCoordinate indicates a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("instance: coordinate must be finite")

	// ErrNodeOutOfRange indicates an index outside [0, Size()).
	ErrNodeOutOfRange = errors.New("instance: node index out of range")

	// ErrMalformed indicates a syntactically invalid instance file.
	ErrMalformed = errors.New("instance: malformed instance file")

	// ErrUnsupportedWeightType indicates an EDGE_WEIGHT_TYPE other than EUC_2D.
	ErrUnsupportedWeightType = errors.New("instance: unsupported edge weight type")
)

// DefaultMatrixLimit is the largest instance for which the full distance
// matrix is precomputed (4096² float64 ≈ 128 MiB).
const DefaultMatrixLimit = 4096

// Depot is the index of the depot in every instance.
const Depot = 0

// Node is a single location: the depot (index 0) or a customer.
type Node struct {
	// ID is the identifier from the source file (1-based in TSPLIB files).
	ID int

	// X, Y are planar coordinates.
	X, Y float64

	// Demand is the quantity delivered to this node; zero for the depot.
	Demand float64
}

// Options configures instance construction.
type Options struct {
	// Name is a free-form label, usually the TSPLIB NAME field or file name.
	Name string

	// MatrixLimit bounds the size for which distances are precomputed.
	// Zero or negative disables precomputation entirely.
	MatrixLimit int
}

// Option mutates Options.
type Option func(*Options)

// WithName sets the instance label.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithMatrixLimit sets the precomputation threshold. A limit ≤ 0 forces
// on-demand distance evaluation.
func WithMatrixLimit(limit int) Option {
	return func(o *Options) {
		o.MatrixLimit = limit
	}
}

// DefaultOptions returns an unnamed instance configuration with
// MatrixLimit = DefaultMatrixLimit.
func DefaultOptions() Options {
	return Options{MatrixLimit: DefaultMatrixLimit}
}
