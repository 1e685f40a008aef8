package arbor

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrCapacityExceeded indicates an attempt to allocate a node id at or
	// beyond the configured capacity (the VEB universe size). The failed
	// call has no effect; rebuilding with a larger capacity recovers.
	ErrCapacityExceeded = errors.New("arbor: node capacity exceeded")

	// ErrBadCapacity indicates WithCapacity received a value below 1.
	// Surfaced as a panic from the option constructor.
	ErrBadCapacity = errors.New("arbor: capacity must be at least 1")
)

// DefaultCapacity is the node capacity (and VEB universe size) used when
// WithCapacity is not supplied.
const DefaultCapacity = 128

// Options configures a new Arbor.
//
// Capacity — fixed node capacity U; ids live in [0, U) and the owned
// index spans the same universe. Must be ≥ 1.
type Options struct {
	Capacity int
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithCapacity sets the fixed node capacity (VEB universe size).
// Must pass a value ≥ 1; smaller values panic with ErrBadCapacity,
// per the option-constructor convention.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the Options used by New before overrides:
// Capacity = DefaultCapacity.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity}
}
