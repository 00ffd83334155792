package lattice

import "errors"

var (
	// ErrConflictingPruneModes is returned by New when both PruneNBest and
	// PruneThreshold are configured above zero: extension only supports one
	// active pruning discipline at a time.
	ErrConflictingPruneModes = errors.New("lattice: prune_nbest and prune_threshold cannot both be configured")
	// ErrNegativeMaxOverlap is returned by New for a negative MaxOverlap.
	ErrNegativeMaxOverlap = errors.New("lattice: max_overlap must be non-negative")
	// ErrUnknownSemiring is returned by New for a cost.Semiring value this
	// package does not know how to back a wfst.Builder with.
	ErrUnknownSemiring = errors.New("lattice: unknown semiring")
	// ErrMissingStartState indicates column 0 lost its start State, which
	// can only happen from a caller bug (nothing in this package removes
	// it) — AddInputFallback returns it as a fatal error.
	ErrMissingStartState = errors.New("lattice: column 0 has no start state")
)
