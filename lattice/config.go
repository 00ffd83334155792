package lattice

import (
	"fmt"

	"github.com/katalvlaran/ngramlattice/cost"
)

// Config holds the settings fixed for a Lattice's whole lifetime: every
// Extend call against it reuses the same pruning discipline and semiring.
type Config struct {
	// MaxOverlap bounds how many coverage bits a candidate rule may share
	// with a state's existing coverage for canApply to accept it.
	MaxOverlap int
	// PruneNBest, if > 0, caps both the number of States visited per
	// extend() pass and the number kept per destination column.
	PruneNBest int
	// PruneThreshold, if > 0, is the additive cost margin around a
	// column's minimum cost outside which States are skipped (during
	// iteration) or rejected (on insert). Mutually exclusive with
	// PruneNBest.
	PruneThreshold float64
	// AllowDeletion enables the epsilon deletion-arc path for applicable
	// unigram rules during extension.
	AllowDeletion bool
	// Semiring selects the wfst.Weight implementation this Lattice's
	// Builder is constructed with.
	Semiring cost.Semiring
}

// validate rejects a configuration New cannot build against: conflicting
// prune modes and a negative MaxOverlap. A negative PruneThreshold is
// rejected at the driver's flag-parsing layer instead of here, since it is
// a CLI input-shape concern rather than a cross-field conflict within this
// package's own configuration (see DESIGN.md).
func (c Config) validate() error {
	if c.PruneNBest > 0 && c.PruneThreshold > 0 {
		return ErrConflictingPruneModes
	}
	if c.MaxOverlap < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeMaxOverlap, c.MaxOverlap)
	}
	return nil
}
