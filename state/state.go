package state

import (
	"github.com/katalvlaran/ngramlattice/statekey"
	"github.com/katalvlaran/ngramlattice/wfst"
)

// State is a search hypothesis: an identity (StateKey), the minimum
// accumulated cost known to reach it, the node it maps to in the emitted
// WFST, and whether any path into it so far spells exactly the input
// prefix of length popcount(coverage).
//
// State is a plain value; it is stored inside its owning column.Column as a
// dense slice element, never boxed behind a pointer or linked by a
// predecessor pointer — all predecessor/successor information lives in the
// emitted WFST instead.
type State struct {
	Key            statekey.Key
	Cost           float64
	FSTNode        wfst.StateID
	HasInputPrefix bool
}

// New constructs a State.
func New(key statekey.Key, cost float64, fstNode wfst.StateID, hasInputPrefix bool) State {
	return State{Key: key, Cost: cost, FSTNode: fstNode, HasInputPrefix: hasInputPrefix}
}
