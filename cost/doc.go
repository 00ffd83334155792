// Package cost computes the cost of applying one rule at one search state:
// an LM scoring walk over the rule's tokens combined linearly with a
// configured set of registered features, producing both a plain float64
// arc cost (used to rank/prune States) and a wfst.Weight (the value
// actually stored on the emitted arc, which differs by semiring).
//
// The LM-walk shape is grounded on kho-fslm's Model.NextI/Final: walk a
// state machine token by token, accumulating a score. The overall
// cost-composition structure (LM term plus a weighted feature sum) follows
// original_source/src/Lattice.cpp's Lattice::cost.
package cost
