// Package coverage implements the fixed-width bitset used to track which
// input token positions a search hypothesis has consumed.
//
// Position 0 is always the leftmost input word; a set bit means that
// position has been spelled by some n-gram applied so far. Two Coverages
// are equal iff every bit matches, and every Coverage belonging to the same
// Lattice must report the same Len().
//
// Coverage is a plain comparable value (no pointers, no slices), so it can
// be used directly as a Go map key or as a field inside another comparable
// key type such as statekey.Key.
package coverage
