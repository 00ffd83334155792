// Package statekey defines StateKey, the (Coverage, History) pair that
// uniquely identifies a search state and collapses equivalent hypotheses
// within a Column.
package statekey
