// Package state defines State, a search hypothesis identified by a
// statekey.Key, carrying its accumulated cost and a handle into the
// emitted WFST.
package state
