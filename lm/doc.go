// Package lm defines Model, the interface the lattice core and cost.Computer
// require of a language model (Start/Score/ConcurrentSafe/Order), and
// BackoffModel, a minimal in-memory back-off n-gram implementation of it
// with a two-phase Builder/Dump construction life cycle and a small
// ARPA-subset textual loader.
//
// BackoffModel's state-machine shape is grounded on kho-fslm's Model: states
// keyed by integer StateId, per-state word->(next state, log10 prob)
// transition tables, and a back-off chain (state->(back-off state, back-off
// weight)) walked on a missed lookup until the empty context is reached.
package lm
