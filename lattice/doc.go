// Package lattice is the search engine: it walks an input token sequence
// column by column (indexed by coverage popcount), applying candidate
// n-gram rules to surviving hypotheses and emitting the result as a
// weighted finite-state transducer via wfst.Builder.
//
// A Lattice owns one column.Column per popcount from 0 to len(input), the
// wfst.Builder being built up, the LM handle, and the configured
// cost.Computer. Construction, per-column extension, and finalization are
// grounded on original_source/src/Lattice.cpp's extend/cost split,
// generalized with the overlap-compatibility, merge-vs-insert, and
// deletion semantics this module's candidate-rule model requires.
package lattice
