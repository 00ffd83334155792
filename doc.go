// Package ngramlattice builds a weighted lattice of n-gram rewrite
// applications over a tokenized input sentence and emits it as a weighted
// finite-state transducer (WFST), for use as a reordering or paraphrase
// search space downstream of a translation or generation system.
//
// The pipeline, end to end:
//
//	loader    — parses the external file formats: n-gram candidates, chop
//	            boundaries, chunk constraints, punctuation, word maps
//	lm        — a back-off n-gram language model scoring one word at a time
//	ngram     — the candidate rule and coverage-bitmap types the core walks
//	coverage  — a fixed-width bitmap over input positions
//	statekey  — a comparable (coverage, LM history) search-state identity
//	column    — a per-popcount bucket of States, ordered by cost
//	cost      — prices one rule application: LM walk plus weighted features
//	wfst      — the mutable transducer builder (states, arcs, semirings,
//	            Connect/Prune/Determinize/Minimize/RmEpsilon, gob I/O)
//	lattice   — the core search: Extend walks a Column applying candidates
//	driver    — wires the above into a runnable per-sentence pipeline
//	cmd/ngramlattice — the decode/tune CLI built on top of driver
//
// Everything under this root is documentation only; the real API lives in
// the subpackages above.
package ngramlattice
