// Package ngram defines the candidate n-gram data model consumed by the
// lattice engine: word IDs, rules (ordered token sequences), the two
// reserved sentence-boundary tokens, and the per-chunk candidate map
// produced by the external n-gram candidate loader.
package ngram
