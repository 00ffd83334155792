// Package column implements Column, the per-coverage-popcount container
// holding a set of States addressable both by StateKey (for O(1) upsert /
// collapse-equivalent-hypotheses) and in ascending-cost order (for the
// n-best/beam pruning walk during column extension).
//
// The two views are never allowed to drift apart; every mutating method
// updates both atomically. States live in a dense slice owned by the
// Column; the map view holds indices into that slice, and the ordered view
// holds (cost, key, index) entries, so a State.Cost update rewrites the
// slice slot and replaces that State's ordered entry.
package column
