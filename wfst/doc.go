// Package wfst implements weighted finite-state transducer primitives:
// AddState, AddArc, SetFinal, SetStart, Connect, Determinize, Minimize,
// Prune, RmEpsilon and Write. No suitable third-party Go WFST/OpenFST-style
// library was found among the reference examples (see DESIGN.md), so this
// package is a from-scratch implementation modeled on
// katalvlaran-lvlath/graph/core's mutex-protected adjacency-list Graph for
// mutable construction, and on the lazy-DFA subset-construction builder
// found in the reference pack (coregx-coregex) for Determinize's algorithm
// shape.
//
// Weights are abstracted behind the Weight interface so the Lattice can be
// generic in the semiring: TropicalWeight for decode, SparseTupleWeight for
// feature-weight tuning.
package wfst
