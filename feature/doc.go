// Package feature holds the registry of named scalar feature functions
// evaluated on a candidate rule during cost computation: rule_count,
// word_count, deletion, and any caller-registered additions. Each feature
// lives in its own file, one algorithm per file, the same layout
// graph/algorithms uses for dijkstra.go, prim_kruskal.go, and friends.
//
// Registration happens once, at program init, through Register; lookups
// through Lookup happen once, at configuration time (cost.New), and the
// resulting functions are reused for every cost computation. An unknown
// feature name fails loudly at configuration time rather than being
// silently ignored.
package feature
