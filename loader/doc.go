// Package loader parses the five external file formats the driver reads
// before a Lattice can be built: the n-gram candidate file, the chop file,
// the constraints file, the punctuation file, and the word map, plus the
// sentence-range flag syntax. Every loader here is a small, single-purpose
// parse function returning (T, error) — no line format gets its own type
// hierarchy.
package loader
