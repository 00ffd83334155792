// Package driver wires the loader, lm, cost, and lattice packages into a
// runnable per-sentence decode/tune pipeline: parse the sentence file,
// resolve chop/constraints strategy, build and extend a lattice.Lattice
// chunk by chunk, then compact and write the resulting WFST. Config
// validation happens once at startup; per-sentence I/O and malformed-input
// errors are isolated so one bad sentence does not abort a whole run.
package driver
