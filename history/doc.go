// Package history defines the interface the lattice core uses to treat an
// LM's context object as an opaque, hashable, equality-comparable handle.
// The core never inspects a history's contents except through Suffix, which
// exposes up to order-1 most recent words for the overlap-compatibility
// check performed before a rule is allowed to apply.
package history
