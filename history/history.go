package history

import "github.com/katalvlaran/ngramlattice/ngram"

// Key is an opaque LM context handle. Concrete implementations must be
// comparable Go values (no slices/maps/funcs) so that statekey.Key, which
// embeds a Key, remains usable directly as a Go map key.
type Key interface {
	// Equal reports whether two Keys represent the same LM context.
	Equal(other Key) bool
	// Hash returns a hash of the Key's identity, combined into StateKey's
	// hash for non-map-based indices (e.g. diagnostics, dedup sets keyed by
	// a plain uint64 rather than the Key interface itself).
	Hash() uint64
	// Suffix returns up to n most-recently-consumed words, most recent
	// first. Used only by the overlap-compatibility check before applying a
	// rule; the core never interprets the words beyond comparing them for
	// equality against rule tokens and input tokens.
	Suffix(n int) []ngram.WordID
}
