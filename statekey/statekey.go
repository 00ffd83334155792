package statekey

import (
	"github.com/katalvlaran/ngramlattice/coverage"
	"github.com/katalvlaran/ngramlattice/history"
)

// Key is the composite identity of a search state: the coverage bitmap it
// has consumed, plus the LM history it would condition its next score on.
// Key is itself a comparable Go value (history.Key implementations are
// required to be comparable), so it can be used directly as a map key —
// e.g. by column.Column's map view.
type Key struct {
	Coverage coverage.Coverage
	History  history.Key
}

// New builds a Key from a coverage and a history.
func New(cov coverage.Coverage, h history.Key) Key {
	return Key{Coverage: cov, History: h}
}

// Equal reports whether k and other identify the same state.
func (k Key) Equal(other Key) bool {
	return k.Coverage.Equal(other.Coverage) && k.History.Equal(other.History)
}

// Hash combines the coverage and history hashes. Useful for diagnostics or
// secondary indices that want a plain uint64 rather than the Key itself.
func (k Key) Hash() uint64 {
	h := k.Coverage.Hash()
	hh := k.History.Hash()
	// A boost-style hash_combine step (golden-ratio constant plus shifted
	// copies of h), combining the two independent hashes without simple XOR
	// cancellation.
	h ^= hh + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	return h
}
