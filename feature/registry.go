package feature

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/ngramlattice/ngram"
)

// Func scores a single rule application. isDeletion reports whether this
// application is a deletion (consuming input positions without emitting
// any output token); every feature other than "deletion" itself must
// return 0 when isDeletion is true.
type Func func(rule ngram.Rule, isDeletion bool) float64

// Constructor builds a fresh Func. A cost.Computer calls each configured
// feature's Constructor once, at setup, and reuses the resulting Func for
// every rule application thereafter.
type Constructor func() Func

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Constructor)
)

// Register adds name to the registry. It panics if name is already
// registered: registration happens at program init time, so a collision is
// a programming error that must surface immediately rather than silently
// shadow an earlier feature (the same discipline database/sql.Register
// applies to duplicate driver names).
func Register(name string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("feature: Register called twice for name %q", name))
	}
	registry[name] = ctor
}

// Lookup returns the constructor registered under name.
func Lookup(name string) (Constructor, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
	}
	return ctor, nil
}

// Names returns every currently registered feature name, in no particular
// order. Useful for validation errors and `--help` output.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}
