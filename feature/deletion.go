package feature

import "github.com/katalvlaran/ngramlattice/ngram"

func init() { Register("deletion", newDeletion) }

// newDeletion builds a feature returning 1 on a deletion application and 0
// on every normal application — the only registered feature whose value
// depends on isDeletion rather than returning 0 for it.
func newDeletion() Func {
	return func(_ ngram.Rule, isDeletion bool) float64 {
		if isDeletion {
			return 1
		}
		return 0
	}
}
