package feature

import "github.com/katalvlaran/ngramlattice/ngram"

func init() { Register("word_count", newWordCount) }

// newWordCount builds a feature returning the number of tokens in the
// applied rule, 0 on deletion.
func newWordCount() Func {
	return func(rule ngram.Rule, isDeletion bool) float64 {
		if isDeletion {
			return 0
		}
		return float64(len(rule))
	}
}
