package feature

import "github.com/katalvlaran/ngramlattice/ngram"

func init() { Register("rule_count", newRuleCount) }

// newRuleCount builds a feature that counts rule firings: 1 per normal
// application, 0 on deletion.
func newRuleCount() Func {
	return func(_ ngram.Rule, isDeletion bool) float64 {
		if isDeletion {
			return 0
		}
		return 1
	}
}
