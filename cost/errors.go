package cost

import "errors"

// ErrStartSentenceMidRule is raised when ngram.STARTSENTENCE appears at any
// position other than index 0 of a rule. A rule may only reset the LM
// history at its very start; this is a hard invariant violation rather than
// a recoverable input error, since no conforming candidate file can
// produce it — it signals a bug in the caller or the loader that built the
// rule.
var ErrStartSentenceMidRule = errors.New("cost: STARTSENTENCE appears mid-rule")

// ErrMissingWeight is returned by New when names lists a feature with no
// corresponding entry in the weight table.
var ErrMissingWeight = errors.New("cost: feature has no configured weight")
