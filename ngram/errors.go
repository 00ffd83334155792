package ngram

import "errors"

var (
	// ErrEmptyRule indicates a rule with zero tokens, which is never valid.
	ErrEmptyRule = errors.New("ngram: rule must have at least one token")
	// ErrNoCoverages indicates a rule with no associated Coverage at all.
	ErrNoCoverages = errors.New("ngram: rule must carry at least one coverage")
)
