package lm

import "errors"

// ErrWrongHistoryType indicates a history.Key produced by a different LM (or
// a test stub) was passed to this Model's Score/Start consumer.
var ErrWrongHistoryType = errors.New("lm: history.Key was not produced by this model")

// ErrMalformedEntry indicates LoadARPA encountered a record that does not
// parse as "logprob word1 ... wordN [backoff]".
var ErrMalformedEntry = errors.New("lm: malformed n-gram entry")
