package lm

import (
	"github.com/katalvlaran/ngramlattice/history"
	"github.com/katalvlaran/ngramlattice/ngram"
)

// StateId identifies a back-off state within a Model. Values are dense and
// start at 0.
type StateId int32

// stateEmpty is the root context (no words consumed yet). stateStart is the
// context reached immediately after STARTSENTENCE; every Model has both,
// regardless of what n-grams were added.
const (
	stateEmpty StateId = 0
	stateStart StateId = 1
)

// Log0 replaces -infinity for an unseen unigram, following the convention
// of SRILM-style ARPA files.
const Log0 = -99.0

type transition struct {
	next   StateId
	weight float64 // log10 probability
}

type backoffEdge struct {
	state  StateId
	weight float64 // log10 back-off weight
}

// Model is the interface the lattice core and cost.Computer require of an
// LM: a begin-of-sentence history, a one-token scoring walk, and a
// declaration of whether one handle may be shared across worker goroutines
// without external synchronization.
type Model interface {
	Start() history.Key
	Score(h history.Key, word ngram.WordID) (log10prob float64, next history.Key)
	ConcurrentSafe() bool
	// Order returns the highest n-gram order the model was built with (e.g.
	// 3 for a trigram model). canApply uses this to reject an overlap that
	// could not possibly be recreated as a valid LM history.
	Order() int
}

// BackoffModel is an immutable back-off n-gram language model, the default
// in-memory Model implementation. Construct one via NewBuilder()...Dump()
// or LoadARPA.
type BackoffModel struct {
	transitions []map[ngram.WordID]transition
	backoff     []backoffEdge
	order       int
}

// ConcurrentSafe reports true: a BackoffModel's transition table is built
// once by Dump/LoadARPA and never mutated afterward, so concurrent readers
// need no external synchronization.
func (m *BackoffModel) ConcurrentSafe() bool { return true }

// Order returns the highest order seen across every AddNgram call that
// built this model (the N of an N-gram being context length + 1).
func (m *BackoffModel) Order() int { return m.order }

// Start returns the history for the begin-of-sentence context.
func (m *BackoffModel) Start() history.Key {
	return History{state: stateStart}
}

// Score scores word against hk, returning its log10 probability and the
// resulting history. If word is ngram.STARTSENTENCE, the walk resets to the
// begin-of-sentence context and contributes no score, matching the rule
// that STARTSENTENCE is only legal as the very first token of a rule.
// Score panics if hk was not produced by this Model — a foreign history.Key
// reaching here is a caller bug, not a recoverable runtime condition.
func (m *BackoffModel) Score(hk history.Key, word ngram.WordID) (float64, history.Key) {
	h, ok := hk.(History)
	if !ok {
		panic(ErrWrongHistoryType)
	}
	if word == ngram.STARTSENTENCE {
		return 0, History{state: stateStart}
	}
	next, logp := m.next(h.state, word)
	return logp, h.advance(next, word)
}

// next walks the back-off chain from p looking for an explicit transition
// on word, accumulating back-off weights along the way.
func (m *BackoffModel) next(p StateId, word ngram.WordID) (StateId, float64) {
	cur := p
	total := 0.0
	for {
		if t, ok := m.transitions[cur][word]; ok {
			return t.next, total + t.weight
		}
		if cur == stateEmpty {
			return stateEmpty, total + Log0
		}
		total += m.backoff[cur].weight
		cur = m.backoff[cur].state
	}
}
