package lm

import "github.com/katalvlaran/ngramlattice/ngram"

// Builder builds a Model from n-gram entries. Must be constructed with
// NewBuilder; invalidated by Dump.
type Builder struct {
	transitions []map[ngram.WordID]transition
	backoff     []backoffEdge
	order       int
}

// NewBuilder returns an empty Builder, pre-seeded with the empty context
// (stateEmpty) and the begin-of-sentence context (stateStart) reached by
// consuming ngram.STARTSENTENCE from it.
func NewBuilder() *Builder {
	b := &Builder{}
	b.newState() // stateEmpty
	b.newState() // stateStart
	b.setTransition(stateEmpty, ngram.STARTSENTENCE, stateStart, 0)
	return b
}

func (b *Builder) newState() StateId {
	id := StateId(len(b.backoff))
	b.transitions = append(b.transitions, nil)
	b.backoff = append(b.backoff, backoffEdge{state: stateEmpty})
	return id
}

func (b *Builder) setTransition(p StateId, w ngram.WordID, q StateId, logp float64) {
	if b.transitions[p] == nil {
		b.transitions[p] = make(map[ngram.WordID]transition)
	}
	b.transitions[p][w] = transition{next: q, weight: logp}
}

// findNextState returns the state reached from p by consuming w, creating
// it (with a neutral zero-weight transition) if it does not exist yet.
func (b *Builder) findNextState(p StateId, w ngram.WordID) StateId {
	if b.transitions[p] != nil {
		if t, ok := b.transitions[p][w]; ok {
			return t.next
		}
	}
	q := b.newState()
	b.setTransition(p, w, q, 0)
	return q
}

// findState walks ws from the empty context, creating intermediate states
// as needed.
func (b *Builder) findState(ws []ngram.WordID) StateId {
	p := stateEmpty
	for _, w := range ws {
		p = b.findNextState(p, w)
	}
	return p
}

// AddNgram adds one n-gram entry: context (the first n-1 words, possibly
// empty for a unigram), the final word, its log10 conditional probability,
// and its back-off weight (the weight applied when falling back from the
// context this n-gram defines to its (n-1)-order suffix). The order
// entries are added in does not matter.
//
// The back-off state for the context (context, word) is the state for its
// (n-1)-order suffix (context[1:], word) — computed directly here rather
// than through a separate post-hoc linking pass, since the context is
// already known at the call site.
func (b *Builder) AddNgram(context []ngram.WordID, word ngram.WordID, logProb, backOff float64) {
	if n := len(context) + 1; n > b.order {
		b.order = n
	}

	p := b.findState(context)
	q := b.findNextState(p, word)
	b.setTransition(p, word, q, logProb)

	var suffixCtx []ngram.WordID
	if len(context) > 0 {
		suffixCtx = append(append([]ngram.WordID(nil), context[1:]...), word)
	}
	backoffState := b.findState(suffixCtx)
	b.backoff[q] = backoffEdge{state: backoffState, weight: backOff}
}

// Dump freezes the Builder into an immutable BackoffModel. Subsequent calls
// to AddNgram on b are not supported.
func (b *Builder) Dump() *BackoffModel {
	m := &BackoffModel{transitions: b.transitions, backoff: b.backoff, order: b.order}
	b.transitions = nil
	b.backoff = nil
	return m
}
