package lm

import (
	"github.com/katalvlaran/ngramlattice/history"
	"github.com/katalvlaran/ngramlattice/ngram"
)

// maxSuffix bounds how many trailing words a History remembers verbatim,
// independent of the model's back-off state graph, for Suffix(). It covers
// every order a realistic n-gram LM uses (up to 6-grams).
const maxSuffix = 5

// History is this package's history.Key: a back-off StateId for scoring,
// plus a fixed-size window of the most recently consumed words (most
// recent first) for Suffix(). It is a plain comparable value, usable
// directly as a Go map key (through statekey.Key, which embeds it as a
// history.Key interface value).
type History struct {
	state     StateId
	words     [maxSuffix]ngram.WordID
	wordsFill int
}

// Equal reports whether two Histories were reached via equivalent paths:
// same scoring state and same remembered word window.
func (h History) Equal(other history.Key) bool {
	o, ok := other.(History)
	return ok && h == o
}

// Hash combines state and the remembered word window into a single digest.
func (h History) Hash() uint64 {
	x := uint64(14695981039346656037)
	const prime = uint64(1099511628211)
	mix := func(v uint64) {
		x ^= v
		x *= prime
	}
	mix(uint64(h.state))
	mix(uint64(h.wordsFill))
	for i := 0; i < h.wordsFill; i++ {
		mix(uint64(h.words[i]))
	}
	return x
}

// Suffix returns up to n most-recently-consumed words, most recent first.
func (h History) Suffix(n int) []ngram.WordID {
	if n > h.wordsFill {
		n = h.wordsFill
	}
	if n <= 0 {
		return nil
	}
	out := make([]ngram.WordID, n)
	copy(out, h.words[:n])
	return out
}

// advance returns the History reached by consuming word and landing on
// next, shifting word to the front of the remembered suffix window.
func (h History) advance(next StateId, word ngram.WordID) History {
	var out History
	out.state = next
	out.words[0] = word
	n := h.wordsFill
	if n > maxSuffix-1 {
		n = maxSuffix - 1
	}
	copy(out.words[1:], h.words[:n])
	out.wordsFill = n + 1
	return out
}
