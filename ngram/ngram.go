package ngram

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/ngramlattice/coverage"
)

// WordID is an integer word identifier as produced by the external word
// map. Two values are reserved for sentence boundary markers.
type WordID int32

const (
	// STARTSENTENCE marks the beginning of a sentence. Only legal as the
	// first token of a rule applied to the Lattice's initial state.
	STARTSENTENCE WordID = 1
	// ENDSENTENCE marks the end of a sentence. A rule ending in this token
	// must complete the input coverage.
	ENDSENTENCE WordID = 2
)

// Rule is an ordered, non-empty sequence of word IDs.
type Rule []WordID

// IsStart reports whether r begins with STARTSENTENCE.
func (r Rule) IsStart() bool { return len(r) > 0 && r[0] == STARTSENTENCE }

// IsEnd reports whether r ends with ENDSENTENCE.
func (r Rule) IsEnd() bool { return len(r) > 0 && r[len(r)-1] == ENDSENTENCE }

// Key returns a canonical string key for r (its word IDs joined by '_'),
// suitable for use as a map key. Rules are compared by their token sequence
// only; two equal-token rules collapse to the same candidate entry (their
// Coverages are merged by the loader).
func (r Rule) Key() string {
	var b strings.Builder
	for i, w := range r {
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteString(strconv.Itoa(int(w)))
	}
	return b.String()
}

// Candidate is one candidate rule together with every Coverage under which
// it could be applied. Only the first-listed Coverage that satisfies
// canApply is tried; callers must preserve list order from the candidate
// file.
type Candidate struct {
	Rule      Rule
	Coverages []coverage.Coverage
}

// CandidateMap maps chunk index to the candidate rules available within
// that chunk, in file order.
type CandidateMap map[int][]Candidate
