package lattice

import (
	"github.com/katalvlaran/ngramlattice/ngram"
	"github.com/katalvlaran/ngramlattice/state"
)

// ExtendOptions carries the one per-call parameter Extend needs beyond the
// Lattice's own Config: which chunk's candidates to try. (A chunk can span
// several columns once a long rule is applied, so it is independent of the
// column index being extended.)
type ExtendOptions struct {
	ChunkID int
}

// Extend walks Column columnIndex in ascending cost order, applying every
// candidate rule registered for opts.ChunkID that canApply accepts,
// subject to the configured pruning discipline. If AllowDeletion is set,
// any successfully-applied truncated rule that is a bare, non-marker
// unigram is additionally applied as a deletion.
//
// Extend stops visiting Column columnIndex's States as soon as PruneNBest
// States have been visited (if PruneNBest > 0) or the next State's cost
// exceeds the column's minimum cost plus PruneThreshold (if
// PruneThreshold > 0) — it does not itself retroactively re-examine States
// already skipped or emitted, even if a later insertion lowers the
// column's minimum cost (see DESIGN.md's "beam-shift cull gap" decision).
func (l *Lattice) Extend(columnIndex int, candidates ngram.CandidateMap, opts ExtendOptions) error {
	src := l.columns[columnIndex]
	if src.Len() == 0 {
		return nil
	}

	min, _ := src.Min()
	beam := min.Cost + l.cfg.PruneThreshold
	lmOrder := l.lm.Order()
	cands := candidates[opts.ChunkID]

	numVisited := 0
	var firstErr error
	src.Ascend(func(s state.State) bool {
		numVisited++
		if l.cfg.PruneNBest > 0 && numVisited > l.cfg.PruneNBest {
			return false
		}
		if l.cfg.PruneThreshold > 0 && s.Cost > beam {
			return false
		}

		for _, cand := range cands {
			for _, cov := range cand.Coverages {
				truncated, ok := canApply(s, cand.Rule, cov, l.input, l.cfg.MaxOverlap, lmOrder)
				if !ok {
					continue
				}
				if err := l.apply(s, truncated, cov); err != nil {
					firstErr = err
					return false
				}
				if l.cfg.AllowDeletion && isDeletableUnigram(truncated) {
					if err := l.applyDeletion(s, truncated, cov); err != nil {
						firstErr = err
						return false
					}
				}
				break
			}
		}
		return true
	})
	return firstErr
}

func isDeletableUnigram(rule ngram.Rule) bool {
	return len(rule) == 1 && rule[0] != ngram.STARTSENTENCE && rule[0] != ngram.ENDSENTENCE
}
