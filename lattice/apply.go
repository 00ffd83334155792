package lattice

import (
	"github.com/katalvlaran/ngramlattice/coverage"
	"github.com/katalvlaran/ngramlattice/ngram"
	"github.com/katalvlaran/ngramlattice/state"
	"github.com/katalvlaran/ngramlattice/statekey"
	"github.com/katalvlaran/ngramlattice/wfst"
)

// canApply is the applicability predicate: a pure function of a state, a
// candidate rule, the Coverage it would consume, the overlap bound, and
// the LM's order. On success it returns the truncated rule (the tokens
// past the shared history, the only ones that actually need scoring and
// emitting) and true.
func canApply(s state.State, rule ngram.Rule, ruleCov coverage.Coverage, input []ngram.WordID, maxOverlap, lmOrder int) (ngram.Rule, bool) {
	ol, err := s.Key.Coverage.And(ruleCov)
	if err != nil {
		return nil, false
	}
	olc := ol.Popcount()
	if olc > maxOverlap || olc >= lmOrder {
		return nil, false
	}
	if ol.Equal(ruleCov) {
		return nil, false
	}
	if rule.IsStart() && s.Key.Coverage.Popcount() != 0 {
		return nil, false
	}
	if rule.IsEnd() {
		union, err := s.Key.Coverage.Or(ruleCov)
		if err != nil || union.Popcount() < union.Len() {
			return nil, false
		}
	}

	if olc > 0 {
		positions := ol.Positions()
		suffix := s.Key.History.Suffix(olc)
		if len(suffix) < olc {
			return nil, false
		}
		for i := 0; i < olc; i++ {
			if rule[i] != suffix[olc-1-i] {
				return nil, false
			}
			if rule[i] != input[positions[i]] {
				return nil, false
			}
		}
	}

	return rule[olc:], true
}

// apply prices truncated against s via the configured cost.Computer, then
// merges it into (or inserts it as a new State in) the destination column.
func (l *Lattice) apply(s state.State, truncated ngram.Rule, ruleCov coverage.Coverage) error {
	newCoverage, err := s.Key.Coverage.Or(ruleCov)
	if err != nil {
		return err
	}
	colPrime := newCoverage.Popcount()

	arcCost, nextHistory, arcWeight, err := l.cost.Compute(s, truncated)
	if err != nil {
		return err
	}

	newCost := s.Cost + arcCost
	newKey := statekey.New(newCoverage, nextHistory)
	hasInput := s.HasInputPrefix && inputMatches(l.input, colPrime, truncated)

	return l.mergeOrInsert(s, truncated, newKey, newCost, hasInput, arcWeight, colPrime, false)
}

// applyDeletion prices the same synthetic zero-cost-rule path cost.Computer
// uses for a deletion (len(rule) == 0: no LM walk, history unchanged), but
// still consumes ruleCov's coverage bit and still emits a real WFST arc —
// labelled with truncated's token(s) but relabelled to Epsilon, so the
// path silently "drops" the word while still advancing coverage.
func (l *Lattice) applyDeletion(s state.State, truncated ngram.Rule, ruleCov coverage.Coverage) error {
	newCoverage, err := s.Key.Coverage.Or(ruleCov)
	if err != nil {
		return err
	}
	colPrime := newCoverage.Popcount()

	arcCost, nextHistory, arcWeight, err := l.cost.Compute(s, nil)
	if err != nil {
		return err
	}

	newCost := s.Cost + arcCost
	newKey := statekey.New(newCoverage, nextHistory)

	return l.mergeOrInsert(s, truncated, newKey, newCost, false, arcWeight, colPrime, true)
}

// mergeOrInsert implements the shared merge-vs-insert/insertion-pruning
// logic: look new_key up in the destination column's map view; on a hit,
// update cost/has_input in place (re-keying the ordered view as needed)
// and emit the WFST path onto the existing fst_node; on a miss, enforce
// insertion pruning, then create a fresh chain of WFST states and a new
// State.
func (l *Lattice) mergeOrInsert(pred state.State, truncated ngram.Rule, newKey statekey.Key, newCost float64, hasInput bool, arcWeight wfst.Weight, colPrime int, emitEpsilon bool) error {
	dst := l.columns[colPrime]
	labels := make([]int32, len(truncated))
	for i, w := range truncated {
		labels[i] = int32(w)
	}

	if existing, ok := dst.Lookup(newKey); ok {
		has := hasInput || existing.HasInputPrefix
		cost := existing.Cost
		if newCost < cost {
			cost = newCost
		}
		if cost != existing.Cost || has != existing.HasInputPrefix {
			dst.Put(state.New(newKey, cost, existing.FSTNode, has))
		}
		return l.builder.AddPath(pred.FSTNode, labels, arcWeight, existing.FSTNode, emitEpsilon)
	}

	if l.cfg.PruneNBest > 0 && dst.Len() >= l.cfg.PruneNBest {
		if worst, ok := dst.Max(); ok && newCost >= worst.Cost {
			return nil
		}
	} else if l.cfg.PruneThreshold > 0 && dst.Len() > 0 {
		if min, ok := dst.Min(); ok && newCost > min.Cost+l.cfg.PruneThreshold {
			return nil
		}
	}

	fstNode := l.builder.AddState()
	if err := l.builder.AddPath(pred.FSTNode, labels, arcWeight, fstNode, emitEpsilon); err != nil {
		return err
	}
	dst.Put(state.New(newKey, newCost, fstNode, hasInput))

	if l.cfg.PruneNBest > 0 && dst.Len() > l.cfg.PruneNBest {
		dst.EvictWorst()
	}
	return nil
}

// inputMatches reports whether truncated equals the slice of the literal
// input tokens ending exactly at position colPrime (exclusive), i.e.
// whether extending with truncated keeps a path spelling the input prefix
// in order.
func inputMatches(input []ngram.WordID, colPrime int, truncated ngram.Rule) bool {
	start := colPrime - len(truncated)
	if start < 0 || colPrime > len(input) {
		return false
	}
	for i, w := range truncated {
		if input[start+i] != w {
			return false
		}
	}
	return true
}
