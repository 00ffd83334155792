package cost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ngramlattice/feature"
	"github.com/katalvlaran/ngramlattice/history"
	"github.com/katalvlaran/ngramlattice/lm"
	"github.com/katalvlaran/ngramlattice/ngram"
	"github.com/katalvlaran/ngramlattice/state"
	"github.com/katalvlaran/ngramlattice/wfst"
)

// Semiring selects which wfst.Weight implementation Compute produces.
type Semiring int

const (
	// Tropical produces wfst.TropicalWeight(arcCost), for the decode task.
	Tropical Semiring = iota
	// SparseTuple produces a wfst.SparseTupleWeight carrying the LM cost and
	// each feature's raw, unweighted value, for the tune task: a weight
	// table can then be fit downstream without re-running the lattice.
	SparseTuple
)

type featureEntry struct {
	name   string
	fn     feature.Func
	weight float64
}

// Computer prices rule applications: an LM scoring walk combined linearly
// with a configured, ordered set of registered features.
type Computer struct {
	lm       lm.Model
	features []featureEntry
	semiring Semiring
}

// New builds a Computer. names lists the feature names to evaluate, in the
// order their values are written into a SparseTupleWeight (key 2 holds
// names[0]'s value, key 3 holds names[1]'s, and so on). Every name must
// resolve via feature.Lookup and carry a matching entry in weights. The LM
// cost is not part of names: it comes from the LM walk and is added with a
// fixed weight of 1.
func New(model lm.Model, names []string, weights map[string]float64, semiring Semiring) (*Computer, error) {
	entries := make([]featureEntry, 0, len(names))
	for _, name := range names {
		ctor, err := feature.Lookup(name)
		if err != nil {
			return nil, err
		}
		w, ok := weights[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingWeight, name)
		}
		entries = append(entries, featureEntry{name: name, fn: ctor(), weight: w})
	}
	return &Computer{lm: model, features: entries, semiring: semiring}, nil
}

// Compute prices one rule application from st: an LM walk over rule's
// tokens (scored against st's history) combined with the configured
// features' weighted sum.
//
// An empty rule is the synthetic marker for a deletion: the LM walk is
// skipped entirely (no token is said, so no LM cost is incurred and the
// history does not advance), but every registered feature is still
// evaluated with isDeletion=true, so a deletion penalty feature can still
// contribute to the arc cost.
//
// Compute panics with ErrStartSentenceMidRule if ngram.STARTSENTENCE
// appears anywhere but rule[0] — no conforming candidate file produces
// this, so it signals a caller bug rather than a recoverable condition.
func (c *Computer) Compute(st state.State, rule ngram.Rule) (arcCost float64, nextHistory history.Key, weight wfst.Weight, err error) {
	isDeletion := len(rule) == 0
	next := st.Key.History
	lmCost := 0.0

	if !isDeletion {
		for i, w := range rule {
			if w == ngram.STARTSENTENCE && i != 0 {
				panic(ErrStartSentenceMidRule)
			}
			logp, n := c.lm.Score(next, w)
			if w != ngram.STARTSENTENCE {
				lmCost += -logp * math.Ln10
			}
			next = n
		}
	}

	values := make([]float64, len(c.features))
	featureSum := 0.0
	for i, f := range c.features {
		v := f.fn(rule, isDeletion)
		values[i] = v
		featureSum += f.weight * v
	}
	arcCost = lmCost + featureSum

	switch c.semiring {
	case Tropical:
		weight = wfst.TropicalWeight(arcCost)
	case SparseTuple:
		sw := make(wfst.SparseTupleWeight, len(values)+1)
		sw[1] = lmCost
		for i, v := range values {
			sw[2+i] = v
		}
		weight = sw
	default:
		return 0, nil, nil, fmt.Errorf("cost: unknown semiring %d", c.semiring)
	}

	return arcCost, next, weight, nil
}
