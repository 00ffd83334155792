package lattice

import (
	"fmt"

	"github.com/katalvlaran/ngramlattice/column"
	"github.com/katalvlaran/ngramlattice/cost"
	"github.com/katalvlaran/ngramlattice/coverage"
	"github.com/katalvlaran/ngramlattice/lm"
	"github.com/katalvlaran/ngramlattice/ngram"
	"github.com/katalvlaran/ngramlattice/state"
	"github.com/katalvlaran/ngramlattice/statekey"
	"github.com/katalvlaran/ngramlattice/wfst"
)

// Lattice is a vector of Columns indexed by coverage popcount, 0..len(input),
// plus the wfst.Builder being constructed alongside it. Column 0 always
// holds exactly one State: empty coverage, the LM's begin-of-sentence
// history, cost 0, HasInputPrefix true.
type Lattice struct {
	columns []*column.Column
	builder *wfst.Builder
	cost    *cost.Computer
	lm      lm.Model
	cfg     Config
	input   []ngram.WordID
}

// New allocates a Lattice over input: n+1 empty Columns, a fresh
// wfst.Builder backed by the semiring cfg.Semiring selects, and the start
// State inserted into Column 0. It validates the feature/weight
// configuration and cfg before allocating anything, so a bad configuration
// fails before any search begins.
func New(input []ngram.WordID, model lm.Model, features []string, weights map[string]float64, cfg Config) (*Lattice, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	computer, err := cost.New(model, features, weights, cfg.Semiring)
	if err != nil {
		return nil, err
	}

	var zero, one wfst.Weight
	switch cfg.Semiring {
	case cost.Tropical:
		zero, one = wfst.TropicalZero, wfst.TropicalOne
	case cost.SparseTuple:
		zero, one = wfst.SparseTupleWeight{}, wfst.SparseTupleWeight{}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSemiring, cfg.Semiring)
	}
	builder := wfst.NewBuilder(zero, one)
	startNode := builder.AddState()
	if err := builder.SetStart(startNode); err != nil {
		return nil, err
	}

	n := len(input)
	cov0, err := coverage.New(n)
	if err != nil {
		return nil, err
	}
	startKey := statekey.New(cov0, model.Start())
	startState := state.New(startKey, 0, startNode, true)

	columns := make([]*column.Column, n+1)
	for i := range columns {
		columns[i] = column.New()
	}
	columns[0].Put(startState)

	return &Lattice{
		columns: columns,
		builder: builder,
		cost:    computer,
		lm:      model,
		cfg:     cfg,
		input:   append([]ngram.WordID(nil), input...),
	}, nil
}

// MarkFinal marks every State in the last column (popcount == len(input))
// as a WFST final state with semiring-identity weight. If that column is
// empty, this is a no-op: the search failed to reach full coverage, and the
// emitted WFST will simply have no accepting path (unless AddInputFallback
// was also called).
func (l *Lattice) MarkFinal() error {
	final := l.columns[len(l.columns)-1]
	var firstErr error
	final.Ascend(func(s state.State) bool {
		if err := l.builder.SetFinal(s.FSTNode, l.builder.One()); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	return firstErr
}

// AddInputFallback appends a path spelling the literal input verbatim from
// the WFST start state to a freshly created final state, with the LM cost
// of the whole input computed in one end-to-end walk and placed on the
// final arc. This guarantees the input is always a recognized path, even
// when search otherwise drops it entirely.
func (l *Lattice) AddInputFallback() error {
	startNode, err := l.builder.Start()
	if err != nil {
		return err
	}
	startState, ok := l.columns[0].Min()
	if !ok {
		return ErrMissingStartState
	}

	_, _, arcWeight, err := l.cost.Compute(startState, ngram.Rule(l.input))
	if err != nil {
		return err
	}

	labels := make([]int32, len(l.input))
	for i, w := range l.input {
		labels[i] = int32(w)
	}

	final := l.builder.AddState()
	if err := l.builder.AddPath(startNode, labels, arcWeight, final, false); err != nil {
		return err
	}
	return l.builder.SetFinal(final, l.builder.One())
}

// WhenLostInput scans columns from rightmost to leftmost for the highest
// index still holding a State with HasInputPrefix true. It returns that
// index and whether it equals the final column (true means no input was
// ever lost during search; false means some chunk's extension dropped
// every input-following path, reported for observability only — this is
// never treated as a hard failure).
func (l *Lattice) WhenLostInput() (maxIndex int, noLoss bool) {
	n := len(l.columns) - 1
	for idx := n; idx >= 0; idx-- {
		found := false
		l.columns[idx].Ascend(func(s state.State) bool {
			if s.HasInputPrefix {
				found = true
				return false
			}
			return true
		})
		if found {
			return idx, idx == n
		}
	}
	return -1, false
}

// Compact runs the WFST post-processing pipeline: Connect, then (for the
// tropical semiring, and only if pruneWeight > 0) Prune, then RmEpsilon if
// deletion arcs may be present, then Determinize and Minimize.
//
// Determinize/Minimize are skipped for cost.SparseTuple: the tune task
// wants each arc's raw, uncombined feature vector preserved for downstream
// weight fitting, and merging arcs via Plus/Divide over an uncombined tuple
// is not a meaningful operation — only Connect (and RmEpsilon, to keep the
// transducer shape sane) apply to it.
func (l *Lattice) Compact(pruneWeight float64) error {
	l.builder.Connect()
	if pruneWeight > 0 && l.cfg.Semiring == cost.Tropical {
		l.builder.Prune(wfst.TropicalWeight(pruneWeight))
	}
	if l.cfg.AllowDeletion {
		l.builder.RmEpsilon()
	}
	if l.cfg.Semiring != cost.Tropical {
		return nil
	}
	det, err := l.builder.Determinize()
	if err != nil {
		return err
	}
	if err := det.Minimize(); err != nil {
		return err
	}
	l.builder = det
	return nil
}

// Builder exposes the underlying wfst.Builder, e.g. for Write after
// Compact.
func (l *Lattice) Builder() *wfst.Builder { return l.builder }

// Column returns the Column at the given popcount index, for tests and
// diagnostics.
func (l *Lattice) Column(index int) *column.Column { return l.columns[index] }
