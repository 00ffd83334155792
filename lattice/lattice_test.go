package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ngramlattice/coverage"
	"github.com/katalvlaran/ngramlattice/cost"
	_ "github.com/katalvlaran/ngramlattice/feature" // registers rule_count/word_count/deletion
	"github.com/katalvlaran/ngramlattice/lattice"
	"github.com/katalvlaran/ngramlattice/lm"
	"github.com/katalvlaran/ngramlattice/ngram"
	"github.com/katalvlaran/ngramlattice/state"
)

// twoWordModel scores the bigram (5,6) directly, so a single full-coverage
// rule {5,6} prices cheaply; its order is 2.
func twoWordModel(t *testing.T) lm.Model {
	t.Helper()
	b := lm.NewBuilder()
	b.AddNgram(nil, 5, -0.3, -0.2)
	b.AddNgram([]ngram.WordID{5}, 6, -0.2, 0)
	return b.Dump()
}

func fullCoverageCandidates(t *testing.T, n int) ngram.CandidateMap {
	t.Helper()
	cov, err := coverage.FromPositions(n, []int{0, 1})
	require.NoError(t, err)
	return ngram.CandidateMap{
		0: {{Rule: ngram.Rule{5, 6}, Coverages: []coverage.Coverage{cov}}},
	}
}

func TestNewSeedsColumnZeroWithStartState(t *testing.T) {
	m := twoWordModel(t)
	l, err := lattice.New([]ngram.WordID{5, 6}, m, nil, nil, lattice.Config{Semiring: cost.Tropical})
	require.NoError(t, err)

	col0 := l.Column(0)
	require.Equal(t, 1, col0.Len())
	s, ok := col0.Min()
	require.True(t, ok)
	assert.Equal(t, 0.0, s.Cost)
	assert.True(t, s.HasInputPrefix)
	assert.Equal(t, 0, s.Key.Coverage.Popcount())
}

func TestNewRejectsConflictingPruneModes(t *testing.T) {
	m := twoWordModel(t)
	_, err := lattice.New([]ngram.WordID{5, 6}, m, nil, nil, lattice.Config{
		PruneNBest: 2, PruneThreshold: 1.0, Semiring: cost.Tropical,
	})
	require.ErrorIs(t, err, lattice.ErrConflictingPruneModes)
}

func TestExtendAppliesFullCoverageRuleAndReachesFinalColumn(t *testing.T) {
	m := twoWordModel(t)
	input := []ngram.WordID{5, 6}
	l, err := lattice.New(input, m, nil, nil, lattice.Config{Semiring: cost.Tropical})
	require.NoError(t, err)

	cands := fullCoverageCandidates(t, len(input))
	require.NoError(t, l.Extend(0, cands, lattice.ExtendOptions{ChunkID: 0}))

	final := l.Column(2)
	require.Equal(t, 1, final.Len())
	s, ok := final.Min()
	require.True(t, ok)
	assert.True(t, s.Cost > 0, "arc cost must reflect the LM walk, not stay at zero")
	assert.True(t, s.HasInputPrefix, "the applied rule spells the literal input in order")

	require.NoError(t, l.MarkFinal())
	isFinal, _ := l.Builder().IsFinal(s.FSTNode)
	assert.True(t, isFinal)
}

func TestExtendSkipsRuleWhenOverlapAtOrAboveLMOrder(t *testing.T) {
	m := twoWordModel(t) // order 2
	input := []ngram.WordID{5, 6, 7}
	l, err := lattice.New(input, m, nil, nil, lattice.Config{
		MaxOverlap: 2, Semiring: cost.Tropical,
	})
	require.NoError(t, err)

	// First cover positions {0,1}, to produce a non-start state whose
	// coverage a later candidate can overlap by two bits.
	cov01, err := coverage.FromPositions(len(input), []int{0, 1})
	require.NoError(t, err)
	firstPass := ngram.CandidateMap{0: {{Rule: ngram.Rule{5, 6}, Coverages: []coverage.Coverage{cov01}}}}
	require.NoError(t, l.Extend(0, firstPass, lattice.ExtendOptions{ChunkID: 0}))
	require.Equal(t, 1, l.Column(2).Len())

	// A candidate whose coverage overlaps both already-covered positions
	// (olc==2) must be rejected outright, since olc >= Order.
	cov012, err := coverage.FromPositions(len(input), []int{0, 1, 2})
	require.NoError(t, err)
	overlapTwo := ngram.CandidateMap{
		0: {{Rule: ngram.Rule{5, 6, 7}, Coverages: []coverage.Coverage{cov012}}},
	}
	require.NoError(t, l.Extend(2, overlapTwo, lattice.ExtendOptions{ChunkID: 0}))
	assert.Equal(t, 0, l.Column(3).Len(), "an overlap of 2 against an order-2 LM can never be recreated as history")
}

func TestExtendMergesIntoExistingStateKeepingMinimumCost(t *testing.T) {
	m := twoWordModel(t)
	input := []ngram.WordID{5, 6}
	l, err := lattice.New(input, m, nil, nil, lattice.Config{Semiring: cost.Tropical})
	require.NoError(t, err)

	cov, err := coverage.FromPositions(len(input), []int{0, 1})
	require.NoError(t, err)
	// Applying the same rule twice lands on the same destination coverage
	// and resulting LM history (5 then 6), so the second application must
	// merge into the existing State rather than create a second one.
	cands := ngram.CandidateMap{
		0: {
			{Rule: ngram.Rule{5, 6}, Coverages: []coverage.Coverage{cov}},
		},
	}
	require.NoError(t, l.Extend(0, cands, lattice.ExtendOptions{ChunkID: 0}))
	require.Equal(t, 1, l.Column(2).Len())

	s1, _ := l.Column(2).Min()
	require.NoError(t, l.Extend(0, cands, lattice.ExtendOptions{ChunkID: 0}))
	require.Equal(t, 1, l.Column(2).Len(), "applying the identical candidate a second time must merge, not duplicate")
	s2, _ := l.Column(2).Min()
	assert.Equal(t, s1.Cost, s2.Cost)
}

func TestExtendAppliesDeletionWhenAllowed(t *testing.T) {
	m := twoWordModel(t)
	input := []ngram.WordID{5, 6}
	weights := map[string]float64{"deletion": 1.5}
	l, err := lattice.New(input, m, []string{"deletion"}, weights, lattice.Config{
		AllowDeletion: true, Semiring: cost.Tropical,
	})
	require.NoError(t, err)

	cov0, err := coverage.FromPositions(len(input), []int{0})
	require.NoError(t, err)
	cands := ngram.CandidateMap{0: {{Rule: ngram.Rule{5}, Coverages: []coverage.Coverage{cov0}}}}
	require.NoError(t, l.Extend(0, cands, lattice.ExtendOptions{ChunkID: 0}))

	// The deletion twin keeps the LM history unchanged while the normal
	// application advances it past "5", so the two land on distinct
	// StateKeys (same coverage, different history) and do not merge.
	col1 := l.Column(1)
	require.Equal(t, 2, col1.Len())

	var sawKeptInput, sawDropped bool
	col1.Ascend(func(s state.State) bool {
		if s.HasInputPrefix {
			sawKeptInput = true
		} else {
			sawDropped = true
			assert.True(t, s.Key.History.Equal(m.Start()), "a deletion must not advance the LM history")
		}
		return true
	})
	assert.True(t, sawKeptInput)
	assert.True(t, sawDropped)
}

func TestAddInputFallbackCreatesAcceptingPath(t *testing.T) {
	m := twoWordModel(t)
	input := []ngram.WordID{5, 6}
	l, err := lattice.New(input, m, nil, nil, lattice.Config{Semiring: cost.Tropical})
	require.NoError(t, err)

	require.NoError(t, l.AddInputFallback())

	start, err := l.Builder().Start()
	require.NoError(t, err)
	arcs := l.Builder().Arcs(start)
	require.Len(t, arcs, 1)
	assert.Equal(t, int32(5), arcs[0].ILabel)
}

func TestWhenLostInputReportsNoLossWhenFinalColumnHasInputPrefix(t *testing.T) {
	m := twoWordModel(t)
	input := []ngram.WordID{5, 6}
	l, err := lattice.New(input, m, nil, nil, lattice.Config{Semiring: cost.Tropical})
	require.NoError(t, err)

	require.NoError(t, l.Extend(0, fullCoverageCandidates(t, len(input)), lattice.ExtendOptions{ChunkID: 0}))

	idx, noLoss := l.WhenLostInput()
	assert.Equal(t, 2, idx)
	assert.True(t, noLoss)
}

func TestWhenLostInputReportsLossWhenNoInputPrefixSurvives(t *testing.T) {
	m := twoWordModel(t)
	input := []ngram.WordID{5, 6}
	l, err := lattice.New(input, m, nil, nil, lattice.Config{Semiring: cost.Tropical})
	require.NoError(t, err)

	// A rule that reorders the two words never spells the literal input.
	cov, err := coverage.FromPositions(len(input), []int{0, 1})
	require.NoError(t, err)
	cands := ngram.CandidateMap{0: {{Rule: ngram.Rule{6, 5}, Coverages: []coverage.Coverage{cov}}}}
	require.NoError(t, l.Extend(0, cands, lattice.ExtendOptions{ChunkID: 0}))

	idx, noLoss := l.WhenLostInput()
	assert.Equal(t, 0, idx, "only column 0's seeded start state still carries HasInputPrefix")
	assert.False(t, noLoss)
}

func TestCompactSkipsDeterminizeForSparseTupleSemiring(t *testing.T) {
	m := twoWordModel(t)
	input := []ngram.WordID{5, 6}
	weights := map[string]float64{"rule_count": 1.0}
	l, err := lattice.New(input, m, []string{"rule_count"}, weights, lattice.Config{Semiring: cost.SparseTuple})
	require.NoError(t, err)

	require.NoError(t, l.Extend(0, fullCoverageCandidates(t, len(input)), lattice.ExtendOptions{ChunkID: 0}))
	before := l.Builder()
	require.NoError(t, l.Compact(0))
	assert.Same(t, before, l.Builder(), "SparseTuple must not be routed through Determinize, which allocates a new Builder")
}

func TestCompactDeterminizesTropicalSemiring(t *testing.T) {
	m := twoWordModel(t)
	input := []ngram.WordID{5, 6}
	l, err := lattice.New(input, m, nil, nil, lattice.Config{Semiring: cost.Tropical})
	require.NoError(t, err)

	require.NoError(t, l.Extend(0, fullCoverageCandidates(t, len(input)), lattice.ExtendOptions{ChunkID: 0}))
	before := l.Builder()
	require.NoError(t, l.Compact(0))
	assert.NotSame(t, before, l.Builder(), "tropical semiring must run Determinize, which replaces the Builder")
}
