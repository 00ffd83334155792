package wfst_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ngramlattice/wfst"
)

func newTropical() *wfst.Builder {
	return wfst.NewBuilder(wfst.TropicalZero, wfst.TropicalOne)
}

func TestAddStateArcFinalStart(t *testing.T) {
	b := newTropical()
	s0 := b.AddState()
	s1 := b.AddState()
	require.NoError(t, b.SetStart(s0))
	_, err := b.AddArc(s0, 5, 5, wfst.TropicalWeight(1.5), s1)
	require.NoError(t, err)
	require.NoError(t, b.SetFinal(s1, wfst.TropicalOne))

	start, err := b.Start()
	require.NoError(t, err)
	assert.Equal(t, s0, start)
	final, w := b.IsFinal(s1)
	assert.True(t, final)
	assert.Equal(t, wfst.TropicalOne, w)
	assert.Len(t, b.Arcs(s0), 1)
}

func TestConnectRemovesDeadStates(t *testing.T) {
	b := newTropical()
	s0 := b.AddState()
	s1 := b.AddState()
	dead := b.AddState() // reachable from s0 but never reaches a final
	require.NoError(t, b.SetStart(s0))
	_, _ = b.AddArc(s0, 1, 1, wfst.TropicalOne, s1)
	_, _ = b.AddArc(s0, 2, 2, wfst.TropicalOne, dead)
	require.NoError(t, b.SetFinal(s1, wfst.TropicalOne))

	b.Connect()
	assert.Equal(t, 2, b.NumStates())
}

// TestDeletionProducesEpsilonThenRmEpsilonAccepts mirrors scenario S4:
// input [5,6], one epsilon deletion arc plus the normal bigram path.
func TestDeletionProducesEpsilonThenRmEpsilonAccepts(t *testing.T) {
	b := newTropical()
	start := b.AddState()
	mid := b.AddState()
	final := b.AddState()
	require.NoError(t, b.SetStart(start))
	require.NoError(t, b.SetFinal(final, wfst.TropicalOne))

	// Normal path: start --5--> mid --6--> final.
	_, err := b.AddArc(start, 5, 5, wfst.TropicalWeight(1), mid)
	require.NoError(t, err)
	_, err = b.AddArc(mid, 6, 6, wfst.TropicalWeight(1), final)
	require.NoError(t, err)

	// Deletion path: start --eps--> mid2(final), dropping word 5.
	mid2 := b.AddState()
	require.NoError(t, b.SetFinal(mid2, wfst.TropicalOne))
	_, err = b.AddArc(start, wfst.Epsilon, wfst.Epsilon, wfst.TropicalOne, mid2)
	require.NoError(t, err)

	before := b.NumStates()
	b.RmEpsilon()
	assert.Equal(t, before, b.NumStates())

	final2, _ := b.IsFinal(start)
	assert.True(t, final2, "start should become accepting after folding the epsilon deletion arc")
}

func TestDeterminizeMergesParallelArcs(t *testing.T) {
	b := newTropical()
	s0 := b.AddState()
	s1 := b.AddState()
	s2 := b.AddState()
	final := b.AddState()
	require.NoError(t, b.SetStart(s0))
	require.NoError(t, b.SetFinal(final, wfst.TropicalOne))
	_, _ = b.AddArc(s0, 7, 7, wfst.TropicalWeight(1), s1)
	_, _ = b.AddArc(s0, 7, 7, wfst.TropicalWeight(2), s2)
	_, _ = b.AddArc(s1, 8, 8, wfst.TropicalWeight(1), final)
	_, _ = b.AddArc(s2, 8, 8, wfst.TropicalWeight(1), final)

	det, err := b.Determinize()
	require.NoError(t, err)
	require.NotNil(t, det)

	start, err := det.Start()
	require.NoError(t, err)
	arcs := det.Arcs(start)
	require.Len(t, arcs, 1, "determinize must merge the two parallel 7-labeled arcs into one")
	assert.InDelta(t, 1.0, float64(arcs[0].Weight.(wfst.TropicalWeight)), 1e-9, "determinize must take the cheaper alternative")
}

func TestMinimizeRequiresDeterministic(t *testing.T) {
	b := newTropical()
	s0 := b.AddState()
	s1 := b.AddState()
	s2 := b.AddState()
	require.NoError(t, b.SetStart(s0))
	_, _ = b.AddArc(s0, 1, 1, wfst.TropicalOne, s1)
	_, _ = b.AddArc(s0, 1, 1, wfst.TropicalOne, s2)
	err := b.Minimize()
	assert.ErrorIs(t, err, wfst.ErrNotDeterministic)
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	b := newTropical()
	s0 := b.AddState()
	s1 := b.AddState()
	s2 := b.AddState()
	f1 := b.AddState()
	f2 := b.AddState()
	require.NoError(t, b.SetStart(s0))
	_, _ = b.AddArc(s0, 1, 1, wfst.TropicalOne, s1)
	_, _ = b.AddArc(s0, 2, 2, wfst.TropicalOne, s2)
	_, _ = b.AddArc(s1, 9, 9, wfst.TropicalOne, f1)
	_, _ = b.AddArc(s2, 9, 9, wfst.TropicalOne, f2)
	require.NoError(t, b.SetFinal(f1, wfst.TropicalOne))
	require.NoError(t, b.SetFinal(f2, wfst.TropicalOne))

	require.NoError(t, b.Minimize())
	// f1/f2 are equivalent (same final weight, no onward arcs), which in
	// turn makes s1/s2 equivalent (same label, same target group): s0,
	// {s1,s2}, {f1,f2} — 3 states survive.
	assert.Equal(t, 3, b.NumStates())
}

func TestPruneKeepsOnlyNearBestPaths(t *testing.T) {
	b := newTropical()
	s0 := b.AddState()
	cheap := b.AddState()
	expensive := b.AddState()
	require.NoError(t, b.SetStart(s0))
	_, _ = b.AddArc(s0, 1, 1, wfst.TropicalWeight(1), cheap)
	_, _ = b.AddArc(s0, 2, 2, wfst.TropicalWeight(100), expensive)
	require.NoError(t, b.SetFinal(cheap, wfst.TropicalOne))
	require.NoError(t, b.SetFinal(expensive, wfst.TropicalOne))

	b.Prune(wfst.TropicalWeight(0.5))
	assert.Equal(t, 2, b.NumStates(), "the expensive path should be pruned away")
}

func TestWriteReadRoundTrip(t *testing.T) {
	b := newTropical()
	s0 := b.AddState()
	s1 := b.AddState()
	require.NoError(t, b.SetStart(s0))
	require.NoError(t, b.SetFinal(s1, wfst.TropicalWeight(3)))
	_, _ = b.AddArc(s0, 4, 4, wfst.TropicalWeight(2), s1)

	var buf bytes.Buffer
	require.NoError(t, b.Write(&buf))
	got, err := wfst.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, b.NumStates(), got.NumStates())
	start, err := got.Start()
	require.NoError(t, err)
	assert.Equal(t, s0, start)
	final, w := got.IsFinal(s1)
	assert.True(t, final)
	assert.Equal(t, wfst.TropicalWeight(3), w)
}
