package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ngramlattice/column"
	"github.com/katalvlaran/ngramlattice/coverage"
	"github.com/katalvlaran/ngramlattice/history"
	"github.com/katalvlaran/ngramlattice/ngram"
	"github.com/katalvlaran/ngramlattice/state"
	"github.com/katalvlaran/ngramlattice/statekey"
	"github.com/katalvlaran/ngramlattice/wfst"
)

type stubHistory string

func (s stubHistory) Equal(other history.Key) bool {
	o, ok := other.(stubHistory)
	return ok && s == o
}
func (s stubHistory) Hash() uint64 {
	var h uint64 = 1469598103934665603
	for _, b := range []byte(s) {
		h ^= uint64(b)
		h *= 1099511628211
	}
	return h
}
func (s stubHistory) Suffix(n int) []ngram.WordID { return nil }

func keyFor(t *testing.T, label string, n int) statekey.Key {
	t.Helper()
	cov, err := coverage.New(n)
	require.NoError(t, err)
	return statekey.New(cov, stubHistory(label))
}

func TestPutAndLookupStaySynced(t *testing.T) {
	c := column.New()
	k1 := keyFor(t, "a", 4)
	s1 := state.New(k1, 1.5, wfst.StateID(0), true)

	replaced, _ := c.Put(s1)
	assert.False(t, replaced)
	assert.Equal(t, 1, c.Len())

	got, ok := c.Lookup(k1)
	require.True(t, ok)
	assert.Equal(t, s1, got)
}

func TestPutReplacesExistingKeyInBothViews(t *testing.T) {
	c := column.New()
	k1 := keyFor(t, "a", 4)
	c.Put(state.New(k1, 5.0, wfst.StateID(0), false))

	replaced, prevCost := c.Put(state.New(k1, 2.0, wfst.StateID(1), true))
	assert.True(t, replaced)
	assert.Equal(t, 5.0, prevCost)
	assert.Equal(t, 1, c.Len(), "replacing a key must not grow the column")

	got, ok := c.Lookup(k1)
	require.True(t, ok)
	assert.Equal(t, 2.0, got.Cost)
	assert.Equal(t, wfst.StateID(1), got.FSTNode)

	best, ok := c.Min()
	require.True(t, ok)
	assert.Equal(t, 2.0, best.Cost, "the ordered view must reflect the updated cost, not the stale one")
}

func TestAscendVisitsInNonDecreasingCostOrder(t *testing.T) {
	c := column.New()
	c.Put(state.New(keyFor(t, "c", 4), 3.0, wfst.StateID(0), false))
	c.Put(state.New(keyFor(t, "a", 4), 1.0, wfst.StateID(1), false))
	c.Put(state.New(keyFor(t, "b", 4), 2.0, wfst.StateID(2), false))

	var costs []float64
	c.Ascend(func(s state.State) bool {
		costs = append(costs, s.Cost)
		return true
	})
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, costs)
}

func TestEvictWorstDropsHighestCost(t *testing.T) {
	c := column.New()
	cheap := keyFor(t, "cheap", 4)
	pricey := keyFor(t, "pricey", 4)
	c.Put(state.New(cheap, 1.0, wfst.StateID(0), false))
	c.Put(state.New(pricey, 9.0, wfst.StateID(1), false))

	evicted, ok := c.EvictWorst()
	require.True(t, ok)
	assert.Equal(t, 9.0, evicted.Cost)
	assert.Equal(t, 1, c.Len())

	_, stillThere := c.Lookup(cheap)
	assert.True(t, stillThere)
	_, gone := c.Lookup(pricey)
	assert.False(t, gone)
}

func TestRemoveSwapsLastElementIntoFreedSlot(t *testing.T) {
	c := column.New()
	keys := make([]statekey.Key, 0, 5)
	for i := 0; i < 5; i++ {
		k := keyFor(t, string(rune('a'+i)), 4)
		keys = append(keys, k)
		c.Put(state.New(k, float64(i), wfst.StateID(i), false))
	}

	require.True(t, c.Remove(keys[1]))
	assert.Equal(t, 4, c.Len())

	for i, k := range keys {
		if i == 1 {
			continue
		}
		got, ok := c.Lookup(k)
		require.True(t, ok, "key %d must remain reachable after an unrelated removal", i)
		assert.Equal(t, float64(i), got.Cost)
	}
}

func TestPruneBeamDropsStatesOutsideWidth(t *testing.T) {
	c := column.New()
	c.Put(state.New(keyFor(t, "best", 4), 1.0, wfst.StateID(0), false))
	c.Put(state.New(keyFor(t, "near", 4), 1.5, wfst.StateID(1), false))
	c.Put(state.New(keyFor(t, "far", 4), 10.0, wfst.StateID(2), false))

	c.PruneBeam(1.0)
	assert.Equal(t, 2, c.Len())
	_, stillThere := c.Lookup(keyFor(t, "near", 4))
	assert.True(t, stillThere)
	_, gone := c.Lookup(keyFor(t, "far", 4))
	assert.False(t, gone)
}
