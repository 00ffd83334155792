package column

import (
	"github.com/google/btree"

	"github.com/katalvlaran/ngramlattice/state"
	"github.com/katalvlaran/ngramlattice/statekey"
)

// btreeDegree is the branching factor handed to google/btree. 32 matches
// the default most btree.NewG callers in the wild use; Columns are small
// (bounded by prune_nbest/beam_width) so the exact degree barely matters.
const btreeDegree = 32

// orderedEntry is the value stored in the B-tree ordered view: a state's
// current cost and key, used both as the sort key and as a lookup back into
// the dense slice.
type orderedEntry struct {
	cost float64
	key  statekey.Key
	idx  int
}

func lessEntry(a, b orderedEntry) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.key.Hash() != b.key.Hash() {
		return a.key.Hash() < b.key.Hash()
	}
	// Extremely rare hash collision between distinct keys at equal cost:
	// fall back on the state's current slice index so the tree still sees a
	// strict order.
	return a.idx < b.idx
}

// Column is the set of States sharing one coverage popcount: a dense slice
// of states, a map from StateKey to slice index for O(1) lookup, and a
// cost-ordered B-tree view for ascending-cost traversal and pruning. Both
// views are kept in lockstep by every mutating method; callers never see
// one updated without the other.
type Column struct {
	states []state.State
	byKey  map[statekey.Key]int
	order  *btree.BTreeG[orderedEntry]
}

// New returns an empty Column.
func New() *Column {
	return &Column{
		byKey: make(map[statekey.Key]int),
		order: btree.NewG(btreeDegree, lessEntry),
	}
}

// Len reports how many states are currently enrolled.
func (c *Column) Len() int { return len(c.byKey) }

// Lookup returns the state enrolled under key, if any.
func (c *Column) Lookup(key statekey.Key) (state.State, bool) {
	idx, ok := c.byKey[key]
	if !ok {
		return state.State{}, false
	}
	return c.states[idx], true
}

// Put enrolls s, replacing any existing entry with the same key. Reports
// whether an existing entry was replaced and, if so, its previous cost —
// callers use this to decide whether a merge actually improved anything.
func (c *Column) Put(s state.State) (replaced bool, previousCost float64) {
	if idx, ok := c.byKey[s.Key]; ok {
		old := c.states[idx]
		c.order.Delete(orderedEntry{cost: old.Cost, key: old.Key, idx: idx})
		c.states[idx] = s
		c.order.ReplaceOrInsert(orderedEntry{cost: s.Cost, key: s.Key, idx: idx})
		return true, old.Cost
	}
	idx := len(c.states)
	c.states = append(c.states, s)
	c.byKey[s.Key] = idx
	c.order.ReplaceOrInsert(orderedEntry{cost: s.Cost, key: s.Key, idx: idx})
	return false, 0
}

// Remove drops the state enrolled under key, if any. It swap-removes the
// dense slot with the last element so the slice never leaves holes; the
// moved element's map/order entries are updated to its new index.
func (c *Column) Remove(key statekey.Key) bool {
	idx, ok := c.byKey[key]
	if !ok {
		return false
	}
	removed := c.states[idx]
	c.order.Delete(orderedEntry{cost: removed.Cost, key: removed.Key, idx: idx})
	delete(c.byKey, key)

	last := len(c.states) - 1
	if idx != last {
		moved := c.states[last]
		c.order.Delete(orderedEntry{cost: moved.Cost, key: moved.Key, idx: last})
		c.states[idx] = moved
		c.byKey[moved.Key] = idx
		c.order.ReplaceOrInsert(orderedEntry{cost: moved.Cost, key: moved.Key, idx: idx})
	}
	c.states = c.states[:last]
	return true
}

// Min returns the lowest-cost enrolled state.
func (c *Column) Min() (state.State, bool) {
	e, ok := c.order.Min()
	if !ok {
		return state.State{}, false
	}
	return c.states[e.idx], true
}

// Max returns the highest-cost enrolled state, the eviction candidate when
// an n-best or beam limit is exceeded.
func (c *Column) Max() (state.State, bool) {
	e, ok := c.order.Max()
	if !ok {
		return state.State{}, false
	}
	return c.states[e.idx], true
}

// Ascend visits every state in non-decreasing cost order, stopping early if
// visit returns false.
func (c *Column) Ascend(visit func(state.State) bool) {
	c.order.Ascend(func(e orderedEntry) bool {
		return visit(c.states[e.idx])
	})
}

// EvictWorst removes the highest-cost state and returns it. Used by the
// n-best pruning discipline: after inserting a new hypothesis, if Len()
// exceeds the configured limit, EvictWorst trims the column back down by
// one.
func (c *Column) EvictWorst() (state.State, bool) {
	worst, ok := c.Max()
	if !ok {
		return state.State{}, false
	}
	c.Remove(worst.Key)
	return worst, true
}

// PruneBeam removes every state whose cost exceeds the column's current
// minimum cost by more than width. width must be non-negative; a width of
// +Inf (or any value at least the cost spread) is a no-op.
func (c *Column) PruneBeam(width float64) {
	best, ok := c.Min()
	if !ok {
		return
	}
	bound := best.Cost + width
	var stale []statekey.Key
	c.order.Ascend(func(e orderedEntry) bool {
		if e.cost > bound {
			stale = append(stale, e.key)
		}
		return true
	})
	for _, k := range stale {
		c.Remove(k)
	}
}
