package wfst

import (
	"sort"
	"strconv"
	"strings"
)

// Minimize merges equivalent states of an already-deterministic Builder
// (run Determinize first) using Moore-style partition refinement: states
// start partitioned by (final, finalWeight) and are iteratively split apart
// until every state in a partition has, for every label, an identically
// weighted transition into the same target partition. This is a correct
// minimization for a deterministic weighted automaton without requiring a
// separate weight-pushing pass first, at the cost of sometimes merging
// fewer states than a canonical (pushed) minimization would — see
// DESIGN.md.
func (b *Builder) Minimize() error {
	if !b.isDeterministic() {
		return ErrNotDeterministic
	}
	n := len(b.states)
	if n == 0 {
		return nil
	}

	partition := make([]int, n)
	initGroup := map[string]int{}
	for i, st := range b.states {
		k := ""
		if st.final {
			k = "F" + st.finalWeight.String()
		}
		g, ok := initGroup[k]
		if !ok {
			g = len(initGroup)
			initGroup[k] = g
		}
		partition[i] = g
	}

	for {
		sigToGroup := map[string]int{}
		newPartition := make([]int, n)
		changed := false
		for s := 0; s < n; s++ {
			sig := b.signature(StateID(s), partition)
			g, ok := sigToGroup[sig]
			if !ok {
				g = len(sigToGroup)
				sigToGroup[sig] = g
			}
			newPartition[s] = g
			if g != partition[s] {
				changed = true
			}
		}
		partition = newPartition
		if !changed {
			break
		}
	}

	numGroups := 0
	for _, g := range partition {
		if g+1 > numGroups {
			numGroups = g + 1
		}
	}

	out := NewBuilder(b.zero, b.one)
	for i := 0; i < numGroups; i++ {
		out.AddState()
	}
	rep := make([]int, numGroups)
	for i := range rep {
		rep[i] = -1
	}
	for s, g := range partition {
		if rep[g] == -1 {
			rep[g] = s
		}
	}
	for g, s := range rep {
		final, w := b.IsFinal(StateID(s))
		if final {
			if err := out.SetFinal(StateID(g), w); err != nil {
				return err
			}
		}
		for _, idx := range b.states[s].out {
			a := b.arcs[idx]
			if _, err := out.AddArc(StateID(g), a.ILabel, a.OLabel, a.Weight, StateID(partition[a.To])); err != nil {
				return err
			}
		}
	}
	if b.hasStart {
		if err := out.SetStart(StateID(partition[b.start])); err != nil {
			return err
		}
	}

	*b = *out
	return nil
}

// signature is the refinement key for Minimize: the state's current group
// plus, for every outgoing label, the (target group, weight) pair.
func (b *Builder) signature(s StateID, partition []int) string {
	var bld strings.Builder
	bld.WriteString(strconv.Itoa(partition[s]))
	bld.WriteByte(';')
	arcs := append([]Arc(nil), func() []Arc {
		out := make([]Arc, len(b.states[s].out))
		for i, idx := range b.states[s].out {
			out[i] = b.arcs[idx]
		}
		return out
	}()...)
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].ILabel < arcs[j].ILabel })
	for _, a := range arcs {
		bld.WriteString(strconv.Itoa(int(a.ILabel)))
		bld.WriteByte(':')
		bld.WriteString(strconv.Itoa(partition[a.To]))
		bld.WriteByte(':')
		bld.WriteString(a.Weight.String())
		bld.WriteByte(',')
	}
	return bld.String()
}

// isDeterministic reports whether every state has at most one outgoing arc
// per ILabel.
func (b *Builder) isDeterministic() bool {
	for _, st := range b.states {
		seen := map[int32]bool{}
		for _, idx := range st.out {
			l := b.arcs[idx].ILabel
			if seen[l] {
				return false
			}
			seen[l] = true
		}
	}
	return true
}
