package wfst

// Connect removes every state that is not both reachable from the start
// state and able to reach some final state, and every arc touching a
// removed state. It is a no-op on an empty (no start) builder.
func (b *Builder) Connect() {
	if !b.hasStart {
		return
	}
	reachable := b.reachableFromStart()
	coaccessible := b.reachableToFinal()

	keep := make([]bool, len(b.states))
	for i := range keep {
		keep[i] = reachable[i] && coaccessible[i]
	}
	b.rebuildKeeping(keep)
}

func (b *Builder) reachableFromStart() []bool {
	seen := make([]bool, len(b.states))
	if !b.hasStart {
		return seen
	}
	stack := []StateID{b.start}
	seen[b.start] = true
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, idx := range b.states[s].out {
			t := b.arcs[idx].To
			if !seen[t] {
				seen[t] = true
				stack = append(stack, t)
			}
		}
	}
	return seen
}

func (b *Builder) reachableToFinal() []bool {
	seen := make([]bool, len(b.states))
	rev := make(map[StateID][]StateID, len(b.states))
	var stack []StateID
	for i, st := range b.states {
		if st.final {
			seen[i] = true
			stack = append(stack, StateID(i))
		}
	}
	for _, a := range b.arcs {
		rev[a.To] = append(rev[a.To], a.From)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[s] {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}
	return seen
}

// rebuildKeeping renumbers states, keeping only those flagged true, and
// drops any arc touching a removed state. Shared by Connect and Prune.
func (b *Builder) rebuildKeeping(keep []bool) {
	remap := make(map[StateID]StateID, len(b.states))
	var newStates []wfstState
	for i, st := range b.states {
		if keep[i] {
			remap[StateID(i)] = StateID(len(newStates))
			newStates = append(newStates, wfstState{final: st.final, finalWeight: st.finalWeight})
		}
	}
	var newArcs []Arc
	for _, a := range b.arcs {
		if !keep[a.From] || !keep[a.To] {
			continue
		}
		from, to := remap[a.From], remap[a.To]
		idx := len(newArcs)
		newArcs = append(newArcs, Arc{From: from, To: to, ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight})
		newStates[from].out = append(newStates[from].out, idx)
	}

	b.states = newStates
	b.arcs = newArcs
	if b.hasStart {
		if ns, ok := remap[b.start]; ok {
			b.start = ns
		} else {
			b.hasStart = false
		}
	}
}
