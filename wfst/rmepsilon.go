package wfst

// RmEpsilon removes every epsilon-labeled arc (ILabel == Epsilon), folding
// its weight into the non-epsilon arcs and final weights it made reachable.
// Required whenever deletion rules produced epsilon arcs, before
// determinizing or writing out the transducer.
func (b *Builder) RmEpsilon() {
	n := len(b.states)
	// closure[s] holds, for every state reachable from s via epsilon arcs
	// only (including s itself via the semiring one), the accumulated
	// epsilon-path weight.
	closure := make([]map[StateID]Weight, n)
	for s := 0; s < n; s++ {
		closure[s] = b.epsilonClosure(StateID(s))
	}

	newStates := make([]wfstState, n)
	for s := 0; s < n; s++ {
		finalW := b.zero
		final := false
		for t, w := range closure[s] {
			if b.states[t].final {
				final = true
				finalW = finalW.Plus(w.Times(b.states[t].finalWeight))
			}
		}
		newStates[s] = wfstState{final: final, finalWeight: finalW}
	}

	var newArcs []Arc
	for s := 0; s < n; s++ {
		for t, cw := range closure[s] {
			for _, idx := range b.states[t].out {
				a := b.arcs[idx]
				if a.ILabel == Epsilon {
					continue
				}
				ai := len(newArcs)
				newArcs = append(newArcs, Arc{
					From: StateID(s), To: a.To, ILabel: a.ILabel, OLabel: a.OLabel,
					Weight: cw.Times(a.Weight),
				})
				newStates[s].out = append(newStates[s].out, ai)
			}
		}
	}

	b.states = newStates
	b.arcs = newArcs
}

// epsilonClosure returns every state reachable from s by epsilon arcs only
// (s included, with weight One), mapped to the accumulated weight of the
// cheapest such epsilon path (Plus over alternatives).
func (b *Builder) epsilonClosure(s StateID) map[StateID]Weight {
	out := map[StateID]Weight{s: b.one}
	stack := []StateID{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w := out[cur]
		for _, idx := range b.states[cur].out {
			a := b.arcs[idx]
			if a.ILabel != Epsilon {
				continue
			}
			cand := w.Times(a.Weight)
			if existing, ok := out[a.To]; ok {
				merged := existing.Plus(cand)
				if merged.String() == existing.String() {
					continue
				}
				out[a.To] = merged
			} else {
				out[a.To] = cand
			}
			stack = append(stack, a.To)
		}
	}
	return out
}
