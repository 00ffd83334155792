package wfst

// shortestDistance computes, for every state, the semiring-sum (Plus) over
// every path's semiring-product (Times) of weights from `from` to that
// state (forward=true) or from that state to some final state
// (forward=false). The lattice built by this module's only producer
// (package lattice) is always a DAG (extension strictly increases coverage
// popcount), so a bounded fixpoint of NumStates passes always converges;
// this also tolerates the rare non-DAG case (e.g. after epsilon removal
// introduces no cycles, but a future producer might) by simply running the
// same number of relaxation passes as a Bellman-Ford bound.
func (b *Builder) shortestDistance(forward bool) []Weight {
	n := len(b.states)
	dist := make([]Weight, n)
	for i := range dist {
		dist[i] = b.zero
	}
	if forward {
		if b.hasStart {
			dist[b.start] = b.one
		}
	} else {
		for i, st := range b.states {
			if st.final {
				dist[i] = st.finalWeight
			}
		}
	}

	relax := func() bool {
		changed := false
		for i := range b.arcs {
			a := b.arcs[i]
			if forward {
				cand := dist[a.From].Times(a.Weight)
				merged := dist[a.To].Plus(cand)
				if merged.String() != dist[a.To].String() {
					dist[a.To] = merged
					changed = true
				}
			} else {
				cand := a.Weight.Times(dist[a.To])
				merged := dist[a.From].Plus(cand)
				if merged.String() != dist[a.From].String() {
					dist[a.From] = merged
					changed = true
				}
			}
		}
		return changed
	}

	for iter := 0; iter < n+1; iter++ {
		if !relax() {
			break
		}
	}
	return dist
}
