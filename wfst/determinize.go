package wfst

import (
	"sort"
	"strconv"
	"strings"
)

// subsetMember is one (original state, residual weight) pair inside a
// determinized state.
type subsetMember struct {
	state StateID
	w     Weight
}

// subsetKey canonicalizes a subset for deduplication: sorted by original
// state id, including the residual weight so that two subsets with the
// same states but different residuals are kept distinct (this matters for
// weighted determinization correctness).
func subsetKey(members []subsetMember) string {
	sorted := append([]subsetMember(nil), members...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].state < sorted[j].state })
	var b strings.Builder
	for _, m := range sorted {
		b.WriteString(strconv.Itoa(int(m.state)))
		b.WriteByte(':')
		b.WriteString(m.w.String())
		b.WriteByte('|')
	}
	return b.String()
}

// Determinize returns a new, equivalent Builder with at most one arc per
// (state, label) pair, built via weighted subset construction (grounded on
// the reference pack's lazy-DFA subset-construction builder, generalized
// from byte labels to weighted word-id labels — see DESIGN.md). The input
// must already be epsilon-free (run RmEpsilon first if deletion arcs may
// have been added).
func (b *Builder) Determinize() (*Builder, error) {
	start, err := b.Start()
	if err != nil {
		return nil, err
	}

	out := NewBuilder(b.zero, b.one)
	startID := out.AddState()
	if err := out.SetStart(startID); err != nil {
		return nil, err
	}

	startSubset := []subsetMember{{state: start, w: b.one}}
	subsetOf := map[string]StateID{subsetKey(startSubset): startID}
	members := map[StateID][]subsetMember{startID: startSubset}

	queue := []StateID{startID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Gather, per label, the set of (target, weight) contributions from
		// every member of this subset.
		perLabel := map[int32]map[StateID]Weight{}
		finalW := b.zero
		for _, m := range members[cur] {
			st := b.states[m.state]
			if st.final {
				finalW = finalW.Plus(m.w.Times(st.finalWeight))
			}
			for _, idx := range st.out {
				a := b.arcs[idx]
				bucket, ok := perLabel[a.ILabel]
				if !ok {
					bucket = map[StateID]Weight{}
					perLabel[a.ILabel] = bucket
				}
				cand := m.w.Times(a.Weight)
				if existing, ok := bucket[a.To]; ok {
					bucket[a.To] = existing.Plus(cand)
				} else {
					bucket[a.To] = cand
				}
			}
		}
		if !finalW.IsZero() {
			if err := out.SetFinal(cur, finalW); err != nil {
				return nil, err
			}
		}

		labels := make([]int32, 0, len(perLabel))
		for l := range perLabel {
			labels = append(labels, l)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

		for _, l := range labels {
			bucket := perLabel[l]
			// leaving weight = Plus over every contribution in this bucket.
			leaving := b.zero
			for _, w := range bucket {
				leaving = leaving.Plus(w)
			}
			next := make([]subsetMember, 0, len(bucket))
			for t, w := range bucket {
				next = append(next, subsetMember{state: t, w: w.Divide(leaving)})
			}
			key := subsetKey(next)
			to, ok := subsetOf[key]
			if !ok {
				to = out.AddState()
				subsetOf[key] = to
				members[to] = next
				queue = append(queue, to)
			}
			if _, err := out.AddArc(cur, l, l, leaving, to); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
