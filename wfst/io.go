package wfst

import (
	"encoding/gob"
	"io"
)

func init() {
	gob.Register(TropicalWeight(0))
	gob.Register(SparseTupleWeight{})
}

// serializedState and serializedBuilder mirror Builder's private fields in
// an exported, gob-friendly shape: a flat gob-encoded state/arc table, since
// no pack repo ships an OpenFST binary format reader to target instead.
type serializedState struct {
	Final       bool
	FinalWeight Weight
}

type serializedBuilder struct {
	States   []serializedState
	Arcs     []Arc
	Start    StateID
	HasStart bool
	Zero     Weight
	One      Weight
}

// Write serializes the transducer to w.
func (b *Builder) Write(w io.Writer) error {
	sb := serializedBuilder{
		Arcs:     b.arcs,
		Start:    b.start,
		HasStart: b.hasStart,
		Zero:     b.zero,
		One:      b.one,
	}
	sb.States = make([]serializedState, len(b.states))
	for i, st := range b.states {
		sb.States[i] = serializedState{Final: st.final, FinalWeight: st.finalWeight}
	}
	return gob.NewEncoder(w).Encode(sb)
}

// Read deserializes a transducer previously written by Write.
func Read(r io.Reader) (*Builder, error) {
	var sb serializedBuilder
	if err := gob.NewDecoder(r).Decode(&sb); err != nil {
		return nil, err
	}
	b := &Builder{
		arcs:     sb.Arcs,
		start:    sb.Start,
		hasStart: sb.HasStart,
		zero:     sb.Zero,
		one:      sb.One,
	}
	b.states = make([]wfstState, len(sb.States))
	for i, st := range sb.States {
		b.states[i] = wfstState{final: st.Final, finalWeight: st.FinalWeight}
	}
	for idx, a := range b.arcs {
		b.states[a.From].out = append(b.states[a.From].out, idx)
	}
	return b, nil
}
