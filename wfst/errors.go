package wfst

import "errors"

var (
	// ErrUnknownState indicates an operation referenced a StateID that was
	// never returned by AddState.
	ErrUnknownState = errors.New("wfst: unknown state id")
	// ErrNoStartState indicates an operation required a start state to have
	// been set via SetStart but none was.
	ErrNoStartState = errors.New("wfst: no start state set")
	// ErrNotDeterministic indicates Minimize was called on a transducer
	// that Determinize had not been run on first.
	ErrNotDeterministic = errors.New("wfst: minimize requires a deterministic transducer")
)
