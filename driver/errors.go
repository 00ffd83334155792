package driver

import "errors"

// ConfigError wraps a sentinel below with the offending value, distinguishing
// a fatal-at-startup configuration problem from a per-sentence I/O or parse
// failure.
type ConfigError struct {
	Err   error
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return "driver: config: " + e.Field + ": " + e.Err.Error()
	}
	return "driver: config: " + e.Field + "=" + e.Value + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }

var (
	// ErrMissingField indicates a required flag was left empty.
	ErrMissingField = errors.New("required field is empty")
	// ErrNegativePruneThreshold is rejected at this layer rather than inside
	// lattice.Config.validate: a negative threshold is a CLI input-shape
	// problem, not a cross-field conflict within the lattice package's own
	// configuration (see DESIGN.md's Open Question #2 decision).
	ErrNegativePruneThreshold = errors.New("prune_threshold must be non-negative")
	// ErrUnknownTask indicates a task other than "decode" or "tune".
	ErrUnknownTask = errors.New("task must be \"decode\" or \"tune\"")
	// ErrConflictingPruneModes mirrors lattice.ErrConflictingPruneModes at
	// the config layer, so the driver rejects the conflict before opening
	// any file rather than waiting for the first lattice.New call.
	ErrConflictingPruneModes = errors.New("prune_nbest and prune_threshold cannot both be configured")
	// ErrUnknownChopStrategy indicates a chop strategy this driver does not
	// implement.
	ErrUnknownChopStrategy = errors.New("chop strategy must be one of silly, punctuation, from_file, none")
	// ErrUnknownConstraintsStrategy indicates a constraints strategy this
	// driver does not implement.
	ErrUnknownConstraintsStrategy = errors.New("constraints strategy must be one of from_file, all_reorderable")
	// ErrMalformedWeightString indicates a weight string entry that is not
	// "name=float".
	ErrMalformedWeightString = errors.New("malformed weight string entry")
)
