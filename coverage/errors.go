package coverage

import "errors"

var (
	// ErrTooLong indicates an input sentence longer than MaxLen positions.
	ErrTooLong = errors.New("coverage: input length exceeds maximum coverage width")
	// ErrPositionOutOfRange indicates a bit index outside [0, Len()).
	ErrPositionOutOfRange = errors.New("coverage: position out of range")
	// ErrLengthMismatch indicates an operation between two Coverages of
	// different declared lengths.
	ErrLengthMismatch = errors.New("coverage: length mismatch")
)
