package loader

import "errors"

var (
	// ErrMalformedLine wraps a parse failure with file and line context; it
	// covers fewer than 3 fields, a non-integer token, and a coverage length
	// mismatch in the candidate file, plus the analogous shape failures in
	// the other four line formats.
	ErrMalformedLine = errors.New("loader: malformed line")
	// ErrCandidateCrossesChunk indicates a candidate's coverage positions
	// span more than one chop-defined chunk, which the chunk-assignment
	// step cannot place in a single CandidateMap bucket.
	ErrCandidateCrossesChunk = errors.New("loader: candidate coverage crosses a chunk boundary")
	// ErrVocabConflict indicates the same word id maps to two different
	// words within one word-map file.
	ErrVocabConflict = errors.New("loader: conflicting word map entry")
	// ErrEmptyChopFile indicates a chop line with zero integers, which
	// cannot define even a single chunk (it must contain at least n).
	ErrEmptyChopFile = errors.New("loader: chop line has no chunk boundaries")
)
