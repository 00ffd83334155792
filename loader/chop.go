package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadChops parses a chop file: one line per sentence, each a
// space-separated ascending list of integers, the last equal to n, marking
// where each chunk ends. Line i (0-based) is sentence id i+1's boundary
// list, matching the 1-based sentence-id convention LoadConstraints uses.
func LoadChops(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out [][]int
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: %s:%d", ErrEmptyChopFile, path, lineNo)
		}
		positions := make([]int, len(fields))
		prev := -1
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedLine, path, lineNo, err)
			}
			if v <= prev {
				return nil, fmt.Errorf("%w: %s:%d: boundaries must be strictly ascending", ErrMalformedLine, path, lineNo)
			}
			positions[i] = v
			prev = v
		}
		out = append(out, positions)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SillyChop chops n tokens every maxWords words, returning the ascending
// chunk-end boundary list LoadCandidates/LoadChops use (the final entry
// always equals n). Grounded on SillyChopper::chop.
func SillyChop(n, maxWords int) []int {
	if maxWords <= 0 || n == 0 {
		return []int{n}
	}
	var out []int
	for i := maxWords; i < n; i += maxWords {
		out = append(out, i)
	}
	return append(out, n)
}

// PunctuationChop chops at a punctuation word or after maxWords words,
// whichever comes first, per word id in input. Grounded on
// PunctuationChopper::chop.
func PunctuationChop(input []int32, maxWords int, isPunctuation func(wordID int32) bool) []int {
	var out []int
	numWords := 0
	for i, w := range input {
		numWords++
		if numWords >= maxWords || isPunctuation(w) {
			if i < len(input)-1 {
				out = append(out, i+1)
			}
			numWords = 0
		}
	}
	return append(out, len(input))
}
