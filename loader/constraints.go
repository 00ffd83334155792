package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadConstraints parses a constraints file: one line per sentence, a bit
// string of length k (the number of chunks for that sentence). '1' means
// the chunk at that index is reorderable; '0' means it is frozen and must
// be used verbatim as its sole candidate. Line i (0-based) is sentence id
// i+1's constraint vector, grounded on ChunkConstraints's 1-based
// id-to-line indexing.
func LoadConstraints(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out [][]bool
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		bits := make([]bool, len(line))
		for i, c := range line {
			switch c {
			case '1':
				bits[i] = true
			case '0':
				bits[i] = false
			default:
				return nil, fmt.Errorf("%w: %s:%d: expected a bit string, got %q", ErrMalformedLine, path, lineNo, line)
			}
		}
		out = append(out, bits)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AllReorderable returns a constraint vector of k trues, the
// "all_reorderable" constraints strategy.
func AllReorderable(k int) []bool {
	out := make([]bool, k)
	for i := range out {
		out[i] = true
	}
	return out
}
