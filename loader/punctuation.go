package loader

import (
	"bufio"
	"os"
)

// LoadPunctuation parses a punctuation file, one symbol per line, into a
// lookup set for PunctuationChop. Grounded on
// PunctuationChopper::loadPunctuation.
func LoadPunctuation(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out[sc.Text()] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
