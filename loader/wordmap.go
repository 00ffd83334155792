package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ngramlattice/ngram"
)

// LoadWordMap parses a word map file: lines of "id<TAB>word", one entry
// per word id. A duplicate id mapping to the same word is accepted; a
// duplicate id mapping to a different word is ErrVocabConflict. Grounded
// on Vocab::loadVocab.
func LoadWordMap(path string) (map[ngram.WordID]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[ngram.WordID]string)
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf(`%w: %s:%d: expected "id<TAB>word", got %q`, ErrMalformedLine, path, lineNo, line)
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedLine, path, lineNo, err)
		}
		word := parts[1]
		wid := ngram.WordID(id)
		if existing, ok := out[wid]; ok && existing != word {
			return nil, fmt.Errorf("%w: %s:%d: id %d already mapped to %q, got %q", ErrVocabConflict, path, lineNo, id, existing, word)
		}
		out[wid] = word
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
