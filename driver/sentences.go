package driver

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ngramlattice/ngram"
)

// LoadSentences reads the sentence file: one sentence per line, each a
// space-separated list of integer word IDs. Line i (0-based) is sentence id
// i+1, grounded on Decoder::parseInput.
func LoadSentences(path string) ([][]ngram.WordID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out [][]ngram.WordID
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		words := make([]ngram.WordID, len(fields))
		for i, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("driver: sentence file %s:%d: %v", path, lineNo, err)
			}
			words[i] = ngram.WordID(v)
		}
		out = append(out, words)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
