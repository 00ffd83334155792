package driver

import (
	"fmt"

	"github.com/katalvlaran/ngramlattice/loader"
	"github.com/katalvlaran/ngramlattice/ngram"
)

// resolveChopPositions computes sentence id's chop boundary list according
// to cfg.ChopStrategy, grounded on Decoder's constructor-time chopper
// selection (Chop.cpp's Chopper/SillyChopper/PunctuationChopper/
// ChopperFromFile hierarchy, collapsed here into one switch since Go has no
// call for a strategy object when the strategies are this small).
func resolveChopPositions(cfg Config, id int, sentence []ngram.WordID, punctuation map[string]struct{}, wordMap map[ngram.WordID]string, chopFile [][]int) ([]int, error) {
	n := len(sentence)
	switch cfg.ChopStrategy {
	case "silly":
		return loader.SillyChop(n, cfg.MaxChop), nil
	case "punctuation":
		input := make([]int32, n)
		for i, w := range sentence {
			input[i] = int32(w)
		}
		isPunct := func(w int32) bool {
			word, ok := wordMap[ngram.WordID(w)]
			if !ok {
				return false
			}
			_, punct := punctuation[word]
			return punct
		}
		return loader.PunctuationChop(input, cfg.MaxChop, isPunct), nil
	case "from_file":
		if id-1 >= len(chopFile) || id-1 < 0 {
			return nil, fmt.Errorf("driver: chop file has no line for sentence %d", id)
		}
		return chopFile[id-1], nil
	default: // "none" or ""
		return []int{n}, nil
	}
}
