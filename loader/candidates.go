package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ngramlattice/coverage"
	"github.com/katalvlaran/ngramlattice/ngram"
)

// LoadCandidates parses one n-gram candidate file and assigns every parsed
// rule to the chop-defined chunk its coverage positions fall entirely
// within. The first two lines of the file (structural rewrite-rule header)
// are skipped unconditionally. Each remaining line must have at least 3
// whitespace-separated fields; only the second (coverage_positions, an
// underscore-separated ascending list of 0-based input positions) and the
// third (ngram_tokens, an underscore-separated list of integer word ids)
// are consumed.
//
// chopPositions is the chunk-boundary list as produced by LoadChops or a
// Chopper: k ascending integers, the last equal to n, defining chunk i as
// the half-open range [starts[i], chopPositions[i]) with starts[0] == 0 and
// starts[i] == chopPositions[i-1] for i > 0.
//
// Rules with identical token sequences collapse into one ngram.Candidate,
// their Coverages appended in file order, per ngram.Rule.Key's contract.
func LoadCandidates(path string, n int, chopPositions []int) (ngram.CandidateMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if len(chopPositions) == 0 {
		chopPositions = []int{n} // "none" chop strategy: the whole input is one chunk
	}
	starts := chunkStarts(chopPositions)
	result := make(ngram.CandidateMap)
	byChunkAndRule := make(map[int]map[string]int) // chunk -> rule key -> index into result[chunk]

	sc := bufio.NewScanner(f)
	lineNo := 0
	for i := 0; i < 2 && sc.Scan(); i++ {
		lineNo++
	}

	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: %s:%d: need >= 3 fields, got %d", ErrMalformedLine, path, lineNo, len(fields))
		}

		positions, err := parseUnderscoreInts(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: coverage_positions: %v", ErrMalformedLine, path, lineNo, err)
		}
		tokens, err := parseUnderscoreInts(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: ngram_tokens: %v", ErrMalformedLine, path, lineNo, err)
		}

		cov, err := coverage.FromPositions(n, positions)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedLine, path, lineNo, err)
		}

		chunkID, err := chunkFor(starts, chopPositions, positions)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}

		rule := make(ngram.Rule, len(tokens))
		for i, tok := range tokens {
			rule[i] = ngram.WordID(tok)
		}
		key := rule.Key()

		if byChunkAndRule[chunkID] == nil {
			byChunkAndRule[chunkID] = make(map[string]int)
		}
		if idx, ok := byChunkAndRule[chunkID][key]; ok {
			result[chunkID][idx].Coverages = append(result[chunkID][idx].Coverages, cov)
			continue
		}
		byChunkAndRule[chunkID][key] = len(result[chunkID])
		result[chunkID] = append(result[chunkID], ngram.Candidate{Rule: rule, Coverages: []coverage.Coverage{cov}})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// chunkStarts derives each chunk's start position from the chop boundary
// list: chunk 0 starts at 0, chunk i (i>0) starts where chunk i-1 ends.
func chunkStarts(chopPositions []int) []int {
	starts := make([]int, len(chopPositions))
	prev := 0
	for i, end := range chopPositions {
		starts[i] = prev
		prev = end
	}
	return starts
}

// chunkFor finds the single chunk whose [start, end) span contains every
// position in positions, returning ErrCandidateCrossesChunk if no chunk
// covers them all.
func chunkFor(starts, ends, positions []int) (int, error) {
	if len(positions) == 0 {
		return 0, fmt.Errorf("%w: empty coverage", ErrMalformedLine)
	}
	lo, hi := positions[0], positions[0]
	for _, p := range positions[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	for i := range starts {
		if lo >= starts[i] && hi < ends[i] {
			return i, nil
		}
	}
	return 0, ErrCandidateCrossesChunk
}

func parseUnderscoreInts(field string) ([]int, error) {
	parts := strings.Split(field, "_")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
