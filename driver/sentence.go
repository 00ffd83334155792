package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ngramlattice/coverage"
	"github.com/katalvlaran/ngramlattice/lattice"
	"github.com/katalvlaran/ngramlattice/lm"
	"github.com/katalvlaran/ngramlattice/loader"
	"github.com/katalvlaran/ngramlattice/ngram"
)

// sentenceResources holds the file-backed inputs loaded once per Run and
// shared read-only across every worker: the punctuation set, the word map,
// and (when the corresponding strategy is "from_file") the chop and
// constraints files. A nil/empty zero value is valid when the matching
// strategy does not need it.
type sentenceResources struct {
	Punctuation map[string]struct{}
	WordMap     map[ngram.WordID]string
	ChopFile    [][]int
	Constraints [][]bool
	SharedLM    lm.Model // non-nil when cfg.LMFile is set
}

// candidatesFilePath and lmFilePath mirror Decoder::decode's path
// construction (ngrams_/<id>.r.gz and lm_/<id>/lm.4.gz), minus the gzip
// layer: no pack repo ships a gzip-transparent line scanner, so candidate
// and LM files are read as plain text (see DESIGN.md).
func candidatesFilePath(dir string, id int) string {
	return filepath.Join(dir, strconv.Itoa(id)+".r")
}

func lmFilePath(dir string, id int) string {
	return filepath.Join(dir, strconv.Itoa(id), "lm.4")
}

func outputFilePath(dir string, id int) string {
	return filepath.Join(dir, strconv.Itoa(id)+".fst")
}

// processSentence runs the full per-sentence pipeline: resolve chop and
// constraints, load candidates, build a Lattice, extend it chunk by chunk,
// finalize, compact, and write. Grounded on the templated
// Decoder::decode(inputSentence, splitPositions, ngramLoader, id, lattice)
// loop shape.
func processSentence(cfg Config, res sentenceResources, sentence []ngram.WordID, id int, log zerolog.Logger) error {
	model := res.SharedLM
	if model == nil {
		f, err := os.Open(lmFilePath(cfg.LMDir, id))
		if err != nil {
			return fmt.Errorf("driver: sentence %d: opening lm file: %w", id, err)
		}
		defer f.Close()
		model, err = lm.LoadARPA(f)
		if err != nil {
			return fmt.Errorf("driver: sentence %d: loading lm: %w", id, err)
		}
	}

	chopPositions, err := resolveChopPositions(cfg, id, sentence, res.Punctuation, res.WordMap, res.ChopFile)
	if err != nil {
		return fmt.Errorf("driver: sentence %d: %w", id, err)
	}
	constraints, err := resolveConstraints(cfg, id, len(chopPositions), res.Constraints)
	if err != nil {
		return fmt.Errorf("driver: sentence %d: %w", id, err)
	}

	candidates, err := loader.LoadCandidates(candidatesFilePath(cfg.CandidatesDir, id), len(sentence), chopPositions)
	if err != nil {
		return fmt.Errorf("driver: sentence %d: loading candidates: %w", id, err)
	}
	candidates, err = freezeChunks(candidates, constraints, sentence, chopPositions)
	if err != nil {
		return fmt.Errorf("driver: sentence %d: %w", id, err)
	}

	lcfg := lattice.Config{
		MaxOverlap:     cfg.MaxOverlap,
		PruneNBest:     cfg.PruneNBest,
		PruneThreshold: cfg.PruneThreshold,
		AllowDeletion:  cfg.AllowDeletion,
		Semiring:       cfg.Semiring(),
	}
	lat, err := lattice.New(sentence, model, cfg.Features, cfg.Weights, lcfg)
	if err != nil {
		return fmt.Errorf("driver: sentence %d: %w", id, err)
	}

	chunkID := 0
	splitPosition := chopPositions[0]
	for i := 0; i < len(sentence); i++ {
		if i >= splitPosition {
			chunkID++
			if chunkID < len(chopPositions) {
				splitPosition = chopPositions[chunkID]
			} else {
				splitPosition = len(sentence)
			}
		}
		if err := lat.Extend(i, candidates, lattice.ExtendOptions{ChunkID: chunkID}); err != nil {
			return fmt.Errorf("driver: sentence %d: extending column %d: %w", id, i, err)
		}
	}

	if err := lat.MarkFinal(); err != nil {
		return fmt.Errorf("driver: sentence %d: %w", id, err)
	}
	if cfg.AddInput {
		if err := lat.AddInputFallback(); err != nil {
			return fmt.Errorf("driver: sentence %d: %w", id, err)
		}
	}
	if cfg.WhenLostInput {
		if maxIdx, noLoss := lat.WhenLostInput(); !noLoss {
			log.Warn().Int("sentence", id).Int("last_column_with_input_prefix", maxIdx).Msg("input hypothesis lost during extension")
		}
	}
	if err := lat.Compact(cfg.DumpPrune); err != nil {
		return fmt.Errorf("driver: sentence %d: compacting: %w", id, err)
	}

	outPath := outputFilePath(cfg.OutputDir, id)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("driver: sentence %d: %w", id, err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("driver: sentence %d: creating output: %w", id, err)
	}
	defer out.Close()
	if err := lat.Builder().Write(out); err != nil {
		return fmt.Errorf("driver: sentence %d: writing output: %w", id, err)
	}
	return nil
}

// freezeChunks overrides the candidate list of every non-reorderable chunk
// with exactly one candidate: the chunk's own tokens, in their original
// order, covering exactly its span. Grounded on spec.md §6's constraints
// file description ("0 ⇒ frozen: the input chunk is used verbatim as the
// sole candidate").
func freezeChunks(candidates ngram.CandidateMap, constraints []bool, sentence []ngram.WordID, chopPositions []int) (ngram.CandidateMap, error) {
	out := make(ngram.CandidateMap, len(candidates))
	for k, v := range candidates {
		out[k] = v
	}
	start := 0
	n := len(sentence)
	for k, end := range chopPositions {
		if k < len(constraints) && !constraints[k] {
			rule := append(ngram.Rule(nil), sentence[start:end]...)
			positions := make([]int, 0, end-start)
			for p := start; p < end; p++ {
				positions = append(positions, p)
			}
			cov, err := coverage.FromPositions(n, positions)
			if err != nil {
				return nil, err
			}
			out[k] = []ngram.Candidate{{Rule: rule, Coverages: []coverage.Coverage{cov}}}
		}
		start = end
	}
	return out, nil
}
