package driver

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ngramlattice/lm"
	"github.com/katalvlaran/ngramlattice/loader"
)

// Run validates cfg, loads the shared per-run resources (sentence file,
// punctuation set, word map, chop/constraints files, and the LM when a
// single shared ARPA file is configured), then processes every sentence
// named by cfg.Range over a bounded worker pool.
//
// Per spec.md §7's recovery policy, an I/O or malformed-candidate error for
// one sentence is logged and that sentence is skipped; the run continues.
// An invariant-violation panic from lattice/column is not recovered here
// and propagates to abort the whole run, matching "bug; abort with a
// diagnostic".
func Run(cfg Config, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	sentences, err := LoadSentences(cfg.SentenceFile)
	if err != nil {
		return fmt.Errorf("driver: loading sentence file: %w", err)
	}
	ids, err := loader.ParseRange(cfg.Range)
	if err != nil {
		return fmt.Errorf("driver: parsing range: %w", err)
	}
	if ids == nil {
		ids = make([]int, len(sentences))
		for i := range sentences {
			ids[i] = i + 1
		}
	}

	res, err := loadSharedResources(cfg)
	if err != nil {
		return fmt.Errorf("driver: loading shared resources: %w", err)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, id := range ids {
		if id < 1 || id > len(sentences) {
			log.Error().Int("sentence", id).Msg("sentence id out of range, skipping")
			continue
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			defer func() { <-sem }()

			sentenceLog := log.With().Int("sentence", id).Logger()
			sentenceLog.Info().Msg("processing sentence")
			if err := processSentence(cfg, res, sentences[id-1], id, sentenceLog); err != nil {
				sentenceLog.Error().Err(err).Msg("sentence failed, skipping")
			}
		}(id)
	}
	wg.Wait()
	return nil
}

func loadSharedResources(cfg Config) (sentenceResources, error) {
	var res sentenceResources

	if cfg.PunctuationFile != "" {
		set, err := loader.LoadPunctuation(cfg.PunctuationFile)
		if err != nil {
			return res, err
		}
		res.Punctuation = set
	}
	if cfg.WordMap != "" {
		m, err := loader.LoadWordMap(cfg.WordMap)
		if err != nil {
			return res, err
		}
		res.WordMap = m
	}
	if cfg.ChopStrategy == "from_file" {
		chops, err := loader.LoadChops(cfg.ChopFile)
		if err != nil {
			return res, err
		}
		res.ChopFile = chops
	}
	if cfg.ConstraintsStrategy == "from_file" {
		cs, err := loader.LoadConstraints(cfg.ConstraintsFile)
		if err != nil {
			return res, err
		}
		res.Constraints = cs
	}
	if cfg.LMFile != "" {
		f, err := os.Open(cfg.LMFile)
		if err != nil {
			return res, err
		}
		defer f.Close()
		model, err := lm.LoadARPA(f)
		if err != nil {
			return res, err
		}
		res.SharedLM = model
	}
	return res, nil
}
