package driver

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ngramlattice/ngram"
	"github.com/katalvlaran/ngramlattice/wfst"
)

func writeTestFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestConfigValidateRejectsMissingRequiredFields(t *testing.T) {
	cfg := Config{Task: "decode"}
	var cerr *ConfigError
	require.ErrorAs(t, cfg.Validate(), &cerr)
	assert.ErrorIs(t, cerr, ErrMissingField)
}

func TestConfigValidateRejectsMissingLM(t *testing.T) {
	cfg := Config{
		SentenceFile: "s", CandidatesDir: "c", OutputDir: "o", Task: "decode",
	}
	var cerr *ConfigError
	require.ErrorAs(t, cfg.Validate(), &cerr)
	assert.Equal(t, "lm-dir/lm-file", cerr.Field)
}

func TestConfigValidateRejectsConflictingPruneModes(t *testing.T) {
	cfg := Config{
		SentenceFile: "s", CandidatesDir: "c", OutputDir: "o", LMFile: "lm",
		Task: "decode", PruneNBest: 5, PruneThreshold: 1,
	}
	var cerr *ConfigError
	require.ErrorAs(t, cfg.Validate(), &cerr)
	assert.ErrorIs(t, cerr, ErrConflictingPruneModes)
}

func TestConfigValidateRejectsNegativePruneThreshold(t *testing.T) {
	cfg := Config{
		SentenceFile: "s", CandidatesDir: "c", OutputDir: "o", LMFile: "lm",
		Task: "decode", PruneThreshold: -1,
	}
	var cerr *ConfigError
	require.ErrorAs(t, cfg.Validate(), &cerr)
	assert.ErrorIs(t, cerr, ErrNegativePruneThreshold)
}

func TestConfigValidateRejectsUnknownFeature(t *testing.T) {
	cfg := Config{
		SentenceFile: "s", CandidatesDir: "c", OutputDir: "o", LMFile: "lm",
		Task: "decode", Features: []string{"not_a_real_feature"},
		Weights: map[string]float64{"not_a_real_feature": 1},
	}
	require.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsMissingWeight(t *testing.T) {
	cfg := Config{
		SentenceFile: "s", CandidatesDir: "c", OutputDir: "o", LMFile: "lm",
		Task: "decode", Features: []string{"word_count"},
	}
	require.Error(t, cfg.Validate())
}

func TestConfigValidateAcceptsWellFormedConfig(t *testing.T) {
	cfg := Config{
		SentenceFile: "s", CandidatesDir: "c", OutputDir: "o", LMFile: "lm",
		Task: "decode", Features: []string{"word_count"},
		Weights: map[string]float64{"word_count": 0.1},
	}
	assert.NoError(t, cfg.Validate())
}

func TestParseWeightsParsesCommaSeparatedPairs(t *testing.T) {
	w, err := ParseWeights("word_count=0.5,rule_count=1")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"word_count": 0.5, "rule_count": 1}, w)
}

func TestParseWeightsEmptyIsEmptyMap(t *testing.T) {
	w, err := ParseWeights("")
	require.NoError(t, err)
	assert.Empty(t, w)
}

func TestParseWeightsRejectsMalformedPair(t *testing.T) {
	_, err := ParseWeights("word_count")
	require.ErrorIs(t, err, ErrMalformedWeightString)
}

func TestParseFeatureNamesSplitsOnComma(t *testing.T) {
	assert.Equal(t, []string{"word_count", "rule_count"}, ParseFeatureNames("word_count,rule_count"))
}

func TestParseFeatureNamesEmptyIsNil(t *testing.T) {
	assert.Nil(t, ParseFeatureNames(""))
}

func TestFreezeChunksOverridesNonReorderableChunkWithVerbatimRule(t *testing.T) {
	sentence := []ngram.WordID{5, 6, 7, 8}
	chopPositions := []int{2, 4}
	candidates := ngram.CandidateMap{
		0: {{Rule: ngram.Rule{6, 5}, Coverages: nil}},
		1: {{Rule: ngram.Rule{8, 7}, Coverages: nil}},
	}
	constraints := []bool{true, false} // chunk 0 reorderable, chunk 1 frozen

	out, err := freezeChunks(candidates, constraints, sentence, chopPositions)
	require.NoError(t, err)

	assert.Equal(t, candidates[0], out[0], "reorderable chunk's candidates pass through unchanged")
	require.Len(t, out[1], 1)
	assert.Equal(t, ngram.Rule{7, 8}, out[1][0].Rule, "frozen chunk's candidate is the verbatim input span")
	require.Len(t, out[1][0].Coverages, 1)
	assert.Equal(t, 2, out[1][0].Coverages[0].Popcount())
}

func TestRunDecodesASentenceEndToEnd(t *testing.T) {
	dir := t.TempDir()
	candDir := filepath.Join(dir, "candidates")
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(candDir, 0o755))

	sentencePath := writeTestFile(t, dir, "sentences.txt", "5 6\n")
	lmPath := writeTestFile(t, dir, "lm.arpa", strings.Join([]string{
		`\data\`,
		"ngram 1=3",
		"ngram 2=2",
		`\1-grams:`,
		"-0.3 <s>",
		"-0.5 5",
		"-0.5 6",
		`\2-grams:`,
		"-0.1 <s> 5",
		"-0.2 5 6",
		`\end\`,
		"",
	}, "\n"))
	writeTestFile(t, candDir, "1.r", strings.Join([]string{
		"HEADER ONE",
		"HEADER TWO",
		"X 0_1 5_6",
		"X 0_1 6_5",
	}, "\n")+"\n")

	cfg := Config{
		SentenceFile:  sentencePath,
		CandidatesDir: candDir,
		LMFile:        lmPath,
		OutputDir:     outDir,
		Task:          "decode",
		MaxOverlap:    0,
		AddInput:      true,
	}
	require.NoError(t, cfg.Validate())

	log := zerolog.New(io.Discard)
	require.NoError(t, Run(cfg, log))

	outPath := outputFilePath(outDir, 1)
	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	b, err := wfst.Read(f)
	require.NoError(t, err)
	start, err := b.Start()
	require.NoError(t, err)
	isFinal, _ := b.IsFinal(start)
	assert.True(t, isFinal || len(b.Arcs(start)) > 0, "the written transducer has a start state reaching somewhere")
}
