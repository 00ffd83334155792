package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ngramlattice/driver"
)

// sharedFlags is bound by both decode and tune: the two tasks accept the
// identical flag set (SPEC_FULL.md §6), differing only in which semiring
// the emitted WFST uses.
type sharedFlags struct {
	sentences       string
	candidatesDir   string
	lmDir           string
	lmFile          string
	outputDir       string
	rng             string
	maxOverlap      int
	pruneNBest      int
	pruneThreshold  float64
	dumpPrune       float64
	addInput        bool
	whenLostInput   bool
	features        string
	weights         string
	chopStrategy    string
	maxChop         int
	punctuationFile string
	wordMap         string
	chopFile        string
	constraintsKind string
	constraintsFile string
	allowDeletion   bool
}

func bindSharedFlags(cmd *cobra.Command, f *sharedFlags) {
	fl := cmd.Flags()
	fl.StringVar(&f.sentences, "sentences", "", "sentence file, one sentence per line, space-separated word ids (required)")
	fl.StringVar(&f.candidatesDir, "candidates-dir", "", "directory of per-sentence n-gram candidate files (required)")
	fl.StringVar(&f.lmDir, "lm-dir", "", "directory of per-sentence LM subdirectories (<dir>/<id>/lm.4)")
	fl.StringVar(&f.lmFile, "lm-file", "", "single ARPA LM file shared by every sentence")
	fl.StringVar(&f.outputDir, "output-dir", "", "directory to write per-sentence WFST files into (required)")
	fl.StringVar(&f.rng, "range", "", "1-based sentence ids to process, e.g. \"1:3,7\" (default: all)")
	fl.IntVar(&f.maxOverlap, "max-overlap", 0, "maximum coverage-bit overlap allowed when extending a state")
	fl.IntVar(&f.pruneNBest, "prune-nbest", 0, "n-best pruning: states kept per column")
	fl.Float64Var(&f.pruneThreshold, "prune-threshold", 0, "beam pruning: additive cost margin around a column's minimum")
	fl.Float64Var(&f.dumpPrune, "dump-prune", 0, "prune weight applied to the output fst before writing, if > 0")
	fl.BoolVar(&f.addInput, "add-input", false, "add the literal input sentence as a guaranteed accepting path")
	fl.BoolVar(&f.whenLostInput, "when-lost-input", false, "log the column where the input hypothesis was last seen")
	fl.StringVar(&f.features, "features", "", "comma-separated feature names")
	fl.StringVar(&f.weights, "weights", "", "comma-separated name=weight pairs")
	fl.StringVar(&f.chopStrategy, "chop-strategy", "none", "silly|punctuation|from_file|none")
	fl.IntVar(&f.maxChop, "max-chop", 0, "max words per chunk for silly/punctuation chopping")
	fl.StringVar(&f.punctuationFile, "punctuation-file", "", "punctuation symbol file, for the punctuation chop strategy")
	fl.StringVar(&f.wordMap, "word-map", "", "word map file (id<TAB>word), for the punctuation chop strategy")
	fl.StringVar(&f.chopFile, "chop-file", "", "chop boundary file, for the from_file chop strategy")
	fl.StringVar(&f.constraintsKind, "constraints-strategy", "all_reorderable", "from_file|all_reorderable")
	fl.StringVar(&f.constraintsFile, "constraints-file", "", "constraints file, for the from_file constraints strategy")
	fl.BoolVar(&f.allowDeletion, "allow-deletion", false, "allow unigram deletion via epsilon arcs")
}

func (f *sharedFlags) toConfig(task string) (driver.Config, error) {
	features := driver.ParseFeatureNames(f.features)
	weights, err := driver.ParseWeights(f.weights)
	if err != nil {
		return driver.Config{}, err
	}
	return driver.Config{
		SentenceFile:        f.sentences,
		CandidatesDir:       f.candidatesDir,
		LMDir:               f.lmDir,
		LMFile:              f.lmFile,
		OutputDir:           f.outputDir,
		Range:               f.rng,
		MaxOverlap:          f.maxOverlap,
		PruneNBest:          f.pruneNBest,
		PruneThreshold:      f.pruneThreshold,
		DumpPrune:           f.dumpPrune,
		AddInput:            f.addInput,
		WhenLostInput:       f.whenLostInput,
		Features:            features,
		Weights:             weights,
		Task:                task,
		ChopStrategy:        f.chopStrategy,
		MaxChop:             f.maxChop,
		PunctuationFile:     f.punctuationFile,
		WordMap:             f.wordMap,
		ChopFile:            f.chopFile,
		ConstraintsStrategy: f.constraintsKind,
		ConstraintsFile:     f.constraintsFile,
		AllowDeletion:       f.allowDeletion,
	}, nil
}

func newRootCmd(log zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "ngramlattice",
		Short:         "Decode or tune a lattice of reordered n-gram applications into a WFST",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDecodeCmd(log), newTuneCmd(log))
	return root
}
