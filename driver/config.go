package driver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/ngramlattice/cost"
	"github.com/katalvlaran/ngramlattice/feature"
)

// Config is the fully-parsed shape of every flag cmd/ngramlattice exposes
// (spec.md §6, SPEC_FULL.md's "[FULL] Exact flag set" list). It is built by
// the CLI layer from string/bool/int/float flag values and validated once,
// fatally, before any sentence is processed.
type Config struct {
	SentenceFile  string
	CandidatesDir string
	LMDir         string // per-sentence "<LMDir>/<id>/lm.4" when LMFile is empty
	LMFile        string // single ARPA file shared by every sentence
	OutputDir     string
	Range         string

	MaxOverlap     int
	PruneNBest     int
	PruneThreshold float64
	DumpPrune      float64
	AddInput       bool
	WhenLostInput  bool

	Features []string
	Weights  map[string]float64

	// Task selects the semiring: "decode" (tropical) or "tune" (sparse
	// tuple). Set by the cobra subcommand, not a flag.
	Task string

	ChopStrategy    string // "silly" | "punctuation" | "from_file" | "none"
	MaxChop         int
	PunctuationFile string
	WordMap         string
	ChopFile        string

	ConstraintsStrategy string // "from_file" | "all_reorderable" | ""
	ConstraintsFile     string

	AllowDeletion bool
}

// Semiring maps Task to the cost.Semiring the lattice.Config needs.
func (c Config) Semiring() cost.Semiring {
	if c.Task == "tune" {
		return cost.SparseTuple
	}
	return cost.Tropical
}

// Validate rejects every configuration problem spec.md §7's "Config" error
// kind covers: unknown feature name, missing required path, conflicting
// prune modes, and (per this module's Open Question decision) a negative
// prune_threshold. It never opens a file — field presence, not
// reachability, is checked here.
func (c Config) Validate() error {
	required := []struct{ name, value string }{
		{"sentences", c.SentenceFile},
		{"candidates-dir", c.CandidatesDir},
		{"output-dir", c.OutputDir},
	}
	for _, r := range required {
		if r.value == "" {
			return &ConfigError{Err: ErrMissingField, Field: r.name}
		}
	}
	if c.LMDir == "" && c.LMFile == "" {
		return &ConfigError{Err: ErrMissingField, Field: "lm-dir/lm-file"}
	}
	if c.Task != "decode" && c.Task != "tune" {
		return &ConfigError{Err: ErrUnknownTask, Field: "task", Value: c.Task}
	}
	if c.PruneNBest > 0 && c.PruneThreshold > 0 {
		return &ConfigError{Err: ErrConflictingPruneModes, Field: "prune-nbest/prune-threshold"}
	}
	if c.PruneThreshold < 0 {
		return &ConfigError{Err: ErrNegativePruneThreshold, Field: "prune-threshold", Value: strconv.FormatFloat(c.PruneThreshold, 'g', -1, 64)}
	}
	if c.MaxOverlap < 0 {
		return &ConfigError{Err: fmt.Errorf("max_overlap must be non-negative"), Field: "max-overlap"}
	}

	switch c.ChopStrategy {
	case "silly":
		if c.MaxChop <= 0 {
			return &ConfigError{Err: fmt.Errorf("max-chop must be > 0 for the silly chop strategy"), Field: "max-chop"}
		}
	case "punctuation":
		if c.PunctuationFile == "" || c.WordMap == "" {
			return &ConfigError{Err: fmt.Errorf("punctuation chop strategy requires --punctuation-file and --word-map"), Field: "chop-strategy"}
		}
	case "from_file":
		if c.ChopFile == "" {
			return &ConfigError{Err: ErrMissingField, Field: "chop-file"}
		}
	case "none", "":
	default:
		return &ConfigError{Err: ErrUnknownChopStrategy, Field: "chop-strategy", Value: c.ChopStrategy}
	}

	switch c.ConstraintsStrategy {
	case "from_file":
		if c.ConstraintsFile == "" {
			return &ConfigError{Err: ErrMissingField, Field: "constraints-file"}
		}
	case "all_reorderable", "":
	default:
		return &ConfigError{Err: ErrUnknownConstraintsStrategy, Field: "constraints-strategy", Value: c.ConstraintsStrategy}
	}

	for _, name := range c.Features {
		if _, err := feature.Lookup(name); err != nil {
			return &ConfigError{Err: err, Field: "features", Value: name}
		}
		if _, ok := c.Weights[name]; !ok {
			return &ConfigError{Err: fmt.Errorf("missing weight for feature %q", name), Field: "weights", Value: name}
		}
	}

	return nil
}

// ParseFeatureNames splits the comma-separated --features flag value. An
// empty string yields no features, matching Decoder::parseFeatures's
// handling of boost::split's single-empty-element quirk.
func ParseFeatureNames(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// ParseWeights parses the comma-separated "name=float,name=float" --weights
// flag value, grounded on Decoder::parseWeights.
func ParseWeights(s string) (map[string]float64, error) {
	out := make(map[string]float64)
	if s == "" {
		return out, nil
	}
	for _, pair := range strings.Split(s, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedWeightString, pair)
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedWeightString, pair, err)
		}
		out[parts[0]] = v
	}
	return out, nil
}
