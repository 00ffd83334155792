// Command ngramlattice decodes or tunes a weighted-lattice reordering of
// n-gram candidate applications into a per-sentence WFST.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCmd(log).Execute(); err != nil {
		log.Fatal().Err(err).Msg("ngramlattice failed")
	}
}
