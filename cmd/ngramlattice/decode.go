package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ngramlattice/driver"
)

// newDecodeCmd builds the "decode" subcommand: task="decode", tropical
// semiring, the usual StdVectorFst-shaped output (spec.md §6's task flag,
// modeled as a cobra subcommand per DESIGN.md's Open Question resolution).
func newDecodeCmd(log zerolog.Logger) *cobra.Command {
	f := &sharedFlags{}
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode sentences into per-sentence tropical-weight WFSTs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.toConfig("decode")
			if err != nil {
				return err
			}
			return driver.Run(cfg, log)
		},
	}
	bindSharedFlags(cmd, f)
	return cmd
}
