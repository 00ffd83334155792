package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ngramlattice/driver"
)

// newTuneCmd builds the "tune" subcommand: task="tune", each arc carries a
// sparse-tuple weight of the LM cost plus every feature's raw,
// un-combined value, for downstream weight fitting.
func newTuneCmd(log zerolog.Logger) *cobra.Command {
	f := &sharedFlags{}
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Decode sentences into per-sentence sparse-tuple-weight WFSTs for weight fitting",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.toConfig("tune")
			if err != nil {
				return err
			}
			return driver.Run(cfg, log)
		},
	}
	bindSharedFlags(cmd, f)
	return cmd
}
