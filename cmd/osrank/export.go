package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/osrank/ingest"
	"github.com/katalvlaran/osrank/internal/config"
)

var exportCfg config.Config

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-encode a completed ranking run's annotations as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(exportCfg)
	},
}

func init() {
	config.RegisterFlags(exportCmd, &exportCfg)
}

// runExport is a thin pass-through: it reads the "id,rank" CSV rank already
// wrote and re-encodes it unchanged, kept as its own subcommand so a rank
// run and its export are independently repeatable pipeline stages.
func runExport(cfg config.Config) error {
	inFile, err := os.Open(cfg.Input)
	if err != nil {
		return ioErr(err)
	}
	defer inFile.Close()

	annotations, err := ingest.ImportRanks(inFile)
	if err != nil {
		return malformedErr(err)
	}

	outFile, err := os.Create(cfg.Output)
	if err != nil {
		return ioErr(err)
	}
	defer outFile.Close()

	if err := ingest.ExportRanks(outFile, annotations); err != nil {
		return ioErr(err)
	}

	log.Info().Int("rows", len(annotations)).Msg("export completed")
	return nil
}
