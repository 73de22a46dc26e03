package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/osrank/adjacency"
	"github.com/katalvlaran/osrank/annotate"
	"github.com/katalvlaran/osrank/ingest"
	"github.com/katalvlaran/osrank/internal/config"
	"github.com/katalvlaran/osrank/walk"
)

var rankCfg config.Config

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Walk an assembled influence graph and produce node ranks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRank(rankCfg)
	},
}

func init() {
	config.RegisterFlags(rankCmd, &rankCfg)
}

func runRank(cfg config.Config) error {
	start := time.Now()
	log.Info().Str("input", cfg.Input).Msg("rank started")

	seed, err := cfg.Seed()
	if err != nil {
		return malformedErr(err)
	}

	inFile, err := os.Open(cfg.Input)
	if err != nil {
		return ioErr(err)
	}
	defer inFile.Close()

	g, err := ingest.LoadGraph(inFile)
	if err != nil {
		if errors.Is(err, ingest.ErrMalformedInput) {
			return malformedErr(err)
		}
		return ioErr(err)
	}

	result, err := walk.Run(context.Background(), adjacency.GraphSource{G: g}, walk.Config{
		NumNodes:     g.NodeCount(),
		WalksPerSeed: cfg.Walks,
		Damping:      cfg.Damping,
		RNGSeed:      seed,
		Parallelism:  cfg.Parallelism,
	})
	if err != nil {
		if errors.Is(err, walk.ErrInvariantViolation) {
			return invariantErr(err)
		}
		return malformedErr(err)
	}

	annotator := annotate.NewMemoryAnnotator()
	for i, rank := range result.Ranks {
		node, ok := g.NodeAt(i)
		if !ok {
			continue
		}
		if err := annotator.Annotate(node.ID, rank); err != nil {
			return invariantErr(err)
		}
	}

	outFile, err := os.Create(cfg.Output)
	if err != nil {
		return ioErr(err)
	}
	defer outFile.Close()

	if err := ingest.ExportRanks(outFile, annotator.Drain()); err != nil {
		return ioErr(err)
	}

	log.Info().
		Int("nodes", g.NodeCount()).
		Dur("elapsed", time.Since(start)).
		Msg("rank completed")
	return nil
}
