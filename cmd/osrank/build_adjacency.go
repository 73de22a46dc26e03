package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/osrank/adjacency"
	"github.com/katalvlaran/osrank/ingest"
	"github.com/katalvlaran/osrank/internal/config"
	"github.com/katalvlaran/osrank/ledger"
	"github.com/katalvlaran/osrank/matrix"
)

var buildAdjacencyCfg config.Config

var buildAdjacencyCmd = &cobra.Command{
	Use:   "build-adjacency",
	Short: "Assemble the influence graph from raw CSV relations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildAdjacency(buildAdjacencyCfg)
	},
}

func init() {
	config.RegisterFlags(buildAdjacencyCmd, &buildAdjacencyCfg)
}

// runBuildAdjacency reads projects.csv, dependencies.csv, contributions.csv
// and maintainers.csv from cfg.Input, assembles the transition matrix, and
// writes the resulting graph's Influence edges to cfg.Output.
func runBuildAdjacency(cfg config.Config) error {
	start := time.Now()
	log.Info().Str("input", cfg.Input).Msg("build-adjacency started")

	h, err := loadHyperParams(cfg.HyperparamsPath)
	if err != nil {
		return err
	}

	projectsFile, err := os.Open(filepath.Join(cfg.Input, "projects.csv"))
	if err != nil {
		return ioErr(err)
	}
	defer projectsFile.Close()

	meta, err := ingest.ImportProjects(projectsFile)
	if err != nil {
		return classifyIngestErr(err)
	}

	depFile, err := os.Open(filepath.Join(cfg.Input, "dependencies.csv"))
	if err != nil {
		return ioErr(err)
	}
	defer depFile.Close()

	dep, err := ingest.ImportDependencies(depFile, meta)
	if err != nil {
		return classifyIngestErr(err)
	}

	contribFile, err := os.Open(filepath.Join(cfg.Input, "contributions.csv"))
	if err != nil {
		return ioErr(err)
	}
	defer contribFile.Close()

	contrib, contributors, err := ingest.ImportContributions(contribFile, meta)
	if err != nil {
		return classifyIngestErr(err)
	}

	maintain, err := loadMaintainers(cfg.Input, meta, contributors)
	if err != nil {
		return classifyIngestErr(err)
	}

	log.Info().Int("projects", len(meta)).Int("accounts", len(contributors)).Msg("input imported")

	g, err := ingest.BuildGraph(meta, contributors, dep, contrib, maintain, h)
	if err != nil {
		if errors.Is(err, adjacency.ErrInvalidHyperparam) || errors.Is(err, adjacency.ErrShapeMismatch) {
			return invariantErr(err)
		}
		return classifyIngestErr(err)
	}

	outFile, err := os.Create(cfg.Output)
	if err != nil {
		return ioErr(err)
	}
	defer outFile.Close()

	if err := ingest.ExportGraph(outFile, g); err != nil {
		return ioErr(err)
	}

	log.Info().
		Int("edges", g.EdgeCount()).
		Dur("elapsed", time.Since(start)).
		Msg("build-adjacency completed")
	return nil
}

// loadMaintainers reads maintainers.csv if present; a missing file is a
// valid zero-maintenance input (the paper's own CSV corpus frequently omits
// it), read as an empty reader.
func loadMaintainers(inputDir string, meta []ingest.ProjectMeta, contributors []string) (*matrix.CSR[float64], error) {
	f, err := os.Open(filepath.Join(inputDir, "maintainers.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return ingest.ImportMaintainers(strings.NewReader(""), meta, contributors)
		}
		return nil, err
	}
	defer f.Close()
	return ingest.ImportMaintainers(f, meta, contributors)
}

func loadHyperParams(path string) (ledger.HyperParams, error) {
	if path == "" {
		return ledger.DefaultHyperParams(), nil
	}
	view := ledger.YAMLLedger{Path: path}
	h, err := view.HyperParams()
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidHyperparam) {
			return ledger.HyperParams{}, invariantErr(err)
		}
		return ledger.HyperParams{}, ioErr(err)
	}
	return h, nil
}

func classifyIngestErr(err error) error {
	if errors.Is(err, ingest.ErrMalformedInput) {
		return malformedErr(err)
	}
	return ioErr(err)
}
