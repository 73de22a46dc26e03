// Package config parses the CLI flags shared across the osrank
// subcommands (build-adjacency, rank, export) into one struct. It records
// the path of the optional hyperparameter override file but does not read
// it; ledger.YAMLLedger loads that file.
package config

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

// Config holds the flags common to every pipeline-stage subcommand. Not
// every subcommand uses every field (export, for instance, has no use for
// Seed/Walks/Damping); each subcommand reads only what it needs.
type Config struct {
	Input           string
	Output          string
	HyperparamsPath string
	SeedHex         string
	Walks           int
	Damping         float64
	Parallelism     int
}

// RegisterFlags attaches the shared flag set to cmd, with the defaults the
// paper itself uses (R=10, d=0.85).
func RegisterFlags(cmd *cobra.Command, cfg *Config) {
	cmd.Flags().StringVar(&cfg.Input, "input", "", "input path (file or directory, subcommand-dependent)")
	cmd.Flags().StringVar(&cfg.Output, "output", "", "output path")
	cmd.Flags().StringVar(&cfg.HyperparamsPath, "hyperparams", "", "optional YAML hyperparameter override file")
	cmd.Flags().StringVar(&cfg.SeedHex, "seed", "00000000000000000000000000000000", "16-byte hex walk seed")
	cmd.Flags().IntVar(&cfg.Walks, "walks", 10, "walks per seed node (R)")
	cmd.Flags().Float64Var(&cfg.Damping, "damping", 0.85, "damping factor (d)")
	cmd.Flags().IntVar(&cfg.Parallelism, "parallelism", 1, "number of walk workers (1 = sequential)")
}

// Seed decodes SeedHex into a 16-byte walk seed.
func (c Config) Seed() ([16]byte, error) {
	return ParseSeed(c.SeedHex)
}

// ParseSeed decodes a 32-character hex string into a 16-byte walk seed.
func ParseSeed(hexSeed string) ([16]byte, error) {
	var seed [16]byte
	raw, err := hex.DecodeString(hexSeed)
	if err != nil {
		return seed, fmt.Errorf("invalid hex seed %q: %w", hexSeed, err)
	}
	if len(raw) != 16 {
		return seed, fmt.Errorf("seed must decode to 16 bytes, got %d", len(raw))
	}
	copy(seed[:], raw)
	return seed, nil
}
