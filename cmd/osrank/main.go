// Command osrank runs the Osrank pipeline: build-adjacency turns raw CSV
// input into an assembled influence graph, rank walks that graph into a
// ranking, and export re-encodes a ranking run's output.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}
