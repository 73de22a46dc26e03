package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "osrank",
	Short: "Damped random-walk trust ranking over project/account graphs",
	Long: `osrank assembles a project/account influence graph from raw CSV
relations, ranks it with a damped Monte-Carlo random walk, and exports the
resulting scores, one pipeline stage per subcommand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(buildAdjacencyCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(exportCmd)
}
