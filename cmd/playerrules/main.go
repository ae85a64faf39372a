package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "playerrules",
	Short: "Evaluate soccer player relationship rules",
	Long: `playerrules loads soccer player records from DBpedia (or the seeded
in-memory set when DBPEDIA_ENABLED=false) and evaluates the relationship
and archetype rules over them.

Configuration is read from the environment; see internal/config.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
