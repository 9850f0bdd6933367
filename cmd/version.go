package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/resume-scorer/internal/taxonomy"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the built-in taxonomy size",
	Run: func(_ *cobra.Command, _ []string) {
		tx := taxonomy.Default()
		fmt.Printf("%s version: %s (taxonomy: %d categories, %d specializations)\n",
			app, version, len(tx.CategoryNames()), len(tx.SpecializationLabels()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
