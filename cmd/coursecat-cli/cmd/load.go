package cmd

import (
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the catalog and report problems",
	Long: `Load the catalog file and print the number of courses, every skipped or
replaced line, and every prerequisite missing from the catalog.

Examples:
  coursecat-cli load
  coursecat-cli load -f "data/CS 300 ABCU_Advising_Program_Input.csv"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := loadCatalog(cmd.Context(), true)
		return err
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
