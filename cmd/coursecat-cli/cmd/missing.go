package cmd

import (
	"github.com/spf13/cobra"

	"coursecat/internal/application/commands"
)

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "List prerequisites that are not in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if _, err := loadCatalog(ctx, false); err != nil {
			return err
		}

		missing, err := commands.NewMissingPrerequisitesCommand(cat).Execute(ctx)
		if err != nil {
			return err
		}
		printer.MissingPrerequisites(missing)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(missingCmd)
}
