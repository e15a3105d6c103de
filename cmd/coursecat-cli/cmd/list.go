package cmd

import (
	"github.com/spf13/cobra"

	"coursecat/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every course in ID order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if _, err := loadCatalog(ctx, false); err != nil {
			return err
		}

		courses, err := commands.NewListCoursesCommand(cat).Execute(ctx)
		if err != nil {
			return err
		}
		printer.CourseList(courses)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
