package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"coursecat/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show a course and its prerequisites",
	Long: `Show one course with the titles of its prerequisites.

Case does not matter, and anything after the course number is ignored, so a
line copied from the course list works as input.

Examples:
  coursecat-cli show CSCI300
  coursecat-cli show "csci200, Data Structures"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if _, err := loadCatalog(ctx, false); err != nil {
			return err
		}

		details, err := commands.NewFindCourseCommand(cat, strings.Join(args, " ")).Execute(ctx)
		if err != nil {
			return err
		}
		printer.CourseDetails(details)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
