package lesson

import (
	"github.com/spf13/cobra"
)

// LessonCmd returns the lesson parent command
func LessonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lesson",
		Short: "Manage the lesson catalog and student progress",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ProgressCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
