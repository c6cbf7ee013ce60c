package student

import (
	"github.com/spf13/cobra"
)

// StudentCmd returns the student parent command
func StudentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students and point awards",
	}

	cmd.AddCommand(EnrollCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(AwardCmd())
	cmd.AddCommand(LogsCmd())
	cmd.AddCommand(RemoveCmd())

	return cmd
}
