package profile

import (
	"github.com/spf13/cobra"
)

// ProfileCmd returns the profile parent command
func ProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the teacher profile and report templates",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(TemplateCmd())

	return cmd
}
