package session

import (
	"github.com/spf13/cobra"
)

// SessionCmd returns the session parent command
func SessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage session sheets and marks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MarkCmd())
	cmd.AddCommand(PresetCmd())

	return cmd
}
