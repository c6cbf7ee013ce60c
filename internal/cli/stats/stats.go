package stats

import (
	"github.com/spf13/cobra"
)

// StatsCmd returns the stats parent command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Class and student analytics",
	}

	cmd.AddCommand(TopCmd())
	cmd.AddCommand(DistributionCmd())
	cmd.AddCommand(SectionCmd())
	cmd.AddCommand(StudentCmd())

	return cmd
}
