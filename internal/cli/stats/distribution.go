package stats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// DistributionCmd returns the stats distribution subcommand
func DistributionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Show the behavior point distribution",
		Long: `Show each recognition category's share of all recognition points as
rounded percentages. The four values may not sum to exactly 100 because each
is rounded independently.

Examples:
  # Distribution across everyone
  masar stats distribution

  # One section only
  masar stats distribution --section=1
`,
		RunE: runDistribution,
	}

	// Optional flags
	cmd.Flags().Int64("section", 0, "Restrict to one section (0 = all)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runDistribution(cmd *cobra.Command, args []string) error {
	sectionID, _ := cmd.Flags().GetInt64("section")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	cliInstance, err := cli.NewCLI()
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	d := cliInstance.App.Store.Distribution(sectionID)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":      true,
			"distribution": d,
		})
	}

	fmt.Printf("  Helpfulness: %d%%\n", d.Helpfulness)
	fmt.Printf("  Respect:     %d%%\n", d.Respect)
	fmt.Printf("  Teamwork:    %d%%\n", d.Teamwork)
	fmt.Printf("  Excellence:  %d%%\n", d.Excellence)
	return nil
}
