package stats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// SectionCmd returns the stats section subcommand
func SectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Show section statistics",
		Long: `Show a section's average points, student count, and behavior
distribution.

Examples:
  masar stats section --id=1
  masar stats section --id=1 --json
`,
		RunE: runSection,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Section ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runSection(cmd *cobra.Command, args []string) error {
	sectionID, _ := cmd.Flags().GetInt64("id")
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

	stats, ok := cliInstance.App.Store.SectionStatsFor(sectionID)
	if !ok {
		if fmtErr := formatter.Error("SECTION_NOT_FOUND", fmt.Sprintf("section %d not found", sectionID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"stats":   stats,
		})
	}

	fmt.Printf("%s\n", stats.Name)
	fmt.Printf("  Students:       %d\n", stats.StudentCount)
	fmt.Printf("  Average points: %d\n", stats.AveragePoints)
	fmt.Printf("  Distribution:   helpfulness %d%%, respect %d%%, teamwork %d%%, excellence %d%%\n",
		stats.Distribution.Helpfulness, stats.Distribution.Respect,
		stats.Distribution.Teamwork, stats.Distribution.Excellence)
	return nil
}
