package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// ListCmd returns the session list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List session sheets of a section",
		Long: `List a section's session sheets, newest first.

Examples:
  masar session list --section=1
  masar session list --section=1 --quiet
`,
		RunE: runList,
	}

	// Required flags
	cmd.Flags().Int64("section", 0, "Section ID (required)")
	if err := cmd.MarkFlagRequired("section"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	sectionID, _ := cmd.Flags().GetInt64("section")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

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

	sheets, err := cliInstance.App.SessionService.ListSheets(sectionID)
	if err != nil {
		if fmtErr := formatter.Error("SECTION_NOT_FOUND", fmt.Sprintf("section %d not found", sectionID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if quietMode {
		for _, sh := range sheets {
			fmt.Printf("%d\n", sh.ID)
		}
		return nil
	}

	if jsonOutput {
		sheetList := make([]map[string]interface{}, len(sheets))
		for i, sh := range sheets {
			sheetList[i] = map[string]interface{}{
				"id":         sh.ID,
				"name":       sh.Name,
				"time_unit":  sh.TimeUnit,
				"duration":   sh.Duration,
				"start_date": sh.StartDate,
				"config_id":  sh.MarkingConfigID,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"sheets":  sheetList,
		})
	}

	// Human-readable output
	if len(sheets) == 0 {
		fmt.Println("No session sheets found for this section")
		return nil
	}

	for _, sh := range sheets {
		fmt.Printf("  %s: %d %ss from %s [%s] (ID: %d)\n",
			sh.Name, sh.Duration, sh.TimeUnit, sh.StartDate, sh.MarkingConfigID, sh.ID)
	}
	return nil
}
