package student

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// LogsCmd returns the student logs subcommand
func LogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show a student's recognition history",
		Long: `Show a student's point log, most recent first. Amounts are the raw
values awarded, before any clamping of the running total.

Examples:
  # Human-readable history
  masar student logs --id=1

  # Limit to the last 5 entries
  masar student logs --id=1 --limit=5
`,
		RunE: runLogs,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Student ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().Int("limit", 0, "Show at most N entries (0 = all)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runLogs(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetInt64("id")
	limit, _ := cmd.Flags().GetInt("limit")
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

	logs, err := cliInstance.App.RosterService.GetLogs(studentID)
	if err != nil {
		if fmtErr := formatter.Error("STUDENT_NOT_FOUND", fmt.Sprintf("student %d not found", studentID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}

	if jsonOutput {
		logList := make([]map[string]interface{}, len(logs))
		for i, l := range logs {
			logList[i] = map[string]interface{}{
				"id":       l.ID,
				"category": l.Category,
				"points":   l.Points,
				"reason":   l.Reason,
				"date":     l.Date,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"logs":    logList,
		})
	}

	// Human-readable output
	if len(logs) == 0 {
		fmt.Println("No recognition history for this student")
		return nil
	}

	for _, l := range logs {
		sign := ""
		if l.Points > 0 {
			sign = "+"
		}
		fmt.Printf("  %s  %s%d %s: %s\n",
			l.Date.Format("2006-01-02 15:04"), sign, l.Points, l.Category, l.Reason)
	}
	return nil
}
