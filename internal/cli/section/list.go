package section

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// ListCmd returns the section list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sections in a grade",
		Long: `List all sections under one grade.

Examples:
  # Human-readable list
  masar section list --grade=1

  # Quiet mode (one ID per line)
  masar section list --grade=1 --quiet
`,
		RunE: runList,
	}

	// Required flags
	cmd.Flags().Int64("grade", 0, "Grade ID (required)")
	if err := cmd.MarkFlagRequired("grade"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	gradeID, _ := cmd.Flags().GetInt64("grade")
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

	sections, err := cliInstance.App.RosterService.ListSections(gradeID)
	if err != nil {
		if fmtErr := formatter.Error("GRADE_NOT_FOUND", fmt.Sprintf("grade %d not found", gradeID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if quietMode {
		for _, sec := range sections {
			fmt.Printf("%d\n", sec.ID)
		}
		return nil
	}

	if jsonOutput {
		sectionList := make([]map[string]interface{}, len(sections))
		for i, sec := range sections {
			sectionList[i] = map[string]interface{}{
				"id":       sec.ID,
				"name":     sec.Name,
				"grade_id": sec.GradeID,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"sections": sectionList,
		})
	}

	// Human-readable output
	if len(sections) == 0 {
		fmt.Println("No sections found in this grade")
		return nil
	}

	for i, sec := range sections {
		fmt.Printf("  %d. %s (ID: %d)\n", i+1, sec.Name, sec.ID)
	}
	return nil
}
