package student

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// ListCmd returns the student list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students in a section",
		Long: `List the current roster of a section with points and levels.

Examples:
  # Human-readable roster
  masar student list --section=1

  # Quiet mode (one ID per line)
  masar student list --section=1 --quiet
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

	students, err := cliInstance.App.RosterService.ListStudents(sectionID)
	if err != nil {
		if fmtErr := formatter.Error("SECTION_NOT_FOUND", fmt.Sprintf("section %d not found", sectionID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if quietMode {
		for _, st := range students {
			fmt.Printf("%d\n", st.ID)
		}
		return nil
	}

	if jsonOutput {
		studentList := make([]map[string]interface{}, len(students))
		for i, st := range students {
			studentList[i] = map[string]interface{}{
				"id":           st.ID,
				"name":         st.Name,
				"gender":       st.Gender,
				"total_points": st.TotalPoints,
				"avatar_level": st.AvatarLevel,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"students": studentList,
		})
	}

	// Human-readable output
	if len(students) == 0 {
		fmt.Println("No students found in this section")
		return nil
	}

	for i, st := range students {
		fmt.Printf("  %d. %s: %d pts, level %d (ID: %d)\n",
			i+1, st.Name, st.TotalPoints, st.AvatarLevel, st.ID)
	}
	return nil
}
