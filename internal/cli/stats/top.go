package stats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// TopCmd returns the stats top subcommand
func TopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the highest-scoring students",
		Long: `Show the top students by total points. Ties keep enrollment order.

Examples:
  # Top 3 across all sections
  masar stats top --limit=3

  # Top 10 of one section
  masar stats top --limit=10 --section=1
`,
		RunE: runTop,
	}

	// Optional flags
	cmd.Flags().Int("limit", 3, "Number of students to show")
	cmd.Flags().Int64("section", 0, "Restrict to one section (0 = all)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runTop(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
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

	top := cliInstance.App.Store.TopStudents(limit, sectionID)

	if quietMode {
		for _, st := range top {
			fmt.Printf("%d\n", st.ID)
		}
		return nil
	}

	if jsonOutput {
		studentList := make([]map[string]interface{}, len(top))
		for i, st := range top {
			studentList[i] = map[string]interface{}{
				"id":           st.ID,
				"name":         st.Name,
				"total_points": st.TotalPoints,
				"avatar_level": st.AvatarLevel,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"students": studentList,
		})
	}

	if len(top) == 0 {
		fmt.Println("No students found")
		return nil
	}

	for i, st := range top {
		fmt.Printf("  %d. %s: %d pts (level %d)\n", i+1, st.Name, st.TotalPoints, st.AvatarLevel)
	}
	return nil
}
