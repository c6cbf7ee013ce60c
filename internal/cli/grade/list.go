package grade

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
	"github.com/masarhq/masar/internal/cli/styles"
)

// ListCmd returns the grade list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all grades",
		Long: `List all grades with their section and student counts.

Examples:
  # Human-readable list
  masar grade list

  # JSON output for scripts
  masar grade list --json

  # Quiet mode (one ID per line)
  masar grade list --quiet
`,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	grades := cliInstance.App.RosterService.ListGrades()

	if quietMode {
		for _, g := range grades {
			fmt.Printf("%d\n", g.ID)
		}
		return nil
	}

	if jsonOutput {
		gradeList := make([]map[string]interface{}, len(grades))
		for i, g := range grades {
			gradeList[i] = map[string]interface{}{
				"id":            g.ID,
				"name":          g.Name,
				"color":         g.Color,
				"icon":          g.Icon,
				"order_index":   g.OrderIndex,
				"section_count": g.SectionCount,
				"student_count": g.StudentCount,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"grades":  gradeList,
		})
	}

	// Human-readable output
	if len(grades) == 0 {
		fmt.Println("No grades found")
		return nil
	}

	styles.Init(cliInstance.Config.ColorScheme)
	for _, g := range grades {
		fmt.Printf("  %s %d sections, %d students (ID: %d)\n",
			styles.RenderGradeChip(g), g.SectionCount, g.StudentCount, g.ID)
	}
	return nil
}
