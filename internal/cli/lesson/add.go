package lesson

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
	"github.com/masarhq/masar/internal/models"
)

// AddCmd returns the lesson add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one lesson to the catalog",
		Long: `Add a single lesson to the global catalog. Lessons are shared by all
sections, they are not owned by a grade.

Examples:
  masar lesson add --unit="Fractions" --number=1 --name="Halves and quarters"
  masar lesson add --unit="Fractions" --number=2 --name="Thirds" --quiet
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("unit", "", "Unit name (required)")
	cmd.Flags().Int("number", 0, "Lesson number within the unit (required)")
	cmd.Flags().String("name", "", "Lesson name (required)")
	if err := cmd.MarkFlagRequired("unit"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	if err := cmd.MarkFlagRequired("number"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	unit, _ := cmd.Flags().GetString("unit")
	number, _ := cmd.Flags().GetInt("number")
	name, _ := cmd.Flags().GetString("name")
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

	added, err := cliInstance.App.Store.AddLessons([]models.Lesson{{
		UnitName:     unit,
		LessonNumber: number,
		LessonName:   name,
	}})
	if err != nil {
		if fmtErr := formatter.Error("CREATE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	lessonItem := added[0]

	if quietMode {
		fmt.Printf("%d\n", lessonItem.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"lesson":  lessonItem,
		})
	}

	fmt.Printf("✓ Added lesson '%s %d: %s' (ID: %d)\n",
		lessonItem.UnitName, lessonItem.LessonNumber, lessonItem.LessonName, lessonItem.ID)
	return nil
}
