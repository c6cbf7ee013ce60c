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

// ImportCmd returns the lesson import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-import lessons from a JSON file",
		Long: `Import lessons from a JSON array. Each entry needs "unit_name",
"lesson_number", and "lesson_name"; ids are assigned on import.

Example file:
  [
    {"unit_name": "Fractions", "lesson_number": 1, "lesson_name": "Halves"},
    {"unit_name": "Fractions", "lesson_number": 2, "lesson_name": "Thirds"}
  ]

Examples:
  masar lesson import --file=lessons.json
  masar lesson import --file=lessons.json --quiet
`,
		RunE: runImport,
	}

	// Required flags
	cmd.Flags().String("file", "", "Path to the JSON file (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	filePath, _ := cmd.Flags().GetString("file")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if fmtErr := formatter.Error("FILE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	var lessons []models.Lesson
	if err := json.Unmarshal(data, &lessons); err != nil {
		if fmtErr := formatter.Error("PARSE_ERROR", fmt.Sprintf("invalid lesson file: %v", err)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}
	if len(lessons) == 0 {
		if fmtErr := formatter.Error("VALIDATION_ERROR", "lesson file is empty"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

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

	added, err := cliInstance.App.Store.AddLessons(lessons)
	if err != nil {
		if fmtErr := formatter.Error("IMPORT_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, l := range added {
			fmt.Printf("%d\n", l.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"lessons": added,
		})
	}

	fmt.Printf("✓ Imported %d lessons\n", len(added))
	return nil
}
