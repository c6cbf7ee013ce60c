package stats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// StudentCmd returns the stats student subcommand
func StudentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Show a student's statistics",
		Long: `Show a student's points, level, category breakdown, and the class
average for their grade.

Examples:
  masar stats student --id=12
  masar stats student --id=12 --json
`,
		RunE: runStudent,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Student ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runStudent(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetInt64("id")
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

	stats, ok := cliInstance.App.Store.StudentStatsFor(studentID)
	if !ok {
		if fmtErr := formatter.Error("STUDENT_NOT_FOUND", fmt.Sprintf("student %d not found", studentID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	var classAverage int
	if st, ok := cliInstance.App.Store.Student(studentID); ok {
		classAverage = cliInstance.App.Store.ClassAveragePoints(st.GradeID)
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":       true,
			"stats":         stats,
			"class_average": classAverage,
		})
	}

	fmt.Printf("%s\n", stats.Name)
	fmt.Printf("  Points:        %d (class average %d)\n", stats.TotalPoints, classAverage)
	fmt.Printf("  Level:         %d\n", stats.Level)
	categories := make([]string, 0, len(stats.Breakdown))
	for c := range stats.Breakdown {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Printf("  %-14s %d\n", c+":", stats.Breakdown[c])
	}
	return nil
}
