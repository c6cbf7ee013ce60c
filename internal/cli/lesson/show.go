package lesson

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// ShowCmd returns the lesson show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a student's lesson progress",
		Long: `Show every progress entry recorded for a student, or only the latest
entry for one lesson when --lesson is given.

Examples:
  masar lesson show --student=12
  masar lesson show --student=12 --lesson=3
`,
		RunE: runShow,
	}

	// Required flags
	cmd.Flags().Int64("student", 0, "Student ID (required)")
	if err := cmd.MarkFlagRequired("student"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().Int64("lesson", 0, "Show only the latest entry for this lesson")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetInt64("student")
	lessonID, _ := cmd.Flags().GetInt64("lesson")
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

	st, ok := cliInstance.App.Store.Student(studentID)
	if !ok {
		if fmtErr := formatter.Error("STUDENT_NOT_FOUND", fmt.Sprintf("student %d not found", studentID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if cmd.Flags().Changed("lesson") {
		entry, ok := cliInstance.App.Store.StudentLessonProgress(studentID, lessonID)
		if !ok {
			if fmtErr := formatter.Error("PROGRESS_NOT_FOUND", fmt.Sprintf("no progress for student %d on lesson %d", studentID, lessonID)); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"success":  true,
				"progress": entry,
			})
		}

		fmt.Printf("%s, lesson %d (%s)\n", st.Name, entry.LessonID, entry.Date.Format("2006-01-02"))
		fmt.Printf("  Participation: %d/5\n", entry.Participation)
		fmt.Printf("  Comprehension: %d/5\n", entry.Comprehension)
		fmt.Printf("  Excellence:    %d/5\n", entry.Excellence)
		fmt.Printf("  Points:        %d\n", entry.CalculatedPoints)
		if entry.Notes != "" {
			fmt.Printf("  Notes:         %s\n", entry.Notes)
		}
		return nil
	}

	entries := cliInstance.App.Store.StudentProgress(studentID)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"progress": entries,
		})
	}

	if len(entries) == 0 {
		fmt.Printf("No progress recorded for %s\n", st.Name)
		return nil
	}

	fmt.Printf("%s: %d entries\n", st.Name, len(entries))
	for _, e := range entries {
		lessonName := fmt.Sprintf("lesson %d", e.LessonID)
		if l, ok := cliInstance.App.Store.LessonInfo(e.LessonID); ok {
			lessonName = l.LessonName
		}
		fmt.Printf("  %s  %-24s %d/%d/%d stars, %d pts\n",
			e.Date.Format("2006-01-02"), lessonName,
			e.Participation, e.Comprehension, e.Excellence, e.CalculatedPoints)
	}
	return nil
}
