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

// ProgressCmd returns the lesson progress subcommand
func ProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Record a student's lesson evaluation",
		Long: `Record star ratings for a student on a lesson. Each rating is 1 to 5
stars and their sum is awarded to the student as lesson points automatically.

Saving again for the same student and lesson appends a new entry rather than
overwriting; reads take the most recent one.

Examples:
  masar lesson progress --student=12 --lesson=3 --participation=4 --comprehension=5 --excellence=3
  masar lesson progress --student=12 --lesson=3 --participation=5 --comprehension=5 --excellence=5 --notes="Great recovery"
`,
		RunE: runProgress,
	}

	// Required flags
	cmd.Flags().Int64("student", 0, "Student ID (required)")
	cmd.Flags().Int64("lesson", 0, "Lesson ID (required)")
	cmd.Flags().Int("participation", 0, "Participation stars, 1-5 (required)")
	cmd.Flags().Int("comprehension", 0, "Comprehension stars, 1-5 (required)")
	cmd.Flags().Int("excellence", 0, "Excellence stars, 1-5 (required)")
	for _, name := range []string{"student", "lesson", "participation", "comprehension", "excellence"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "error", err)
		}
	}

	// Optional flags
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().String("date", "", "Evaluation date (YYYY-MM-DD, default today)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (awarded points only)")

	return cmd
}

func runProgress(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetInt64("student")
	lessonID, _ := cmd.Flags().GetInt64("lesson")
	participation, _ := cmd.Flags().GetInt("participation")
	comprehension, _ := cmd.Flags().GetInt("comprehension")
	excellence, _ := cmd.Flags().GetInt("excellence")
	notes, _ := cmd.Flags().GetString("notes")
	dateStr, _ := cmd.Flags().GetString("date")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	for _, stars := range []int{participation, comprehension, excellence} {
		if stars < 1 || stars > 5 {
			if fmtErr := formatter.Error("VALIDATION_ERROR", "star ratings must be between 1 and 5"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
	}

	date, err := cli.ParseDate(dateStr)
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
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

	st, ok := cliInstance.App.Store.Student(studentID)
	if !ok {
		if fmtErr := formatter.Error("STUDENT_NOT_FOUND", fmt.Sprintf("student %d not found", studentID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}
	lessonItem, ok := cliInstance.App.Store.LessonInfo(lessonID)
	if !ok {
		if fmtErr := formatter.Error("LESSON_NOT_FOUND", fmt.Sprintf("lesson %d not found", lessonID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	points := participation + comprehension + excellence
	progress := models.LessonProgress{
		StudentID:        studentID,
		LessonID:         lessonID,
		Participation:    participation,
		Comprehension:    comprehension,
		Excellence:       excellence,
		Notes:            notes,
		CalculatedPoints: points,
		Date:             date,
	}

	if err := cliInstance.App.Store.SaveLessonProgress(progress); err != nil {
		if fmtErr := formatter.Error("SAVE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Printf("%d\n", points)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":        true,
			"student_id":     studentID,
			"lesson_id":      lessonID,
			"awarded_points": points,
		})
	}

	fmt.Printf("✓ Recorded '%s' for %s: %d pts awarded\n", lessonItem.LessonName, st.Name, points)
	return nil
}
