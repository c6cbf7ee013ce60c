package grade

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
	rosterservice "github.com/masarhq/masar/internal/services/roster"
)

// DeleteCmd returns the grade delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a grade",
		Long: `Delete a grade by ID (requires confirmation unless --force or --quiet).

Warning: Deleting a grade removes all of its sections, students, point
history, lesson progress, and session sheets.

Examples:
  # Delete with confirmation
  masar grade delete --id=1

  # Skip confirmation
  masar grade delete --id=1 --force
`,
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Grade ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	gradeID, _ := cmd.Flags().GetInt64("id")
	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.NewCLI()
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	// Get grade details for confirmation
	grade, ok := cliInstance.App.Store.Grade(gradeID)
	if !ok {
		if fmtErr := formatter.Error("GRADE_NOT_FOUND", fmt.Sprintf("grade %d not found", gradeID)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode {
		fmt.Println("⚠ Warning: Deleting a grade removes all of its sections, students, and history")
		fmt.Printf("Delete grade #%d: '%s'? (y/N): ", gradeID, grade.Name)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			log.Printf("Error reading user input: %v", err)
		}
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.RosterService.DeleteGrade(gradeID); err != nil {
		if errors.Is(err, rosterservice.ErrGradeNotFound) {
			if fmtErr := formatter.Error("GRADE_NOT_FOUND", fmt.Sprintf("grade %d not found", gradeID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("DELETE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"grade_id": gradeID,
		})
	}

	fmt.Printf("✓ Grade %d deleted successfully\n", gradeID)
	return nil
}
