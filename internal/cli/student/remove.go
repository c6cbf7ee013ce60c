package student

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// RemoveCmd returns the student remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a student",
		Long: `Remove a student by ID (requires confirmation unless --force or --quiet).

Warning: Removing a student deletes their point history and lesson progress,
and scrubs their marks from every session sheet.

Examples:
  # Remove with confirmation
  masar student remove --id=1

  # Skip confirmation
  masar student remove --id=1 --force
`,
		RunE: runRemove,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Student ID (required)")
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

func runRemove(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetInt64("id")
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

	student, ok := cliInstance.App.Store.Student(studentID)
	if !ok {
		if fmtErr := formatter.Error("STUDENT_NOT_FOUND", fmt.Sprintf("student %d not found", studentID)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode {
		fmt.Println("⚠ Warning: Removing a student deletes their history and session marks")
		fmt.Printf("Remove student #%d: '%s'? (y/N): ", studentID, student.Name)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			log.Printf("Error reading user input: %v", err)
		}
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.RosterService.RemoveStudent(studentID); err != nil {
		if fmtErr := formatter.Error("REMOVE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"student_id": studentID,
		})
	}

	fmt.Printf("✓ Student %d removed successfully\n", studentID)
	return nil
}
