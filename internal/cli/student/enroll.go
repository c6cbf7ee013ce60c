package student

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
	rosterservice "github.com/masarhq/masar/internal/services/roster"
)

// EnrollCmd returns the student enroll subcommand
func EnrollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a new student",
		Long: `Enroll a student in a section. The grade is derived from the section.

Examples:
  # Enroll a student
  masar student enroll --name="Sara" --gender=female --section=1

  # Quiet mode for bash capture
  STUDENT_ID=$(masar student enroll --name="Sara" --gender=female --section=1 --quiet)
`,
		RunE: runEnroll,
	}

	// Required flags
	cmd.Flags().String("name", "", "Student name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("gender", "", "Student gender: male or female (required)")
	if err := cmd.MarkFlagRequired("gender"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int64("section", 0, "Section ID (required)")
	if err := cmd.MarkFlagRequired("section"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runEnroll(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	genderStr, _ := cmd.Flags().GetString("gender")
	sectionID, _ := cmd.Flags().GetInt64("section")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	gender, err := cli.ParseGender(genderStr)
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

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

	student, err := cliInstance.App.RosterService.EnrollStudent(rosterservice.EnrollStudentRequest{
		Name:      name,
		Gender:    gender,
		SectionID: sectionID,
	})
	if err != nil {
		if errors.Is(err, rosterservice.ErrSectionNotFound) {
			if fmtErr := formatter.Error("SECTION_NOT_FOUND", fmt.Sprintf("section %d not found", sectionID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("STUDENT_ENROLL_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	if quietMode {
		fmt.Printf("%d\n", student.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"student": map[string]interface{}{
				"id":         student.ID,
				"name":       student.Name,
				"gender":     student.Gender,
				"section_id": student.SectionID,
				"grade_id":   student.GradeID,
			},
		})
	}

	fmt.Printf("✓ Student '%s' enrolled successfully (ID: %d)\n", student.Name, student.ID)
	return nil
}
