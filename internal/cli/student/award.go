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

// AwardCmd returns the student award subcommand
func AwardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "award",
		Short: "Award or deduct points",
		Long: `Award points to a student (or a whole section) under a category.
Negative points deduct; totals never go below zero, but the log keeps the
raw amount.

Examples:
  # Award 10 helpfulness points
  masar student award --id=1 --points=10 --category=helpfulness

  # Deduct points with a reason
  masar student award --id=1 --points=-5 --category=deduction --reason="missing homework"

  # Award the whole section at once
  masar student award --section=1 --points=5 --category=teamwork --reason="group project"
`,
		RunE: runAward,
	}

	// Target flags (one of --id or --section)
	cmd.Flags().Int64("id", 0, "Student ID")
	cmd.Flags().Int64("section", 0, "Section ID (award every student in the section)")

	// Required flags
	cmd.Flags().Int("points", 0, "Points to add, negative to deduct (required)")
	if err := cmd.MarkFlagRequired("points"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("category", "", "Category: helpfulness, respect, teamwork, excellence, lesson, deduction (required)")
	if err := cmd.MarkFlagRequired("category"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("reason", "", "Reason recorded in the log (defaults per category)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runAward(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetInt64("id")
	sectionID, _ := cmd.Flags().GetInt64("section")
	points, _ := cmd.Flags().GetInt("points")
	categoryStr, _ := cmd.Flags().GetString("category")
	reason, _ := cmd.Flags().GetString("reason")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if (studentID == 0) == (sectionID == 0) {
		if fmtErr := formatter.ErrorWithSuggestion("USAGE_ERROR",
			"exactly one of --id or --section is required",
			"Use --id for one student or --section for a whole class"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

	category, err := cli.ParseCategory(categoryStr)
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

	// Section-wide award
	if sectionID != 0 {
		err := cliInstance.App.RosterService.AwardSection(sectionID, points, category, reason)
		if err != nil {
			if errors.Is(err, rosterservice.ErrSectionNotFound) {
				if fmtErr := formatter.Error("SECTION_NOT_FOUND", fmt.Sprintf("section %d not found", sectionID)); fmtErr != nil {
					log.Printf("Error formatting error message: %v", fmtErr)
				}
				os.Exit(cli.ExitNotFound)
			}
			if fmtErr := formatter.Error("AWARD_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}

		if quietMode {
			return nil
		}
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"success":    true,
				"section_id": sectionID,
				"points":     points,
				"category":   category,
			})
		}
		fmt.Printf("✓ Awarded %d %s points to every student in section %d\n", points, category, sectionID)
		return nil
	}

	// Single-student award
	updated, err := cliInstance.App.RosterService.AwardPoints(rosterservice.AwardRequest{
		StudentID: studentID,
		Points:    points,
		Category:  category,
		Reason:    reason,
	})
	if err != nil {
		if errors.Is(err, rosterservice.ErrStudentNotFound) {
			if fmtErr := formatter.Error("STUDENT_NOT_FOUND", fmt.Sprintf("student %d not found", studentID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("AWARD_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	if quietMode {
		fmt.Printf("%d\n", updated.TotalPoints)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"student": map[string]interface{}{
				"id":           updated.ID,
				"name":         updated.Name,
				"total_points": updated.TotalPoints,
				"avatar_level": updated.AvatarLevel,
			},
		})
	}

	fmt.Printf("✓ %s now has %d points (level %d)\n", updated.Name, updated.TotalPoints, updated.AvatarLevel)
	return nil
}
