package section

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

// CreateCmd returns the section create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new section",
		Long: `Create a new section (a class group) under a grade.

Examples:
  # Create a section
  masar section create --name="3-A" --grade=1

  # Quiet mode for bash capture
  SECTION_ID=$(masar section create --name="3-A" --grade=1 --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Section name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int64("grade", 0, "Grade ID (required)")
	if err := cmd.MarkFlagRequired("grade"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	gradeID, _ := cmd.Flags().GetInt64("grade")
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

	section, err := cliInstance.App.RosterService.CreateSection(gradeID, name)
	if err != nil {
		if errors.Is(err, rosterservice.ErrGradeNotFound) {
			if fmtErr := formatter.Error("GRADE_NOT_FOUND", fmt.Sprintf("grade %d not found", gradeID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("SECTION_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	if quietMode {
		fmt.Printf("%d\n", section.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"section": map[string]interface{}{
				"id":       section.ID,
				"name":     section.Name,
				"grade_id": section.GradeID,
			},
		})
	}

	fmt.Printf("✓ Section '%s' created successfully (ID: %d)\n", section.Name, section.ID)
	return nil
}
