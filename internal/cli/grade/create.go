package grade

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

// CreateCmd returns the grade create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new grade",
		Long: `Create a new grade (a year level holding sections).

Examples:
  # Create a grade (human-readable output)
  masar grade create --name="Grade 3" --color="#FFE5E5" --icon=book

  # JSON output for scripts
  masar grade create --name="Grade 3" --color="#FFE5E5" --json

  # Quiet mode for bash capture
  GRADE_ID=$(masar grade create --name="Grade 3" --color="#FFE5E5" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Grade name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("color", "", "Display color in hex format (required)")
	if err := cmd.MarkFlagRequired("color"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("icon", "", "Display icon name")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")
	icon, _ := cmd.Flags().GetString("icon")
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

	grade, err := cliInstance.App.RosterService.CreateGrade(rosterservice.CreateGradeRequest{
		Name:  name,
		Color: color,
		Icon:  icon,
	})
	if err != nil {
		if errors.Is(err, rosterservice.ErrInvalidColor) || errors.Is(err, rosterservice.ErrEmptyName) || errors.Is(err, rosterservice.ErrNameTooLong) {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		if fmtErr := formatter.Error("GRADE_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Printf("%d\n", grade.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"grade": map[string]interface{}{
				"id":    grade.ID,
				"name":  grade.Name,
				"color": grade.Color,
				"icon":  grade.Icon,
			},
		})
	}

	fmt.Printf("✓ Grade '%s' created successfully (ID: %d)\n", grade.Name, grade.ID)
	return nil
}
