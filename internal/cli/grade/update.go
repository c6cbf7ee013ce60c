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

// UpdateCmd returns the grade update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a grade",
		Long: `Update a grade's display fields. Only provided flags are changed.

Examples:
  # Rename a grade
  masar grade update --id=1 --name="Grade Three"

  # Change the color only
  masar grade update --id=1 --color="#E5FFE5"
`,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Grade ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("name", "", "New grade name")
	cmd.Flags().String("color", "", "New display color in hex format")
	cmd.Flags().String("icon", "", "New display icon name")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	gradeID, _ := cmd.Flags().GetInt64("id")
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

	req := rosterservice.UpdateGradeRequest{ID: gradeID}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		req.Color = &color
	}
	if cmd.Flags().Changed("icon") {
		icon, _ := cmd.Flags().GetString("icon")
		req.Icon = &icon
	}

	if err := cliInstance.App.RosterService.UpdateGrade(req); err != nil {
		if errors.Is(err, rosterservice.ErrGradeNotFound) {
			if fmtErr := formatter.Error("GRADE_NOT_FOUND", fmt.Sprintf("grade %d not found", gradeID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("GRADE_UPDATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
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

	fmt.Printf("✓ Grade %d updated successfully\n", gradeID)
	return nil
}
