package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
	sessionservice "github.com/masarhq/masar/internal/services/session"
)

// MarkCmd returns the session mark subcommand
func MarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Set or cycle a cell mark",
		Long: `Record a mark at (student, column) on a sheet. Without --type the cell
cycles through the config's mark sequence; the step after the last mark
clears the cell. Marks recorded under different configs at the same cell are
independent.

Examples:
  # Cycle attendance: empty -> present -> absent -> late -> excused -> empty
  masar session mark --sheet=1 --student=2 --column=0

  # Set a specific mark
  masar session mark --sheet=1 --student=2 --column=0 --type=late

  # Clear a cell
  masar session mark --sheet=1 --student=2 --column=0 --type=""

  # Mark under the homework vocabulary instead
  masar session mark --sheet=1 --student=2 --column=0 --config=homework
`,
		RunE: runMark,
	}

	// Required flags
	cmd.Flags().Int64("sheet", 0, "Sheet ID (required)")
	if err := cmd.MarkFlagRequired("sheet"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int64("student", 0, "Student ID (required)")
	if err := cmd.MarkFlagRequired("student"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("column", 0, "Column index, 0-based (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("type", "", "Mark type to set (omit to cycle, empty string to clear)")
	cmd.Flags().String("config", "attendance", "Marking config ID")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runMark(cmd *cobra.Command, args []string) error {
	sheetID, _ := cmd.Flags().GetInt64("sheet")
	studentID, _ := cmd.Flags().GetInt64("student")
	column, _ := cmd.Flags().GetInt("column")
	configID, _ := cmd.Flags().GetString("config")
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

	svc := cliInstance.App.SessionService

	var result string
	if cmd.Flags().Changed("type") {
		markType, _ := cmd.Flags().GetString("type")
		err = svc.SetMark(sheetID, studentID, column, markType, configID)
		result = markType
	} else {
		result, err = svc.CycleMark(sheetID, studentID, column, configID)
	}
	if err != nil {
		switch {
		case errors.Is(err, sessionservice.ErrSheetNotFound):
			if fmtErr := formatter.Error("SHEET_NOT_FOUND", fmt.Sprintf("sheet %d not found", sheetID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		case errors.Is(err, sessionservice.ErrConfigNotFound):
			if fmtErr := formatter.Error("CONFIG_NOT_FOUND", fmt.Sprintf("marking config '%s' not found", configID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		case errors.Is(err, sessionservice.ErrInvalidMarkType):
			if fmtErr := formatter.Error("INVALID_MARK", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		default:
			if fmtErr := formatter.Error("MARK_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return err
		}
	}

	if quietMode {
		fmt.Printf("%s\n", result)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"mark": map[string]interface{}{
				"sheet_id":   sheetID,
				"student_id": studentID,
				"column":     column,
				"type":       result,
				"config_id":  configID,
			},
		})
	}

	if result == "" {
		fmt.Printf("✓ Cell cleared (student %d, column %d)\n", studentID, column)
	} else {
		fmt.Printf("✓ Marked '%s' (student %d, column %d)\n", result, studentID, column)
	}
	return nil
}
