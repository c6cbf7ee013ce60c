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

// CreateCmd returns the session create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new session sheet",
		Long: `Create a session sheet: a grid of time columns over a section's roster.
Columns are generated once from the start date and never change.

Examples:
  # A week of daily attendance columns
  masar session create --section=1 --name="Week 1" --unit=day --duration=5 --start=2025-09-07

  # A term of weekly homework columns
  masar session create --section=1 --name="Term 1" --unit=week --duration=12 --config=homework
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().Int64("section", 0, "Section ID (required)")
	if err := cmd.MarkFlagRequired("section"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("name", "", "Sheet name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("unit", "", "Column time unit: day, week, month (required)")
	if err := cmd.MarkFlagRequired("unit"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("duration", 0, "Number of columns, 1-55 (required)")
	if err := cmd.MarkFlagRequired("duration"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("start", "", "Start date YYYY-MM-DD (defaults to today)")
	cmd.Flags().String("config", "attendance", "Marking config ID")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	sectionID, _ := cmd.Flags().GetInt64("section")
	name, _ := cmd.Flags().GetString("name")
	unitStr, _ := cmd.Flags().GetString("unit")
	duration, _ := cmd.Flags().GetInt("duration")
	startStr, _ := cmd.Flags().GetString("start")
	configID, _ := cmd.Flags().GetString("config")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	unit, err := cli.ParseTimeUnit(unitStr)
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	start, err := cli.ParseDate(startStr)
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

	sheet, err := cliInstance.App.SessionService.CreateSheet(sessionservice.CreateSheetRequest{
		SectionID:       sectionID,
		Name:            name,
		TimeUnit:        unit,
		Duration:        duration,
		StartDate:       start,
		MarkingConfigID: configID,
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionservice.ErrSectionNotFound):
			if fmtErr := formatter.Error("SECTION_NOT_FOUND", fmt.Sprintf("section %d not found", sectionID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		case errors.Is(err, sessionservice.ErrConfigNotFound):
			if fmtErr := formatter.Error("CONFIG_NOT_FOUND", fmt.Sprintf("marking config '%s' not found", configID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		default:
			if fmtErr := formatter.Error("SHEET_CREATE_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
	}

	if quietMode {
		fmt.Printf("%d\n", sheet.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"sheet": map[string]interface{}{
				"id":         sheet.ID,
				"name":       sheet.Name,
				"section_id": sheet.SectionID,
				"time_unit":  sheet.TimeUnit,
				"duration":   sheet.Duration,
				"start_date": sheet.StartDate,
			},
		})
	}

	fmt.Printf("✓ Session sheet '%s' created with %d columns (ID: %d)\n", sheet.Name, len(sheet.Columns), sheet.ID)
	return nil
}
