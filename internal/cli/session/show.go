package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// ShowCmd returns the session show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a session sheet grid",
		Long: `Show a sheet's grid: the section's current roster as rows, the generated
time columns, and each student's marks and weight total under the sheet's
marking config.

Examples:
  masar session show --id=1
  masar session show --id=1 --json
`,
		RunE: runShow,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Sheet ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	sheetID, _ := cmd.Flags().GetInt64("id")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

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

	sheet, err := cliInstance.App.SessionService.GetSheet(sheetID)
	if err != nil {
		if fmtErr := formatter.Error("SHEET_NOT_FOUND", fmt.Sprintf("sheet %d not found", sheetID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	cfg, err := cliInstance.App.SessionService.GetConfig(sheet.MarkingConfigID)
	if err != nil {
		if fmtErr := formatter.Error("CONFIG_NOT_FOUND", fmt.Sprintf("marking config '%s' not found", sheet.MarkingConfigID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	// Rows are the owning section's current roster
	students := cliInstance.App.Store.StudentsBySection(sheet.SectionID)

	if jsonOutput {
		rows := make([]map[string]interface{}, len(students))
		for i, st := range students {
			marks := make(map[int]string)
			for _, m := range sheet.Marks {
				if m.StudentID == st.ID && m.Context == cfg.ID {
					marks[m.ColumnIndex] = m.Type
				}
			}
			total, _ := cliInstance.App.SessionService.SheetTotal(sheet.ID, st.ID, cfg.ID)
			rows[i] = map[string]interface{}{
				"student_id": st.ID,
				"name":       st.Name,
				"marks":      marks,
				"total":      total,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"sheet": map[string]interface{}{
				"id":        sheet.ID,
				"name":      sheet.Name,
				"columns":   sheet.Columns,
				"config_id": cfg.ID,
				"rows":      rows,
			},
		})
	}

	// Symbol lookup for the grid cells
	symbols := make(map[string]string, len(cfg.Marks))
	for _, m := range cfg.Marks {
		symbols[m.Type] = m.Symbol
	}

	fmt.Printf("%s [%s]\n", sheet.Name, cfg.Name)
	fmt.Printf("%-20s", "")
	for _, col := range sheet.Columns {
		fmt.Printf("%-8s", col.Label)
	}
	fmt.Printf("%s\n", "Total")

	for _, st := range students {
		fmt.Printf("%-20s", st.Name)
		for _, col := range sheet.Columns {
			cell := "."
			for _, m := range sheet.Marks {
				if m.StudentID == st.ID && m.ColumnIndex == col.Index && m.Context == cfg.ID {
					if sym, ok := symbols[m.Type]; ok && sym != "" {
						cell = sym
					} else {
						cell = m.Type
					}
					break
				}
			}
			fmt.Printf("%-8s", cell)
		}
		total, _ := cliInstance.App.SessionService.SheetTotal(sheet.ID, st.ID, cfg.ID)
		fmt.Printf("%.1f\n", total)
	}
	return nil
}
