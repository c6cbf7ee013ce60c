package profile

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
	"github.com/masarhq/masar/internal/models"
)

// TemplateCmd returns the template parent command
func TemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage parent-report templates",
	}

	cmd.AddCommand(templateListCmd())
	cmd.AddCommand(templateSaveCmd())
	cmd.AddCommand(templateDeleteCmd())

	return cmd
}

// templateListCmd returns the template list subcommand
func templateListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List report templates",
		RunE:  runTemplateList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runTemplateList(cmd *cobra.Command, args []string) error {
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

	templates := cliInstance.App.Store.ReportTemplates()

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"templates": templates,
		})
	}

	if len(templates) == 0 {
		fmt.Println("No report templates saved")
		return nil
	}

	for _, t := range templates {
		marker := " "
		if t.IsDefault {
			marker = "*"
		}
		fmt.Printf("%s %s (%s): engagement=%t notes=%t points=%t\n",
			marker, t.Name, t.ID,
			t.Config.ShowEngagement, t.Config.ShowNotes, t.Config.ShowPoints)
	}
	return nil
}

// templateSaveCmd returns the template save subcommand
func templateSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update a report template",
		Long: `Save a report template. Saving an existing id overwrites it. Marking a
template as default clears the default flag on every other template.

Examples:
  masar profile template save --id=weekly --name="Weekly report" --points --notes
  masar profile template save --id=weekly --name="Weekly report" --points --default
`,
		RunE: runTemplateSave,
	}

	// Required flags
	cmd.Flags().String("id", "", "Template ID (required)")
	cmd.Flags().String("name", "", "Template name (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().Bool("engagement", false, "Include the engagement section")
	cmd.Flags().Bool("notes", false, "Include the notes section")
	cmd.Flags().Bool("points", false, "Include the points section")
	cmd.Flags().Bool("default", false, "Make this the default template")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runTemplateSave(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")
	engagement, _ := cmd.Flags().GetBool("engagement")
	notes, _ := cmd.Flags().GetBool("notes")
	points, _ := cmd.Flags().GetBool("points")
	isDefault, _ := cmd.Flags().GetBool("default")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

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

	template := models.ReportTemplate{
		ID:   id,
		Name: name,
		Config: models.ReportTemplateConfig{
			ShowEngagement: engagement,
			ShowNotes:      notes,
			ShowPoints:     points,
		},
		IsDefault: isDefault,
	}

	if err := cliInstance.App.Store.SaveReportTemplate(template); err != nil {
		if fmtErr := formatter.Error("SAVE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Println(template.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"template": template,
		})
	}

	fmt.Printf("✓ Saved template '%s'\n", template.Name)
	return nil
}

// templateDeleteCmd returns the template delete subcommand
func templateDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a report template",
		Long: `Delete a report template by id. Deleting an unknown id is a no-op.

Examples:
  masar profile template delete --id=weekly
`,
		RunE: runTemplateDelete,
	}

	// Required flags
	cmd.Flags().String("id", "", "Template ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
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

	if err := cliInstance.App.Store.DeleteReportTemplate(id); err != nil {
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
			"success": true,
		})
	}

	fmt.Printf("✓ Deleted template '%s'\n", id)
	return nil
}
