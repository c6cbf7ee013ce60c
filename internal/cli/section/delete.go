package section

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// DeleteCmd returns the section delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a section",
		Long: `Delete a section by ID (requires confirmation unless --force or --quiet).

Warning: Deleting a section removes its students, their point history and
lesson progress, and the section's session sheets. Sibling sections are
untouched.

Examples:
  # Delete with confirmation
  masar section delete --id=1

  # Skip confirmation
  masar section delete --id=1 --force
`,
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Section ID (required)")
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

func runDelete(cmd *cobra.Command, args []string) error {
	sectionID, _ := cmd.Flags().GetInt64("id")
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

	section, ok := cliInstance.App.Store.Section(sectionID)
	if !ok {
		if fmtErr := formatter.Error("SECTION_NOT_FOUND", fmt.Sprintf("section %d not found", sectionID)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode {
		fmt.Println("⚠ Warning: Deleting a section removes its students and their history")
		fmt.Printf("Delete section #%d: '%s'? (y/N): ", sectionID, section.Name)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			log.Printf("Error reading user input: %v", err)
		}
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.RosterService.DeleteSection(sectionID); err != nil {
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
			"success":    true,
			"section_id": sectionID,
		})
	}

	fmt.Printf("✓ Section %d deleted successfully\n", sectionID)
	return nil
}
