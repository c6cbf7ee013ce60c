package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// UpdateCmd returns the profile update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the teacher profile",
		Long: `Update the teacher profile. Only the flags you pass change, the other
field keeps its current value.

Examples:
  masar profile update --name="Ms. Haddad"
  masar profile update --name="Ms. Haddad" --subject="Mathematics"
`,
		RunE: runUpdate,
	}

	// Optional flags
	cmd.Flags().String("name", "", "Display name")
	cmd.Flags().String("subject", "", "Subject taught")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("subject") {
		if fmtErr := formatter.Error("USAGE_ERROR", "nothing to update: pass --name and/or --subject"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

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

	p := cliInstance.App.Store.TeacherProfile()
	if cmd.Flags().Changed("name") {
		p.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("subject") {
		p.Subject, _ = cmd.Flags().GetString("subject")
	}

	if err := cliInstance.App.Store.UpdateTeacherProfile(p.Name, p.Subject); err != nil {
		if fmtErr := formatter.Error("UPDATE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"profile": p,
		})
	}

	fmt.Printf("✓ Profile updated: %s (%s)\n", p.Name, p.Subject)
	return nil
}
