package session

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// PresetCmd returns the preset parent command
func PresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage marking presets",
	}

	cmd.AddCommand(presetListCmd())
	cmd.AddCommand(presetResetCmd())

	return cmd
}

// presetListCmd returns the preset list subcommand
func presetListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List marking presets",
		Long: `List every marking preset and its mark vocabulary in cycle order.

Examples:
  masar session preset list
  masar session preset list --json
`,
		RunE: runPresetList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runPresetList(cmd *cobra.Command, args []string) error {
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

	configs := cliInstance.App.SessionService.ListConfigs()

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"presets": configs,
		})
	}

	for _, cfg := range configs {
		fmt.Printf("%s (%s)\n", cfg.Name, cfg.ID)
		for _, m := range cfg.Marks {
			fmt.Printf("  %s %s: weight %g\n", m.Symbol, m.Label, m.Weight)
		}
	}
	return nil
}

// presetResetCmd returns the preset reset subcommand
func presetResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in presets",
		Long: `Replace every marking preset with the built-in defaults.

Warning: This is a global reset. Custom presets are discarded too, not just
edits to the built-in ones. Marks already recorded on sheets are untouched.

Examples:
  masar session preset reset
  masar session preset reset --force
`,
		RunE: runPresetReset,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runPresetReset(cmd *cobra.Command, args []string) error {
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

	if !force && !quietMode {
		fmt.Println("⚠ Warning: This discards custom presets as well as edits to built-in ones")
		fmt.Print("Reset all marking presets to defaults? (y/N): ")
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			log.Printf("Error reading user input: %v", err)
		}
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.SessionService.ResetConfigs(); err != nil {
		if fmtErr := formatter.Error("RESET_ERROR", err.Error()); fmtErr != nil {
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

	fmt.Println("✓ Marking presets restored to defaults")
	return nil
}
