package lesson

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
)

// ListCmd returns the lesson list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the lesson catalog",
		Long: `List every lesson in the global catalog in import order.

Examples:
  masar lesson list
  masar lesson list --json
`,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	lessons := cliInstance.App.Store.AllLessons()

	if quietMode {
		for _, l := range lessons {
			fmt.Printf("%d\n", l.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"lessons": lessons,
		})
	}

	if len(lessons) == 0 {
		fmt.Println("No lessons found. Add one with 'masar lesson add' or import a file.")
		return nil
	}

	fmt.Printf("Found %d lessons:\n", len(lessons))
	for _, l := range lessons {
		fmt.Printf("  %s %d: %s (ID: %d)\n", l.UnitName, l.LessonNumber, l.LessonName, l.ID)
	}
	return nil
}
