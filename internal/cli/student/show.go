package student

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
	"github.com/masarhq/masar/internal/cli/styles"
)

// ShowCmd returns the student show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a student's profile",
		Long: `Show a student's points, level progress, grade rank, and badges.

Examples:
  # Human-readable profile
  masar student show --id=1

  # JSON output for scripts
  masar student show --id=1 --json
`,
		RunE: runShow,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Student ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetInt64("id")
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

	st := cliInstance.App.Store
	student, ok := st.Student(studentID)
	if !ok {
		if fmtErr := formatter.Error("STUDENT_NOT_FOUND", fmt.Sprintf("student %d not found", studentID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	progress := st.CalculateLevelProgress(student.TotalPoints)
	rank := st.StudentRank(studentID)
	badges := st.StudentBadges(studentID)

	if jsonOutput {
		badgeList := make([]map[string]interface{}, len(badges))
		for i, b := range badges {
			badgeList[i] = map[string]interface{}{
				"id":     b.Badge.ID,
				"name":   b.Badge.Name,
				"earned": b.Earned,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"student": map[string]interface{}{
				"id":                 student.ID,
				"name":               student.Name,
				"total_points":       student.TotalPoints,
				"avatar_level":       student.AvatarLevel,
				"helpfulness_points": student.HelpfulnessPoints,
				"respect_points":     student.RespectPoints,
				"teamwork_points":    student.TeamworkPoints,
				"excellence_points":  student.ExcellencePoints,
				"level_percent":      progress.Percent,
				"rank":               rank.Rank,
				"rank_total":         rank.Total,
				"badges":             badgeList,
			},
		})
	}

	styles.Init(cliInstance.Config.ColorScheme)

	fmt.Println(styles.TitleStyle.Render(student.Name))
	fmt.Printf("  %s %d\n", styles.LabelStyle.Render("Points:"), student.TotalPoints)
	fmt.Printf("  %s\n", styles.RenderLevelBar(progress.CurrentLevel, progress.Percent))
	if rank.Total > 0 {
		fmt.Printf("  %s %d of %d in grade\n", styles.LabelStyle.Render("Rank:"), rank.Rank, rank.Total)
	}
	fmt.Printf("  %s helpfulness %d, respect %d, teamwork %d, excellence %d\n",
		styles.LabelStyle.Render("Categories:"),
		student.HelpfulnessPoints, student.RespectPoints,
		student.TeamworkPoints, student.ExcellencePoints)

	earned := 0
	for _, b := range badges {
		if b.Earned {
			earned++
		}
	}
	fmt.Printf("  %s %d of %d\n", styles.LabelStyle.Render("Badges:"), earned, len(badges))
	for _, b := range badges {
		if b.Earned {
			fmt.Printf("    %s %s\n", b.Badge.Icon, b.Badge.Name)
		}
	}
	return nil
}
