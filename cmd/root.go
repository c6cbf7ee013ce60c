package cmd

import (
	"github.com/spf13/cobra"

	"github.com/masarhq/masar/internal/cli"
	"github.com/masarhq/masar/internal/cli/grade"
	"github.com/masarhq/masar/internal/cli/lesson"
	"github.com/masarhq/masar/internal/cli/profile"
	"github.com/masarhq/masar/internal/cli/section"
	"github.com/masarhq/masar/internal/cli/session"
	"github.com/masarhq/masar/internal/cli/stats"
	"github.com/masarhq/masar/internal/cli/student"
)

var rootCmd = &cobra.Command{
	Use:   "masar",
	Short: "Masar - A classroom management toolkit",
	Long:  `Masar is a command-line toolkit for managing grades, sections, students, points, lessons, and session sheets.`,
}

func init() {
	rootCmd.AddCommand(grade.GradeCmd())
	rootCmd.AddCommand(section.SectionCmd())
	rootCmd.AddCommand(student.StudentCmd())
	rootCmd.AddCommand(session.SessionCmd())
	rootCmd.AddCommand(lesson.LessonCmd())
	rootCmd.AddCommand(stats.StatsCmd())
	rootCmd.AddCommand(profile.ProfileCmd())
	rootCmd.AddCommand(cli.ResetCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
