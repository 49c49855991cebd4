package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/degreeplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCoursesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List the majors and minors in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Planner.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseList(cat.Majors, cat.Minors))
			return nil
		},
	}
	cmd.AddCommand(newCoursesShowCmd(app))
	return cmd
}

func newCoursesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a program's sections and classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid course id %q", args[0])
			}
			course, err := app.Planner.CourseDetail(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseDetail(course))
			return nil
		},
	}
}
