package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Pick a major and two minors interactively, then generate",
		Long: `Interactive planner. Choose how to plan (credits per semester or a
number of semesters), pick a major and two minors from three different
Holokai sections, answer a few questions and the schedule is generated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("plan needs an interactive terminal; use 'degreeplan generate' instead")
			}
			cat, err := app.Planner.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			picker, err := app.runPicker(cmd, newPickerModel(courseLists{majors: cat.Majors, minors: cat.Minors}))
			if err != nil {
				return err
			}
			if !picker.Done {
				return nil
			}

			details := newPlanDetails()
			if err := app.runForm(wizardPlanDetails(picker.Flow(), details)); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}

			var res *service.ScheduleResult
			if picker.Flow() == domain.FlowSemesters {
				res, err = generateSemesters(cmd, app, details.SemestersForm(picker.CourseIDs()))
			} else {
				res, err = generateCredits(cmd, app, details.CreditsForm(picker.CourseIDs()))
			}
			if err != nil {
				return err
			}
			return emitSchedule(cmd, app, res.Response, out)
		},
	}
	out.register(cmd, app)
	return cmd
}

func (a *App) runPicker(cmd *cobra.Command, m *pickerModel) (*pickerModel, error) {
	if a.RunPicker != nil {
		return a.RunPicker(m)
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithContext(cmd.Context()),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}
	return final.(*pickerModel), nil
}
