package cli

import (
	"io"

	"github.com/alexanderramin/degreeplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Planner   service.PlannerService
	FirstYear service.FirstYearService

	// IsInteractive reports whether stdin is a terminal. Interactive runs
	// get huh forms and a progress spinner. Nil means never interactive.
	IsInteractive func() bool

	// RunPicker runs the plan picker. Nil runs it as a full-screen
	// bubbletea program; tests substitute a scripted one.
	RunPicker func(m *pickerModel) (*pickerModel, error)

	// RunForm runs a huh form. Nil runs it on the terminal.
	RunForm func(f formRunner) error

	// PreviewAddr is used when --serve is given without an address.
	PreviewAddr string

	// PreviewLog receives the preview server's access log. Nil keeps the
	// server quiet.
	PreviewLog io.Writer
}

// formRunner is the subset of *huh.Form the CLI needs.
type formRunner interface {
	Run() error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f formRunner) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

// NewRootCmd creates the top-level "degreeplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "degreeplan",
		Short:         "Plan a four-year degree schedule from a major and two minors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCoursesCmd(app),
		newGenerateCmd(app),
		newFirstYearCmd(app),
		newPlanCmd(app),
		newShowCmd(app),
	)

	return root
}
