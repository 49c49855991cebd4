package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/cli/formatter"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/payload"
	"github.com/alexanderramin/degreeplan/internal/selection"
	"github.com/alexanderramin/degreeplan/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// programFlags are the picks and preferences common to both flows.
type programFlags struct {
	major           int
	minor1          int
	minor2          int
	english         string
	start           string
	majorClassLimit int
	limitFirstYear  bool
}

func (p *programFlags) register(f *pflag.FlagSet) {
	f.IntVar(&p.major, "major", 0, "Major course id")
	f.IntVar(&p.minor1, "minor1", 0, "First minor course id")
	f.IntVar(&p.minor2, "minor2", 0, "Second minor course id")
	f.StringVar(&p.english, "english", "", "English level: fluent, eil1 or eil2")
	f.StringVar(&p.start, "start", "", `Start semester, e.g. "Fall 2024"`)
	f.IntVar(&p.majorClassLimit, "major-class-limit", 0, "Maximum major classes per semester (1-6)")
	f.BoolVar(&p.limitFirstYear, "limit-first-year", false, "Apply the saved first-year credit limits")
}

func (p *programFlags) englishLevel() (domain.EnglishLevel, error) {
	if p.english == "" {
		return "", nil
	}
	return domain.ParseEnglishLevel(p.english)
}

func (p *programFlags) picks() [3]int {
	return [3]int{p.major, p.minor1, p.minor2}
}

func newGenerateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a schedule from credits per semester or a semester count",
	}
	cmd.AddCommand(
		newGenerateCreditsCmd(app),
		newGenerateSemestersCmd(app),
	)
	return cmd
}

func newGenerateCreditsCmd(app *App) *cobra.Command {
	var (
		prog       programFlags
		out        outputFlags
		fallWinter int
		spring     int
	)
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Generate a schedule from per-semester credit targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			english, err := prog.englishLevel()
			if err != nil {
				return err
			}
			if err := checkPicks(cmd.Context(), app, prog.picks()); err != nil {
				return err
			}
			form := payload.CreditsForm{
				MajorID:           prog.major,
				Minor1ID:          prog.minor1,
				Minor2ID:          prog.minor2,
				EnglishLevel:      english,
				StartSemester:     prog.start,
				MajorClassLimit:   prog.majorClassLimit,
				FallWinterCredits: fallWinter,
				SpringCredits:     spring,
				LimitFirstYear:    prog.limitFirstYear,
			}
			res, err := generateCredits(cmd, app, form)
			if err != nil {
				return err
			}
			return emitSchedule(cmd, app, res.Response, out)
		},
	}
	prog.register(cmd.Flags())
	cmd.Flags().IntVar(&fallWinter, "fall-winter-credits", 0, "Credits per Fall and Winter semester")
	cmd.Flags().IntVar(&spring, "spring-credits", 0, "Credits per Spring semester")
	out.register(cmd, app)
	return cmd
}

func newGenerateSemestersCmd(app *App) *cobra.Command {
	var (
		prog    programFlags
		out     outputFlags
		targets int
	)
	cmd := &cobra.Command{
		Use:   "semesters",
		Short: "Generate a schedule that finishes in a given number of semesters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			english, err := prog.englishLevel()
			if err != nil {
				return err
			}
			if err := checkPicks(cmd.Context(), app, prog.picks()); err != nil {
				return err
			}
			form := payload.SemestersForm{
				MajorID:         prog.major,
				Minor1ID:        prog.minor1,
				Minor2ID:        prog.minor2,
				EnglishLevel:    english,
				StartSemester:   prog.start,
				TargetSemesters: targets,
				MajorClassLimit: prog.majorClassLimit,
				LimitFirstYear:  prog.limitFirstYear,
			}
			res, err := generateSemesters(cmd, app, form)
			if err != nil {
				return err
			}
			return emitSchedule(cmd, app, res.Response, out)
		},
	}
	prog.register(cmd.Flags())
	cmd.Flags().IntVar(&targets, "target-semesters", 0, "Number of semesters to finish in")
	out.register(cmd, app)
	return cmd
}

func generateCredits(cmd *cobra.Command, app *App, form payload.CreditsForm) (*service.ScheduleResult, error) {
	stop := startSpinner(cmd, app, "Generating your schedule...")
	defer stop()
	return app.Planner.GenerateFromCredits(cmd.Context(), form)
}

func generateSemesters(cmd *cobra.Command, app *App, form payload.SemestersForm) (*service.ScheduleResult, error) {
	stop := startSpinner(cmd, app, "Generating your schedule...")
	defer stop()
	return app.Planner.GenerateFromSemesters(cmd.Context(), form)
}

// startSpinner shows progress on stderr for interactive runs only.
func startSpinner(cmd *cobra.Command, app *App, msg string) func() {
	if !app.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), msg)
}

// checkPicks replays the flag picks through the selection rules so a
// conflicting or missing Holokai section is reported before anything is
// fetched. Empty picks are left for form validation to report.
func checkPicks(ctx context.Context, app *App, ids [3]int) error {
	if ids[0] == 0 {
		return nil
	}
	cat, err := app.Planner.Catalog(ctx)
	if err != nil {
		return err
	}
	var state selection.State
	for i, slot := range selection.Slots {
		if ids[i] == 0 {
			continue
		}
		pool := cat.Minors
		kind := "minor"
		if slot == selection.Major {
			pool, kind = cat.Majors, "major"
		}
		course, ok := findCourse(pool, ids[i])
		if !ok {
			return fmt.Errorf("--%s %d is not a %s in the catalog", slot, ids[i], kind)
		}
		err := state.Select(slot, selection.Pick{CourseID: course.ID, Holokai: course.Holokai})
		if errors.Is(err, selection.ErrIncompatible) {
			return errors.New(selection.IncompatibleMessage(slot))
		}
		if err != nil {
			return err
		}
	}
	if ids[1] != 0 && ids[2] != 0 && !state.CanGenerate() {
		return errors.New(selection.IncompleteMessage)
	}
	return nil
}

func findCourse(courses []domain.CourseSummary, id int) (domain.CourseSummary, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return domain.CourseSummary{}, false
}
