package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/degreeplan/internal/cli/formatter"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/payload"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// degreeplanHuhTheme returns a custom huh theme using the Gruvbox palette.
func degreeplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// firstYearInputs holds the raw text of the first-year form.
type firstYearInputs struct {
	FallWinter string
	Spring     string
}

func newFirstYearInputs(l domain.FirstYearLimits) *firstYearInputs {
	return &firstYearInputs{
		FallWinter: strconv.Itoa(l.FallWinterCredits),
		Spring:     strconv.Itoa(l.SpringCredits),
	}
}

// Limits converts the validated text back into limits.
func (in *firstYearInputs) Limits() domain.FirstYearLimits {
	def := domain.DefaultFirstYearLimits()
	return domain.FirstYearLimits{
		FallWinterCredits: parsePositiveInt(in.FallWinter, def.FallWinterCredits),
		SpringCredits:     parsePositiveInt(in.Spring, def.SpringCredits),
	}
}

// wizardFirstYear creates the first-year credit limits form.
func wizardFirstYear(in *firstYearInputs) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			creditInput("Fall/Winter credits (first year)",
				domain.MinFirstYearFallWinter, domain.MaxFirstYearFallWinter, &in.FallWinter),
			creditInput("Spring credits (first year)",
				domain.MinFirstYearSpring, domain.MaxFirstYearSpring, &in.Spring),
		),
	).WithTheme(degreeplanHuhTheme()).WithShowHelp(false)
}

// planDetails holds the raw answers of the plan details form.
type planDetails struct {
	Start           string
	English         domain.EnglishLevel
	MajorClassLimit string
	FallWinter      string
	Spring          string
	TargetSemesters string
	LimitFirstYear  bool
}

func newPlanDetails() *planDetails {
	return &planDetails{
		Start:           defaultStartTerm(time.Now()),
		English:         domain.EnglishFluent,
		MajorClassLimit: "3",
		FallWinter:      "15",
		Spring:          "10",
		TargetSemesters: "8",
	}
}

// defaultStartTerm suggests the next term that has not started yet.
func defaultStartTerm(now time.Time) string {
	switch m := now.Month(); {
	case m <= time.March:
		return fmt.Sprintf("Spring %d", now.Year())
	case m <= time.August:
		return fmt.Sprintf("Fall %d", now.Year())
	default:
		return fmt.Sprintf("Winter %d", now.Year()+1)
	}
}

// CreditsForm combines the picks with the credits-flow answers.
func (d *planDetails) CreditsForm(ids []int) payload.CreditsForm {
	major, minor1, minor2 := splitPicks(ids)
	return payload.CreditsForm{
		MajorID:           major,
		Minor1ID:          minor1,
		Minor2ID:          minor2,
		EnglishLevel:      d.English,
		StartSemester:     d.Start,
		MajorClassLimit:   parsePositiveInt(d.MajorClassLimit, 0),
		FallWinterCredits: parsePositiveInt(d.FallWinter, 0),
		SpringCredits:     parsePositiveInt(d.Spring, 0),
		LimitFirstYear:    d.LimitFirstYear,
	}
}

// SemestersForm combines the picks with the semesters-flow answers.
func (d *planDetails) SemestersForm(ids []int) payload.SemestersForm {
	major, minor1, minor2 := splitPicks(ids)
	return payload.SemestersForm{
		MajorID:         major,
		Minor1ID:        minor1,
		Minor2ID:        minor2,
		EnglishLevel:    d.English,
		StartSemester:   d.Start,
		TargetSemesters: parsePositiveInt(d.TargetSemesters, 0),
		MajorClassLimit: parsePositiveInt(d.MajorClassLimit, 0),
		LimitFirstYear:  d.LimitFirstYear,
	}
}

func splitPicks(ids []int) (major, minor1, minor2 int) {
	picks := make([]int, 3)
	copy(picks, ids)
	return picks[0], picks[1], picks[2]
}

// wizardPlanDetails creates the preferences form shown after the picker.
// The credits flow asks for per-semester credits, the semesters flow for a
// semester count.
func wizardPlanDetails(flow domain.Flow, d *planDetails) *huh.Form {
	english := make([]huh.Option[domain.EnglishLevel], 0, len(domain.EnglishLevels))
	for _, l := range domain.EnglishLevels {
		english = append(english, huh.NewOption(l.Label(), l))
	}

	fields := []huh.Field{
		termInput("Start semester", &d.Start),
		huh.NewSelect[domain.EnglishLevel]().
			Title("English level").
			Options(english...).
			Value(&d.English),
		intRangeInput("Major classes per semester", 1, 6, &d.MajorClassLimit),
	}
	if flow == domain.FlowSemesters {
		fields = append(fields, intRangeInput("Semesters to finish in", 1, 20, &d.TargetSemesters))
	} else {
		fields = append(fields,
			intRangeInput("Fall/Winter credits per semester", 1, 24, &d.FallWinter),
			intRangeInput("Spring credits per semester", 1, 24, &d.Spring),
		)
	}
	fields = append(fields, huh.NewConfirm().
		Title("Limit first-year credits?").
		Affirmative("Yes").
		Negative("No").
		Value(&d.LimitFirstYear))

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(degreeplanHuhTheme()).WithShowHelp(false)
}
