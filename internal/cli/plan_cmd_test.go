package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/teatest"
	"github.com/alexanderramin/degreeplan/internal/testutil"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPicker runs the picker through teatest with the given keys.
func scriptedPicker(t *testing.T, keys ...string) func(*pickerModel) (*pickerModel, error) {
	return func(m *pickerModel) (*pickerModel, error) {
		d := teatest.New(t, m)
		d.Keys(keys...)
		return d.Model.(*pickerModel), nil
	}
}

func TestPlanCmd_RequiresTerminal(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestPlanCmd_PickAndGenerateCredits(t *testing.T) {
	app, srv := testApp(t)
	app.IsInteractive = func() bool { return true }
	// Credits flow; Biology, Accounting, Art.
	app.RunPicker = scriptedPicker(t,
		"enter",
		"enter", "enter",
		"enter", "enter",
		"enter", "down", "enter",
		"g",
	)
	app.RunForm = func(formRunner) error { return nil }

	output, err := executeCmd(t, app, "plan")
	require.NoError(t, err)
	assert.Contains(t, output, "Graduation Date")

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "credits-based", reqs[0].Preferences.Approach)
	assert.Equal(t, 15, reqs[0].Preferences.FallWinterCredits)
	assert.Equal(t, 3, reqs[0].Preferences.MajorClassLimit)
	ids := make([]int, 0, len(reqs[0].CourseData))
	for _, c := range reqs[0].CourseData {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int{testutil.BiologyMajorID, testutil.AccountingMinorID, testutil.ArtMinorID,
		domain.ReligionCourseID, domain.FluentCourseID}, ids)
}

func TestPlanCmd_SemestersFlow(t *testing.T) {
	app, srv := testApp(t)
	app.IsInteractive = func() bool { return true }
	// Semesters flow; Business Management, Art, Chemistry.
	app.RunPicker = scriptedPicker(t,
		"down", "enter",
		"enter", "down", "enter",
		"enter", "down", "enter",
		"enter", "down", "down", "enter",
		"g",
	)
	app.RunForm = func(formRunner) error { return nil }

	_, err := executeCmd(t, app, "plan")
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "semesters-based", reqs[0].Preferences.Approach)
	assert.Equal(t, 8, reqs[0].Preferences.TargetSemesters)
}

func TestPlanCmd_QuitGeneratesNothing(t *testing.T) {
	app, srv := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.RunPicker = scriptedPicker(t, "q")
	forms := 0
	app.RunForm = func(formRunner) error { forms++; return nil }

	_, err := executeCmd(t, app, "plan")
	require.NoError(t, err)
	assert.Zero(t, forms)
	assert.Zero(t, srv.Hits("/api/generate-schedule"))
}

func TestPlanCmd_FormAbort(t *testing.T) {
	app, srv := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.RunPicker = scriptedPicker(t, "enter", "enter", "enter", "enter", "enter", "enter", "down", "enter", "g")
	app.RunForm = func(formRunner) error { return huh.ErrUserAborted }

	_, err := executeCmd(t, app, "plan")
	require.NoError(t, err)
	assert.Zero(t, srv.Hits("/api/generate-schedule"))
}

func TestPlanCmd_PickerError(t *testing.T) {
	app, _ := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.RunPicker = func(*pickerModel) (*pickerModel, error) { return nil, errors.New("no tty") }

	_, err := executeCmd(t, app, "plan")
	require.Error(t, err)
	assert.Equal(t, "no tty", err.Error())
}

func TestDefaultStartTerm(t *testing.T) {
	cases := map[time.Month]string{
		time.January:   "Spring 2025",
		time.March:     "Spring 2025",
		time.April:     "Fall 2025",
		time.August:    "Fall 2025",
		time.September: "Winter 2026",
		time.December:  "Winter 2026",
	}
	for month, want := range cases {
		now := time.Date(2025, month, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, defaultStartTerm(now), month.String())
	}
}

func TestPlanDetails_Forms(t *testing.T) {
	d := newPlanDetails()
	d.Start = "Fall 2024"
	ids := []int{12, 40, 41}

	credits := d.CreditsForm(ids)
	assert.Equal(t, 12, credits.MajorID)
	assert.Equal(t, 41, credits.Minor2ID)
	assert.Equal(t, 15, credits.FallWinterCredits)
	assert.Equal(t, domain.EnglishFluent, credits.EnglishLevel)

	semesters := d.SemestersForm(ids[:1])
	assert.Equal(t, 12, semesters.MajorID)
	assert.Zero(t, semesters.Minor1ID)
	assert.Equal(t, 8, semesters.TargetSemesters)
}

func TestFirstYearInputs_Limits(t *testing.T) {
	in := newFirstYearInputs(domain.FirstYearLimits{FallWinterCredits: 16, SpringCredits: 11})
	assert.Equal(t, "16", in.FallWinter)

	in.Spring = ""
	assert.Equal(t, domain.FirstYearLimits{FallWinterCredits: 16, SpringCredits: 10}, in.Limits())
}

func TestValidators(t *testing.T) {
	check := validateIntRange(12, 18)
	assert.NoError(t, check("12"))
	assert.NoError(t, check("18"))
	assert.EqualError(t, check("19"), "enter a number from 12 to 18")
	assert.Error(t, check("x"))

	assert.NoError(t, validateTerm("Winter 2026"))
	assert.Error(t, validateTerm("Summer 2026"))
}
