package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	tagWidth    = 8
	summaryPad  = 23
	progressBar = 24
)

// FormatSchedule renders a scheduler response for the terminal: a summary
// box, one card per semester, then any insights and the quality score.
func FormatSchedule(resp *domain.ScheduleResponse) string {
	var schedule []domain.Semester
	if resp != nil {
		schedule = resp.Schedule
	}
	summary, ok := domain.Summarize(schedule)
	if !ok {
		return FormatEmptySchedule()
	}

	var b strings.Builder
	b.WriteString(formatSummary(summary))
	b.WriteString("\n\n")

	for _, sem := range schedule {
		b.WriteString(formatSemester(sem))
		b.WriteString("\n")
	}

	if len(resp.Improvements) > 0 {
		b.WriteString("\n" + Header("Schedule Insights") + "\n")
		for _, imp := range resp.Improvements {
			b.WriteString("  • " + imp + "\n")
		}
	}
	if pct, ok := resp.Metadata.QualityPercent(); ok {
		b.WriteString("\n" + StyleBold.Render(fmt.Sprintf("Schedule Quality: %d%%", pct)) + "\n")
		for _, imp := range resp.Metadata.Improvements {
			b.WriteString("  " + Dim(imp) + "\n")
		}
	}
	return b.String()
}

// FormatEmptySchedule is shown when the scheduler returned no semesters.
func FormatEmptySchedule() string {
	body := StyleRed.Render("Could not create a valid schedule with the given requirements.") + "\n" +
		Dim("Try adjusting your course selections or credit limits.")
	return RenderBox("Unable to Generate Schedule", body)
}

func formatSummary(s domain.ScheduleSummary) string {
	lines := []string{
		KeyValue("Total Credits Taken", StyleBold.Render(fmt.Sprint(s.TotalCredits)), summaryPad),
		KeyValue("Elective Credits Needed", StyleYellow.Render(fmt.Sprint(s.ElectivesNeeded)), summaryPad),
		KeyValue("Total Semesters", fmt.Sprint(s.TotalSemesters), summaryPad),
		KeyValue("Graduation Date", StyleGreen.Render(s.GraduationLabel), summaryPad),
		"",
		RenderCreditProgress(s.TotalCredits, domain.RequiredGraduationCredits, progressBar),
	}
	return RenderBox("Summary", strings.Join(lines, "\n"))
}

func formatSemester(sem domain.Semester) string {
	classes := sem.UniqueClasses()
	numWidth := 0
	for _, c := range classes {
		if w := lipgloss.Width(c.Number); w > numWidth {
			numWidth = w
		}
	}

	var lines []string
	for _, c := range classes {
		tag := c.Tag()
		tagCell := TagStyle(tag).Render(tag) + strings.Repeat(" ", max(0, tagWidth-lipgloss.Width(tag)))
		num := c.Number + strings.Repeat(" ", numWidth-lipgloss.Width(c.Number))
		lines = append(lines, fmt.Sprintf("%s %s  %s  %s", tagCell, StyleBold.Render(num), c.Name, Dim(Credits(c.DisplayCredits()))))
	}
	if len(lines) == 0 {
		lines = append(lines, Dim("No classes"))
	}
	lines = append(lines, Dim(fmt.Sprintf("Total: %d credits", sem.DisplayCredits())))
	return RenderCard(sem.Label(), strings.Join(lines, "\n"), 0)
}
