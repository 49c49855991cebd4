package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// FormatCourseList renders the major and minor pickers' contents as two
// tables with Holokai indicators.
func FormatCourseList(majors, minors []domain.CourseSummary) string {
	var b strings.Builder
	b.WriteString(Header("Majors") + "\n")
	b.WriteString(courseTable(majors))
	b.WriteString("\n" + Header("Minors") + "\n")
	b.WriteString(courseTable(minors))
	return b.String()
}

func courseTable(courses []domain.CourseSummary) string {
	if len(courses) == 0 {
		return Dim("  none") + "\n"
	}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		holokai := Dim("--")
		if c.Holokai != "" {
			holokai = HolokaiDot(c.Holokai) + " " + c.Holokai
		}
		rows = append(rows, []string{StyleDim.Render(fmt.Sprint(c.ID)), c.Name, holokai})
	}
	return RenderTable([]string{"ID", "NAME", "HOLOKAI"}, rows)
}

// FormatCourseDetail renders a course's requirement sections as a tree.
func FormatCourseDetail(c *domain.Course) string {
	var b strings.Builder
	title := c.Name
	if c.Holokai != nil && *c.Holokai != "" {
		title = HolokaiDot(*c.Holokai) + " " + title
	}
	b.WriteString(StyleHeader.Render(title) + "  " + Dim(string(c.Type)) + "\n\n")

	var items []TreeItem
	for si, sec := range c.Sections {
		detail := fmt.Sprintf("%d cr required", sec.CreditsRequired)
		if sec.CreditsNeededToTake != nil {
			detail += fmt.Sprintf(", %d cr to start", *sec.CreditsNeededToTake)
		}
		items = append(items, TreeItem{
			Title:    sec.Name,
			Level:    1,
			IsLast:   si == len(c.Sections)-1,
			Required: sec.IsRequired,
			Detail:   detail,
		})
		for ci, cls := range sec.Classes {
			items = append(items, TreeItem{
				Title:  cls.Number + "  " + cls.Name,
				Level:  2,
				IsLast: ci == len(sec.Classes)-1,
				Detail: Credits(cls.Credits),
			})
		}
	}
	if len(items) == 0 {
		b.WriteString(Dim("No sections") + "\n")
		return b.String()
	}
	b.WriteString(RenderTree(items))
	return b.String()
}

// FormatFirstYearLimits renders the saved first-year credit caps.
func FormatFirstYearLimits(l domain.FirstYearLimits) string {
	body := KeyValue("Fall/Winter", Credits(l.FallWinterCredits), 11) + "\n" +
		KeyValue("Spring", Credits(l.SpringCredits), 11)
	return RenderBox("First-year credit limits", body)
}
