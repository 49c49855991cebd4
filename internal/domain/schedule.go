package domain

import (
	"fmt"
	"math"
	"strings"
)

// DefaultClassCredits is assumed for a scheduled class that reports none.
const DefaultClassCredits = 3

// RequiredGraduationCredits is the bachelor's degree credit target.
const RequiredGraduationCredits = 120

// ScheduledClass is a class placed into a semester by the scheduler.
type ScheduledClass struct {
	ID         int        `json:"id,omitempty"`
	Number     string     `json:"class_number"`
	Name       string     `json:"class_name"`
	Credits    int        `json:"credits,omitempty"`
	CourseType string     `json:"course_type,omitempty"`
	IsElective bool       `json:"is_elective,omitempty"`
	SectionID  int        `json:"section_id,omitempty"`
	CourseID   int        `json:"course_id,omitempty"`
	Prereqs    []ClassRef `json:"prerequisites,omitempty"`
}

// DisplayCredits returns the class credits, defaulting unknown values.
func (c ScheduledClass) DisplayCredits() int {
	if c.Credits == 0 {
		return DefaultClassCredits
	}
	return c.Credits
}

// Tag returns the class's course type for labelling. Combined types such as
// "eil/holokai" use their first part.
func (c ScheduledClass) Tag() string {
	t := c.CourseType
	if t == "" {
		return "unknown"
	}
	if i := strings.Index(t, "/"); i >= 0 {
		t = t[:i]
	}
	return t
}

// Semester is one term of a generated schedule.
type Semester struct {
	Type         string           `json:"type"`
	Year         int              `json:"year"`
	Classes      []ScheduledClass `json:"classes"`
	TotalCredits int              `json:"totalCredits"`
}

// Label returns "<type> <year>".
func (s Semester) Label() string {
	return fmt.Sprintf("%s %d", s.Type, s.Year)
}

// DisplayCredits returns the reported semester total, falling back to the
// sum of class credits when the scheduler left it unset.
func (s Semester) DisplayCredits() int {
	if s.TotalCredits != 0 {
		return s.TotalCredits
	}
	sum := 0
	for _, c := range s.Classes {
		sum += c.DisplayCredits()
	}
	return sum
}

// UniqueClasses returns the semester's classes with repeated class numbers
// removed, keeping the first occurrence.
func (s Semester) UniqueClasses() []ScheduledClass {
	seen := make(map[string]bool, len(s.Classes))
	out := make([]ScheduledClass, 0, len(s.Classes))
	for _, c := range s.Classes {
		if seen[c.Number] {
			continue
		}
		seen[c.Number] = true
		out = append(out, c)
	}
	return out
}

// ScheduleMetadata is the optional quality report from the scheduler.
type ScheduleMetadata struct {
	Score           *float64 `json:"score,omitempty"`
	Improvements    []string `json:"improvements,omitempty"`
	Approach        string   `json:"approach,omitempty"`
	StartSemester   string   `json:"startSemester,omitempty"`
	TargetSemesters int      `json:"targetSemesters,omitempty"`
	ActualSemesters int      `json:"actualSemesters,omitempty"`
	Success         *bool    `json:"success,omitempty"`
	Message         string   `json:"message,omitempty"`
}

// QualityPercent returns the score as a rounded percentage. ok is false
// when the scheduler sent no score.
func (m *ScheduleMetadata) QualityPercent() (pct int, ok bool) {
	if m == nil || m.Score == nil {
		return 0, false
	}
	return int(math.Round(*m.Score * 100)), true
}

// ScheduleResponse is the body returned by /api/generate-schedule.
type ScheduleResponse struct {
	Schedule     []Semester        `json:"schedule"`
	Improvements []string          `json:"improvements,omitempty"`
	Metadata     *ScheduleMetadata `json:"metadata,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// ScheduleSummary is the headline panel shown above a schedule.
type ScheduleSummary struct {
	TotalCredits    int
	ElectivesNeeded int
	TotalSemesters  int
	GraduationLabel string
}

// Summarize computes the summary panel. Semesters contribute their reported
// totals only. ok is false for an empty schedule.
func Summarize(schedule []Semester) (ScheduleSummary, bool) {
	if len(schedule) == 0 {
		return ScheduleSummary{}, false
	}
	total := 0
	for _, s := range schedule {
		total += s.TotalCredits
	}
	electives := RequiredGraduationCredits - total
	if electives < 0 {
		electives = 0
	}
	return ScheduleSummary{
		TotalCredits:    total,
		ElectivesNeeded: electives,
		TotalSemesters:  len(schedule),
		GraduationLabel: schedule[len(schedule)-1].Label(),
	}, true
}
