package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Flow identifies which of the two planning paths is active.
type Flow string

const (
	FlowCredits   Flow = "credits"
	FlowSemesters Flow = "semesters"
)

// Approach returns the preferences approach tag the scheduler expects.
func (f Flow) Approach() string {
	return string(f) + "-based"
}

// Other returns the opposite flow.
func (f Flow) Other() Flow {
	if f == FlowCredits {
		return FlowSemesters
	}
	return FlowCredits
}

// First-year credit caps and their allowed ranges.
const (
	DefaultFirstYearFallWinter = 15
	DefaultFirstYearSpring     = 10
	MinFirstYearFallWinter     = 12
	MaxFirstYearFallWinter     = 18
	MinFirstYearSpring         = 9
	MaxFirstYearSpring         = 12
)

// FirstYearLimits caps credits during the first three semesters.
type FirstYearLimits struct {
	FallWinterCredits int `json:"fallWinterCredits"`
	SpringCredits     int `json:"springCredits"`
}

// DefaultFirstYearLimits returns the caps used when none were saved.
func DefaultFirstYearLimits() FirstYearLimits {
	return FirstYearLimits{
		FallWinterCredits: DefaultFirstYearFallWinter,
		SpringCredits:     DefaultFirstYearSpring,
	}
}

// Validate checks both caps are within their allowed ranges.
func (l FirstYearLimits) Validate() error {
	if l.FallWinterCredits < MinFirstYearFallWinter || l.FallWinterCredits > MaxFirstYearFallWinter {
		return fmt.Errorf("fall/winter credits must be %d-%d, got %d",
			MinFirstYearFallWinter, MaxFirstYearFallWinter, l.FallWinterCredits)
	}
	if l.SpringCredits < MinFirstYearSpring || l.SpringCredits > MaxFirstYearSpring {
		return fmt.Errorf("spring credits must be %d-%d, got %d",
			MinFirstYearSpring, MaxFirstYearSpring, l.SpringCredits)
	}
	return nil
}

// Preferences are the student's scheduling knobs sent alongside the
// course data.
type Preferences struct {
	StartSemester     string           `json:"startSemester"`
	MajorClassLimit   int              `json:"majorClassLimit"`
	FallWinterCredits int              `json:"fallWinterCredits,omitempty"`
	SpringCredits     int              `json:"springCredits,omitempty"`
	TargetSemesters   int              `json:"targetSemesters,omitempty"`
	Approach          string           `json:"approach"`
	LimitFirstYear    bool             `json:"limitFirstYear,omitempty"`
	FirstYearLimits   *FirstYearLimits `json:"firstYearLimits,omitempty"`
}

// ScheduleRequest is the body posted to /api/generate-schedule.
type ScheduleRequest struct {
	CourseData  []Course    `json:"courseData"`
	Preferences Preferences `json:"preferences"`
}

// Term names in calendar order.
var Terms = []string{"Winter", "Spring", "Fall"}

// ParseTerm splits a "Fall 2024" style label into its term and year.
func ParseTerm(label string) (string, int, error) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("term %q: want \"<Fall|Winter|Spring> <year>\"", label)
	}
	term := ""
	for _, t := range Terms {
		if strings.EqualFold(parts[0], t) {
			term = t
		}
	}
	if term == "" {
		return "", 0, fmt.Errorf("term %q: unknown term %q", label, parts[0])
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 1900 {
		return "", 0, fmt.Errorf("term %q: invalid year", label)
	}
	return term, year, nil
}
