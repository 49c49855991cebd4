package domain

import (
	"fmt"
	"strings"
)

// EnglishLevel is the student's English placement.
type EnglishLevel string

const (
	EnglishFluent EnglishLevel = "Fluent"
	EnglishEIL1   EnglishLevel = "EIL Level 1"
	EnglishEIL2   EnglishLevel = "EIL Level 2"
)

// Well-known catalog course ids that are added to every payload.
const (
	ReligionCourseID = 2
	EIL1CourseID     = 5
	EIL2CourseID     = 6
	FluentCourseID   = 7
)

// EnglishLevels lists the selectable levels in display order.
var EnglishLevels = []EnglishLevel{EnglishFluent, EnglishEIL1, EnglishEIL2}

// Label returns the picker label for the level.
func (l EnglishLevel) Label() string {
	if l == EnglishFluent {
		return "Fluent (No EIL Required)"
	}
	return string(l)
}

// CourseID returns the catalog course that fulfils the level's English
// requirement. An empty level has no course.
func (l EnglishLevel) CourseID() (int, bool) {
	switch {
	case l == "":
		return 0, false
	case l == EnglishFluent:
		return FluentCourseID, true
	case strings.Contains(string(l), "Level 1"):
		return EIL1CourseID, true
	default:
		return EIL2CourseID, true
	}
}

// ParseEnglishLevel accepts the level names case-insensitively, plus the
// short forms "eil1" and "eil2".
func ParseEnglishLevel(s string) (EnglishLevel, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch norm {
	case "", "fluent":
		return EnglishFluent, nil
	case "eil1", "eillevel1", "level1":
		return EnglishEIL1, nil
	case "eil2", "eillevel2", "level2":
		return EnglishEIL2, nil
	}
	return "", fmt.Errorf("unknown english level %q (want fluent, eil1 or eil2)", s)
}
