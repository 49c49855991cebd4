package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CourseType classifies a catalog course.
type CourseType string

const (
	CourseMajor    CourseType = "major"
	CourseMinor    CourseType = "minor"
	CourseReligion CourseType = "religion"
	CourseEIL      CourseType = "eil"
)

// Is reports whether t matches want, ignoring case.
func (t CourseType) Is(want CourseType) bool {
	return strings.EqualFold(string(t), string(want))
}

// CourseSummary is the lightweight row returned by /api/courses/basic and
// used to populate the major and minor pickers.
type CourseSummary struct {
	ID      int        `json:"id"`
	Name    string     `json:"course_name"`
	Type    CourseType `json:"course_type"`
	Holokai string     `json:"holokai,omitempty"`
}

// Course is a degree program (major, minor, religion core or EIL track)
// with its ordered requirement sections.
type Course struct {
	ID       int        `json:"id"`
	Name     string     `json:"course_name"`
	Type     CourseType `json:"course_type"`
	Holokai  *string    `json:"holokai"`
	Sections []Section  `json:"sections"`
}

// Section is a requirement group inside a course.
type Section struct {
	ID                  int     `json:"id"`
	Name                string  `json:"section_name"`
	CreditsRequired     int     `json:"credits_required"`
	IsRequired          bool    `json:"is_required"`
	CreditsNeededToTake *int    `json:"credits_needed_to_take"`
	Classes             []Class `json:"classes"`
}

// Class is a single catalog class. Prerequisites and corequisites arrive
// from the catalog as ClassRefs and leave the payload builder as fully
// minimized embedded classes.
type Class struct {
	ID               int        `json:"id"`
	Name             string     `json:"class_name"`
	Number           string     `json:"class_number"`
	SemestersOffered []string   `json:"semesters_offered"`
	Prerequisites    []ClassRef `json:"prerequisites,omitempty"`
	Corequisites     []ClassRef `json:"corequisites,omitempty"`
	Credits          int        `json:"credits"`
	IsSeniorClass    bool       `json:"is_senior_class"`
	Restrictions     string     `json:"restrictions"`
	IsElective       bool       `json:"is_elective"`
	CourseID         int        `json:"course_id,omitempty"`
}

// ClassRef is a prerequisite or corequisite reference. The catalog sends
// either a bare numeric class id or an embedded class object.
type ClassRef struct {
	ID    int
	Class *Class
}

// RefID returns a reference to the class with the given id.
func RefID(id int) ClassRef {
	return ClassRef{ID: id}
}

// RefClass returns a reference that embeds c.
func RefClass(c Class) ClassRef {
	return ClassRef{ID: c.ID, Class: &c}
}

// Embedded reports whether the reference carries class data.
func (r ClassRef) Embedded() bool {
	return r.Class != nil
}

func (r ClassRef) MarshalJSON() ([]byte, error) {
	if r.Class != nil {
		return json.Marshal(r.Class)
	}
	return json.Marshal(r.ID)
}

func (r *ClassRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ClassRef{}
		return nil
	}
	if data[0] != '{' {
		var id int
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("class reference %s: %w", data, err)
		}
		*r = ClassRef{ID: id}
		return nil
	}

	// Embedded objects occasionally carry class_id instead of id.
	var c struct {
		Class
		ClassID int `json:"class_id"`
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("class reference object: %w", err)
	}
	if c.ID == 0 {
		c.ID = c.ClassID
	}
	cls := c.Class
	*r = ClassRef{ID: cls.ID, Class: &cls}
	return nil
}
