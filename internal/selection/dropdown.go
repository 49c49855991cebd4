package selection

import (
	"sort"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// Option is one rendered dropdown entry.
type Option struct {
	Course       domain.CourseSummary
	HolokaiClass string
	Incompatible bool
}

// Pick converts the option into a slot pick.
func (o Option) Pick() Pick {
	return Pick{CourseID: o.Course.ID, Holokai: o.Course.Holokai}
}

// ExclusionFunc reports whether a course must be marked incompatible.
type ExclusionFunc func(domain.CourseSummary) bool

// Dropdown is a presentation-free picker: a fixed option list plus an
// exclusion predicate evaluated on every call to Options.
type Dropdown struct {
	Slot        Slot
	Placeholder string
	courses     []domain.CourseSummary
	exclude     ExclusionFunc
}

// NewDropdown builds a dropdown over courses. A nil exclude marks nothing.
func NewDropdown(slot Slot, placeholder string, courses []domain.CourseSummary, exclude ExclusionFunc) *Dropdown {
	return &Dropdown{
		Slot:        slot,
		Placeholder: placeholder,
		courses:     courses,
		exclude:     exclude,
	}
}

// SlotDropdown builds the dropdown for slot whose exclusion predicate reads
// the live selection state.
func SlotDropdown(state *State, slot Slot, courses []domain.CourseSummary) *Dropdown {
	return NewDropdown(slot, Placeholder(slot), courses, func(c domain.CourseSummary) bool {
		return state.Incompatible(slot, c.Holokai)
	})
}

// Options evaluates the exclusion predicate against the current state.
func (d *Dropdown) Options() []Option {
	out := make([]Option, 0, len(d.courses))
	for _, c := range d.courses {
		out = append(out, Option{
			Course:       c,
			HolokaiClass: domain.HolokaiClass(c.Holokai),
			Incompatible: d.exclude != nil && d.exclude(c),
		})
	}
	return out
}

// Len returns the number of options.
func (d *Dropdown) Len() int {
	return len(d.courses)
}

// Placeholder returns the prompt shown for an empty slot.
func Placeholder(slot Slot) string {
	switch slot {
	case Minor1:
		return "Select Your First Minor"
	case Minor2:
		return "Select Your Second Minor"
	default:
		return "Select a Major"
	}
}

// IncompleteMessage is shown when generation is requested before three
// distinct Holokai sections are picked.
const IncompleteMessage = "Select a major and two minors from three different Holokai sections."

// IncompatibleMessage is shown when a rejected pick is attempted.
func IncompatibleMessage(slot Slot) string {
	if slot == Minor2 {
		return "This minor is from the same Holokai section as your major or first minor. Please choose a different Holokai section."
	}
	if slot == Minor1 {
		return "This minor is from the same Holokai section as your major. Please choose a different Holokai section."
	}
	return "This Holokai section is already taken. Please choose a different Holokai section."
}

// Majors returns the major programs from the basic catalog, sorted by name.
func Majors(basic []domain.CourseSummary) []domain.CourseSummary {
	return filterSorted(basic, domain.CourseMajor)
}

// Minors returns the minor programs from the basic catalog, sorted by name.
func Minors(basic []domain.CourseSummary) []domain.CourseSummary {
	return filterSorted(basic, domain.CourseMinor)
}

func filterSorted(basic []domain.CourseSummary, t domain.CourseType) []domain.CourseSummary {
	var out []domain.CourseSummary
	for _, c := range basic {
		if c.Type.Is(t) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
