// Package selection tracks a student's major and minor picks and enforces
// that the three picks come from three different Holokai sections.
package selection

import (
	"errors"
	"fmt"
)

// Slot is one of the three program choices. Lower values take precedence.
type Slot int

const (
	Major Slot = iota
	Minor1
	Minor2
)

// Slots lists every slot in precedence order.
var Slots = []Slot{Major, Minor1, Minor2}

func (s Slot) String() string {
	switch s {
	case Major:
		return "major"
	case Minor1:
		return "minor1"
	case Minor2:
		return "minor2"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

var (
	// ErrIncompatible indicates the pick shares a Holokai section with
	// another slot and was rejected.
	ErrIncompatible = errors.New("holokai section already taken")

	// ErrSlotLocked indicates a minor was picked before a major.
	ErrSlotLocked = errors.New("select a major first")
)

// Pick is a chosen course and its Holokai section.
type Pick struct {
	CourseID int
	Holokai  string
}

// State holds one flow's three slots. The zero value is empty.
type State struct {
	picks [3]*Pick
}

// Get returns the slot's pick, if any.
func (s *State) Get(slot Slot) (Pick, bool) {
	p := s.picks[slot]
	if p == nil {
		return Pick{}, false
	}
	return *p, true
}

// Filled reports whether slot holds a pick.
func (s *State) Filled(slot Slot) bool {
	return s.picks[slot] != nil
}

// Category returns the slot's Holokai section, or "" when empty.
func (s *State) Category(slot Slot) string {
	if p := s.picks[slot]; p != nil {
		return p.Holokai
	}
	return ""
}

// Select assigns pick to slot. A pick that repeats the section of a
// higher-precedence slot is rejected and the slot is emptied. Filling an
// empty slot with a section already held anywhere is rejected and the slot
// stays empty. Otherwise the pick is stored and any other slot holding the
// same section is cleared.
func (s *State) Select(slot Slot, pick Pick) error {
	if slot != Major && !s.Filled(Major) {
		return ErrSlotLocked
	}

	wasEmpty := !s.Filled(slot)
	for _, other := range Slots {
		if other == slot || !s.collides(other, pick.Holokai) {
			continue
		}
		if other < slot || wasEmpty {
			s.picks[slot] = nil
			return fmt.Errorf("%s conflicts with %s: %w", slot, other, ErrIncompatible)
		}
	}

	p := pick
	s.picks[slot] = &p
	for _, other := range Slots {
		if other != slot && s.collides(other, pick.Holokai) {
			s.picks[other] = nil
		}
	}
	return nil
}

// Clear empties slot. Clearing the major empties both minors as well.
func (s *State) Clear(slot Slot) {
	s.picks[slot] = nil
	if slot == Major {
		s.picks[Minor1] = nil
		s.picks[Minor2] = nil
	}
}

// Reset empties every slot.
func (s *State) Reset() {
	s.picks = [3]*Pick{}
}

// CanGenerate reports whether all three slots are filled with three
// distinct, non-empty sections.
func (s *State) CanGenerate() bool {
	seen := make(map[string]bool, len(Slots))
	for _, slot := range Slots {
		p := s.picks[slot]
		if p == nil || p.Holokai == "" || seen[p.Holokai] {
			return false
		}
		seen[p.Holokai] = true
	}
	return true
}

// Incompatible reports whether a course in the given section would be
// rejected for slot because a higher-precedence slot already holds it.
func (s *State) Incompatible(slot Slot, holokai string) bool {
	for _, other := range Slots {
		if other >= slot {
			break
		}
		if s.collides(other, holokai) {
			return true
		}
	}
	return false
}

// CourseIDs returns the picked course ids in slot order, skipping empty
// slots.
func (s *State) CourseIDs() []int {
	ids := make([]int, 0, len(Slots))
	for _, slot := range Slots {
		if p := s.picks[slot]; p != nil && p.CourseID != 0 {
			ids = append(ids, p.CourseID)
		}
	}
	return ids
}

func (s *State) collides(slot Slot, holokai string) bool {
	p := s.picks[slot]
	return p != nil && holokai != "" && p.Holokai == holokai
}
