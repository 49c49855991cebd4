package selection

import "github.com/alexanderramin/degreeplan/internal/domain"

// Manager keeps one independent State per planning flow.
type Manager struct {
	active domain.Flow
	states map[domain.Flow]*State
}

// NewManager returns a Manager with both flows empty and none active.
func NewManager() *Manager {
	return &Manager{
		states: map[domain.Flow]*State{
			domain.FlowCredits:   {},
			domain.FlowSemesters: {},
		},
	}
}

// Active returns the active flow, or "" before the first Switch.
func (m *Manager) Active() domain.Flow {
	return m.active
}

// State returns the selection state for flow.
func (m *Manager) State(flow domain.Flow) *State {
	return m.states[flow]
}

// Current returns the active flow's state, or nil when none is active.
func (m *Manager) Current() *State {
	if m.active == "" {
		return nil
	}
	return m.states[m.active]
}

// Switch activates flow and resets the other flow's slots.
func (m *Manager) Switch(flow domain.Flow) *State {
	m.active = flow
	m.states[flow.Other()].Reset()
	return m.states[flow]
}

// Reset deactivates both flows and empties their slots.
func (m *Manager) Reset() {
	m.active = ""
	for _, s := range m.states {
		s.Reset()
	}
}
