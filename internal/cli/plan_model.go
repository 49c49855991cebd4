package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/cli/formatter"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/selection"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerStep int

const (
	stepFlow pickerStep = iota
	stepPicks
)

// flowChoices is the order flows are offered in.
var flowChoices = []domain.Flow{domain.FlowCredits, domain.FlowSemesters}

type pickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Select   key.Binding
	Close    key.Binding
	Clear    key.Binding
	Flow     key.Binding
	Restart  key.Binding
	Generate key.Binding
	Quit     key.Binding
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/select")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Clear:    key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "clear")),
		Flow:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "switch flow")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
		Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// pickerModel lets the student choose a flow and then a major and two
// minors from three different Holokai sections. Generate is only accepted
// once the selection state allows it.
type pickerModel struct {
	keys    pickerKeyMap
	manager *selection.Manager
	majors  []domain.CourseSummary
	minors  []domain.CourseSummary

	step       pickerStep
	flowCursor int

	dropdowns [3]*selection.Dropdown
	focus     selection.Slot
	open      bool
	cursor    int

	message string

	// Done is set when the student asked to generate; Cancelled when they
	// quit.
	Done      bool
	Cancelled bool
}

func newPickerModel(cat courseLists) *pickerModel {
	return &pickerModel{
		keys:    newPickerKeyMap(),
		manager: selection.NewManager(),
		majors:  cat.majors,
		minors:  cat.minors,
	}
}

// courseLists is the slice of the catalog the picker needs.
type courseLists struct {
	majors []domain.CourseSummary
	minors []domain.CourseSummary
}

// Flow returns the chosen flow.
func (m *pickerModel) Flow() domain.Flow {
	return m.manager.Active()
}

// CourseIDs returns the picks of the active flow in slot order.
func (m *pickerModel) CourseIDs() []int {
	if st := m.manager.Current(); st != nil {
		return st.CourseIDs()
	}
	return nil
}

func (m *pickerModel) Init() tea.Cmd { return nil }

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		m.Cancelled = true
		return m, tea.Quit
	}
	if m.step == stepFlow {
		return m.updateFlow(keyMsg)
	}
	if m.open {
		return m.updateOpen(keyMsg)
	}
	return m.updateSlots(keyMsg)
}

func (m *pickerModel) updateFlow(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.flowCursor > 0 {
			m.flowCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.flowCursor < len(flowChoices)-1 {
			m.flowCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.switchFlow(flowChoices[m.flowCursor])
	}
	return m, nil
}

// switchFlow activates flow, which empties the other flow's picks, and
// rebuilds the dropdowns over the active state.
func (m *pickerModel) switchFlow(flow domain.Flow) {
	state := m.manager.Switch(flow)
	m.dropdowns = [3]*selection.Dropdown{
		selection.SlotDropdown(state, selection.Major, m.majors),
		selection.SlotDropdown(state, selection.Minor1, m.minors),
		selection.SlotDropdown(state, selection.Minor2, m.minors),
	}
	m.step = stepPicks
	m.focus = selection.Major
	m.open = false
	m.message = ""
}

// startOver returns to the flow choice with both flows emptied.
func (m *pickerModel) startOver() {
	m.manager.Reset()
	m.step = stepFlow
	m.flowCursor = 0
	m.focus = selection.Major
	m.open = false
	m.message = ""
}

func (m *pickerModel) updateSlots(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up, m.keys.Prev):
		if m.focus > selection.Major {
			m.focus--
		}
	case key.Matches(msg, m.keys.Down, m.keys.Next):
		if m.focus < selection.Minor2 {
			m.focus++
		}
	case key.Matches(msg, m.keys.Select):
		m.openDropdown()
	case key.Matches(msg, m.keys.Clear):
		m.manager.Current().Clear(m.focus)
		m.message = ""
	case key.Matches(msg, m.keys.Flow):
		m.step = stepFlow
		for i, f := range flowChoices {
			if f == m.manager.Active() {
				m.flowCursor = i
			}
		}
	case key.Matches(msg, m.keys.Restart):
		m.startOver()
	case key.Matches(msg, m.keys.Generate):
		if !m.manager.Current().CanGenerate() {
			m.message = selection.IncompleteMessage
			return m, nil
		}
		m.Done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *pickerModel) openDropdown() {
	if m.focus != selection.Major && !m.manager.Current().Filled(selection.Major) {
		m.message = "Select a major first."
		return
	}
	if m.dropdowns[m.focus].Len() == 0 {
		return
	}
	m.open = true
	m.cursor = 0
	if pick, ok := m.manager.Current().Get(m.focus); ok {
		for i, opt := range m.dropdowns[m.focus].Options() {
			if opt.Course.ID == pick.CourseID {
				m.cursor = i
			}
		}
	}
}

func (m *pickerModel) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dd := m.dropdowns[m.focus]
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < dd.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Close):
		m.open = false
	case key.Matches(msg, m.keys.Select):
		opt := dd.Options()[m.cursor]
		m.open = false
		err := m.manager.Current().Select(m.focus, opt.Pick())
		switch {
		case errors.Is(err, selection.ErrIncompatible):
			m.message = selection.IncompatibleMessage(m.focus)
		case err != nil:
			m.message = err.Error()
		default:
			m.message = ""
			if m.focus < selection.Minor2 {
				m.focus++
			}
		}
	}
	return m, nil
}

func (m *pickerModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Degree Planner") + "\n\n")

	if m.step == stepFlow {
		b.WriteString("  How would you like to plan?\n\n")
		for i, f := range flowChoices {
			cursor := "  "
			label := formatter.StyleFg.Render(flowLabel(f))
			if i == m.flowCursor {
				cursor = formatter.StyleGreen.Render("▸ ")
				label = formatter.StyleBold.Render(flowLabel(f))
			}
			b.WriteString("  " + cursor + label + "\n")
		}
		b.WriteString("\n  " + formatter.Dim("enter select · q quit") + "\n")
		return b.String()
	}

	state := m.manager.Current()
	b.WriteString("  " + formatter.Dim(flowLabel(m.manager.Active())) + "\n\n")
	for _, slot := range selection.Slots {
		cursor := "  "
		if slot == m.focus {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("  %s%-8s %s\n", cursor, slotLabel(slot), m.slotValue(state, slot)))
		if m.open && slot == m.focus {
			b.WriteString(m.viewOptions())
		}
	}

	b.WriteString("\n")
	if m.message != "" {
		b.WriteString("  " + formatter.StyleRed.Render(m.message) + "\n\n")
	}
	if state.CanGenerate() {
		b.WriteString("  " + formatter.StyleGreen.Render("[g] Generate Schedule") + "\n")
	} else {
		b.WriteString("  " + formatter.Dim("[g] Generate Schedule (select three Holokai sections)") + "\n")
	}
	b.WriteString("  " + formatter.Dim("enter open · x clear · f switch flow · r start over · q quit") + "\n")
	return b.String()
}

func (m *pickerModel) slotValue(state *selection.State, slot selection.Slot) string {
	pick, ok := state.Get(slot)
	if !ok {
		return formatter.Dim(m.dropdowns[slot].Placeholder)
	}
	pool := m.minors
	if slot == selection.Major {
		pool = m.majors
	}
	name := fmt.Sprintf("#%d", pick.CourseID)
	if c, found := findCourse(pool, pick.CourseID); found {
		name = c.Name
	}
	return formatter.HolokaiDot(pick.Holokai) + " " + formatter.StyleBold.Render(name)
}

func (m *pickerModel) viewOptions() string {
	var b strings.Builder
	for i, opt := range m.dropdowns[m.focus].Options() {
		cursor := "    "
		if i == m.cursor {
			cursor = "  " + formatter.StyleGreen.Render("› ")
		}
		line := formatter.HolokaiDot(opt.Course.Holokai) + " " + opt.Course.Name
		if opt.Incompatible {
			line = formatter.Dim(line + " (incompatible)")
		}
		b.WriteString("      " + cursor + line + "\n")
	}
	return b.String()
}

func flowLabel(f domain.Flow) string {
	if f == domain.FlowSemesters {
		return "By number of semesters"
	}
	return "By credits per semester"
}

func slotLabel(s selection.Slot) string {
	switch s {
	case selection.Minor1:
		return "Minor 1"
	case selection.Minor2:
		return "Minor 2"
	default:
		return "Major"
	}
}
