package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// HolokaiStyle returns the style for a Holokai indicator class.
func HolokaiStyle(class string) lipgloss.Style {
	switch class {
	case domain.HolokaiArtsHumanities:
		return StylePurple
	case domain.HolokaiProfessionalStudies:
		return StyleBlue
	case domain.HolokaiMathSciences:
		return StyleGreen
	default:
		return StyleDim
	}
}

// HolokaiDot returns a colored dot for a Holokai label, like the picker's
// category indicator.
func HolokaiDot(label string) string {
	return HolokaiStyle(domain.HolokaiClass(label)).Render("●")
}

// TagStyle returns the style used for a class tag (major, minor, ...).
func TagStyle(tag string) lipgloss.Style {
	switch strings.ToLower(tag) {
	case string(domain.CourseMajor):
		return StyleHeader
	case string(domain.CourseMinor):
		return StyleBlue
	case string(domain.CourseReligion):
		return StylePurple
	case string(domain.CourseEIL):
		return StyleAqua
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
