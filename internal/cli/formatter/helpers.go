package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RenderCard is a compact bordered card used for one semester.
func RenderCard(title, content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		PaddingLeft(1).
		PaddingRight(1)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(StyleBold.Render(title) + "\n" + content)
}

// Credits renders a credit count like "3 cr".
func Credits(n int) string {
	return fmt.Sprintf("%d cr", n)
}

// Plural returns "<n> <word>" with a trailing s unless n is one.
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// KeyValue renders an aligned "label  value" line.
func KeyValue(label string, value string, labelWidth int) string {
	pad := labelWidth - lipgloss.Width(label)
	if pad < 0 {
		pad = 0
	}
	return Dim(label) + strings.Repeat(" ", pad+2) + value
}
