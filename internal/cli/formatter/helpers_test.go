package formatter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderBox_Title(t *testing.T) {
	got := stripANSI(RenderBox("summary", "body"))
	assert.Contains(t, got, "SUMMARY")
	assert.Contains(t, got, "body")
	assert.Contains(t, got, "╭")
}

func TestRenderCard(t *testing.T) {
	got := stripANSI(RenderCard("Fall 2024", "CS 101", 30))
	assert.Contains(t, got, "Fall 2024")
	assert.Contains(t, got, "CS 101")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 semester", Plural(1, "semester"))
	assert.Equal(t, "0 semesters", Plural(0, "semester"))
	assert.Equal(t, "8 semesters", Plural(8, "semester"))
}

func TestCredits(t *testing.T) {
	assert.Equal(t, "3 cr", Credits(3))
}

func TestKeyValue(t *testing.T) {
	got := stripANSI(KeyValue("Start", "Fall 2024", 8))
	assert.Equal(t, "Start     Fall 2024", got)
}

func TestHolokaiDot(t *testing.T) {
	assert.Equal(t, "●", stripANSI(HolokaiDot("Arts & Humanities")))
	assert.Equal(t, "●", stripANSI(HolokaiDot("")))
}

func TestHeader(t *testing.T) {
	got := stripANSI(Header("majors"))
	assert.Equal(t, "MAJORS\n──────", got)
}
