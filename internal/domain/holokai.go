package domain

import "strings"

// Holokai display classes. Every course category maps onto exactly one.
const (
	HolokaiArtsHumanities      = "arts-humanities"
	HolokaiProfessionalStudies = "professional-studies"
	HolokaiMathSciences        = "math-sciences"
	HolokaiNone                = "no-holokai"
)

// HolokaiClass maps a free-form Holokai label from the catalog onto its
// display class.
func HolokaiClass(label string) string {
	l := strings.ToLower(label)
	switch {
	case l == "":
		return HolokaiNone
	case strings.Contains(l, "arts") || strings.Contains(l, "humanities"):
		return HolokaiArtsHumanities
	case strings.Contains(l, "professional"):
		return HolokaiProfessionalStudies
	case strings.Contains(l, "math") || strings.Contains(l, "sciences"):
		return HolokaiMathSciences
	default:
		return HolokaiNone
	}
}
