package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/charmbracelet/huh"
)

// parsePositiveInt parses s as a positive integer, returning fallback if s is
// empty, non-numeric, or non-positive.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// validateIntRange returns a validator accepting integers in [lo, hi].
func validateIntRange(lo, hi int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || v < lo || v > hi {
			return fmt.Errorf("enter a number from %d to %d", lo, hi)
		}
		return nil
	}
}

// validateTerm accepts a "Fall 2024" style label.
func validateTerm(s string) error {
	if _, _, err := domain.ParseTerm(s); err != nil {
		return fmt.Errorf(`use a term like "Fall 2024"`)
	}
	return nil
}

// intRangeInput returns a huh.Input for a bounded integer.
func intRangeInput(title string, lo, hi int, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(fmt.Sprintf("%d-%d", lo, hi)).
		Value(value).
		Validate(validateIntRange(lo, hi))
}

// creditInput is intRangeInput with the allowed range in its description.
func creditInput(title string, lo, hi int, value *string) *huh.Input {
	return intRangeInput(title, lo, hi, value).
		Description(fmt.Sprintf("Allowed: %d-%d credits", lo, hi))
}

// termInput returns a huh.Input for a start semester.
func termInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("Fall 2024").
		Value(value).
		Validate(validateTerm)
}
