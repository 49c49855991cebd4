package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// ExportJSON writes the schedule as two-space indented JSON. A nil schedule
// is written as an empty array.
func ExportJSON(w io.Writer, schedule []domain.Semester) error {
	if schedule == nil {
		schedule = []domain.Semester{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(schedule); err != nil {
		return fmt.Errorf("exporting schedule: %w", err)
	}
	return nil
}
