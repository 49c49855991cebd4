package service

import (
	"errors"

	"github.com/alexanderramin/degreeplan/internal/catalog"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/payload"
)

// User-facing failure messages.
const (
	MsgGeneric     = "There was an error generating your schedule. Please try again."
	MsgTimeout     = "Schedule generation is taking longer than expected. Please try again with fewer courses or simpler requirements."
	MsgUnavailable = "The schedule generator is currently unavailable. Please try again in a few minutes."
)

// ErrNoSavedSchedule is returned by LastSchedule before any generation.
var ErrNoSavedSchedule = errors.New("no schedule has been generated yet")

// GenerationError wraps a failed generation. Its message is the text shown
// to the user; the cause stays reachable through errors.Is/As.
type GenerationError struct {
	Flow domain.Flow
	Err  error
}

func (e *GenerationError) Error() string {
	return UserMessage(e.Flow, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// UserMessage maps a generation failure onto the message shown to the
// user. Only the semester flow distinguishes timeouts and an unavailable
// scheduler; missing form fields are named in both flows.
func UserMessage(flow domain.Flow, err error) string {
	var missing *payload.MissingFieldsError
	if errors.As(err, &missing) {
		return missing.Error()
	}
	if flow == domain.FlowSemesters {
		switch {
		case errors.Is(err, catalog.ErrTimeout):
			return MsgTimeout
		case errors.Is(err, catalog.ErrSchedulerUnavailable):
			return MsgUnavailable
		}
	}
	return MsgGeneric
}
