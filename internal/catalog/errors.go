package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTimeout indicates the request exceeded its deadline, or the
	// scheduler reported that it timed out.
	ErrTimeout = errors.New("catalog request timed out")

	// ErrSchedulerUnavailable indicates the schedule generator answered
	// with an internal server error.
	ErrSchedulerUnavailable = errors.New("schedule generator unavailable")

	// ErrUnreachable indicates no connection could be made to the API.
	ErrUnreachable = errors.New("catalog api unreachable")

	// ErrNotFound indicates the requested course or class does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSchedule indicates the scheduler's response carried no
	// schedule array.
	ErrInvalidSchedule = errors.New("invalid schedule format received")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d", e.Op, e.Code)
}

// Is lets errors.Is match a 404 against ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}
