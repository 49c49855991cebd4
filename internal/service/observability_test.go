package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/payload"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Success(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "generate-schedule",
		Duration: 40 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"flow": "credits"},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=generate-schedule")
	assert.Contains(t, out, "duration_ms=40")
	assert.Contains(t, out, "flow=credits")
}

func TestLogUseCaseObserver_FailureCarriesCause(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "generate-schedule",
		Err:  &GenerationError{Flow: domain.FlowCredits, Err: errors.New("failed to fetch course 12")},
	})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `cause="failed to fetch course 12"`)
}

func TestLogUseCaseObserver_MissingFieldsIsWarning(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "generate-schedule",
		Err:  &GenerationError{Flow: domain.FlowSemesters, Err: &payload.MissingFieldsError{Fields: []string{"startSemester"}}},
	})

	assert.Contains(t, buf.String(), "level=WARN")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}
