package catalog

import (
	"io"
	"log/slog"
)

// CallEvent records metadata about a single API call.
type CallEvent struct {
	Op        string
	Method    string
	Path      string
	RequestID string
	Status    int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about API calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events through a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"op", event.Op,
		"method", event.Method,
		"path", event.Path,
		"request_id", event.RequestID,
		"status", event.Status,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		o.logger.Warn("api_call", append(attrs, "error_code", event.ErrorCode)...)
		return
	}
	o.logger.Info("api_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
