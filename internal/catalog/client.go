// Package catalog talks to the course catalog REST API and to the remote
// schedule generator behind it.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client provides access to the catalog and scheduling endpoints.
type Client interface {
	// BasicCourses lists every program with just enough data for pickers.
	BasicCourses(ctx context.Context) ([]domain.CourseSummary, error)

	// Classes lists every class in the catalog.
	Classes(ctx context.Context) ([]domain.Class, error)

	// Course fetches a program with its essential section and class tree.
	Course(ctx context.Context, id int) (*domain.Course, error)

	// Class fetches a single class with its essential fields.
	Class(ctx context.Context, id int) (*domain.Class, error)

	// GenerateSchedule posts a request to the scheduler. A positive timeout
	// aborts the call once it elapses.
	GenerateSchedule(ctx context.Context, req *domain.ScheduleRequest, timeout time.Duration) (*domain.ScheduleResponse, error)
}

// Config configures the HTTP client.
type Config struct {
	BaseURL      string
	FetchTimeout time.Duration
}

type restClient struct {
	cfg      Config
	http     *resty.Client
	observer Observer
}

// NewClient creates a Client for the API rooted at cfg.BaseURL.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	hc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTransport(&http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		})
	return &restClient{cfg: cfg, http: hc, observer: observer}
}

func (c *restClient) BasicCourses(ctx context.Context) ([]domain.CourseSummary, error) {
	var out []domain.CourseSummary
	if err := c.get(ctx, "basic courses", "/api/courses/basic", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClient) Classes(ctx context.Context) ([]domain.Class, error) {
	var out []domain.Class
	if err := c.get(ctx, "classes", "/api/classes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClient) Course(ctx context.Context, id int) (*domain.Course, error) {
	var out domain.Course
	path := "/api/courses/" + strconv.Itoa(id)
	if err := c.get(ctx, fmt.Sprintf("fetching course %d", id), path, essential, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Class(ctx context.Context, id int) (*domain.Class, error) {
	var out domain.Class
	path := "/api/classes/" + strconv.Itoa(id)
	if err := c.get(ctx, fmt.Sprintf("fetching class %d", id), path, essential, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var essential = map[string]string{"fields": "essential"}

func (c *restClient) get(ctx context.Context, op, path string, query map[string]string, out any) error {
	if c.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.FetchTimeout)
		defer cancel()
	}

	req := c.newRequest(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}
	resp, err := c.send(ctx, op, req, http.MethodGet, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return nil
}

// wireResponse defers decoding of schedule so a missing or null schedule
// can be told apart from an empty one.
type wireResponse struct {
	Schedule     json.RawMessage          `json:"schedule"`
	Improvements []string                 `json:"improvements"`
	Metadata     *domain.ScheduleMetadata `json:"metadata"`
	Error        string                   `json:"error"`
}

func (c *restClient) GenerateSchedule(ctx context.Context, body *domain.ScheduleRequest, timeout time.Duration) (*domain.ScheduleResponse, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	const op = "generating schedule"
	req := c.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	resp, err := c.send(ctx, op, req, http.MethodPost, "/api/generate-schedule")
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			switch {
			case strings.Contains(strings.ToLower(se.Body), "timeout"):
				return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
			case se.Code == http.StatusInternalServerError:
				return nil, fmt.Errorf("%w: %v", ErrSchedulerUnavailable, err)
			}
			return nil, fmt.Errorf("server error: %d", se.Code)
		}
		return nil, err
	}

	var wire wireResponse
	if err := json.Unmarshal(resp.Body(), &wire); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", op, err)
	}

	out := &domain.ScheduleResponse{
		Improvements: wire.Improvements,
		Metadata:     wire.Metadata,
		Error:        wire.Error,
	}
	raw := strings.TrimSpace(string(wire.Schedule))
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal(wire.Schedule, &out.Schedule); err != nil {
			return nil, fmt.Errorf("%s: decoding schedule: %w", op, err)
		}
		if out.Schedule == nil {
			out.Schedule = []domain.Semester{}
		}
	}
	return out, nil
}

func (c *restClient) newRequest(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.New().String())
}

// send executes req and reports it to the observer. Non-2xx responses are
// returned as *StatusError.
func (c *restClient) send(ctx context.Context, op string, req *resty.Request, method, path string) (*resty.Response, error) {
	start := time.Now()
	event := CallEvent{
		Op:        op,
		Method:    method,
		Path:      path,
		RequestID: req.Header.Get("X-Request-ID"),
	}

	resp, err := req.Execute(method, path)
	event.LatencyMs = time.Since(start).Milliseconds()

	if err != nil {
		err = classify(ctx, op, err)
		event.ErrorCode = errorCode(err)
		c.observer.OnCallComplete(event)
		return nil, err
	}

	event.Status = resp.StatusCode()
	if !resp.IsSuccess() {
		se := &StatusError{Op: op, Code: resp.StatusCode(), Body: resp.String()}
		event.ErrorCode = errorCode(se)
		c.observer.OnCallComplete(event)
		return nil, se
	}

	event.Success = true
	c.observer.OnCallComplete(event)
	return resp, nil
}

func classify(ctx context.Context, op string, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, context.Canceled)
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrTimeout)
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w", op, ErrUnreachable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func errorCode(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrUnreachable):
		return "UNREACHABLE"
	case errors.As(err, &se):
		return "HTTP_" + strconv.Itoa(se.Code)
	default:
		return "UNKNOWN"
	}
}
