package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/degreeplan/internal/catalog"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/payload"
	"github.com/alexanderramin/degreeplan/internal/repository"
	"github.com/alexanderramin/degreeplan/internal/selection"
)

// DefaultSemestersTimeout bounds the semester-count generation request.
const DefaultSemestersTimeout = 30 * time.Second

// KeyLastSchedule holds the most recent successful response.
const KeyLastSchedule = "lastSchedule"

// PlannerOptions tunes a PlannerService.
type PlannerOptions struct {
	SemestersTimeout time.Duration
	ReligionCourseID int
	Logger           *slog.Logger
}

type plannerService struct {
	client   catalog.Client
	builder  *payload.Builder
	values   repository.SessionValueRepo
	timeout  time.Duration
	logger   *slog.Logger
	observer UseCaseObserver
}

// NewPlannerService wires the catalog client, the payload builder and the
// session store. values may be nil, in which case results are not saved.
func NewPlannerService(
	client catalog.Client,
	firstYear payload.FirstYearSource,
	values repository.SessionValueRepo,
	opts PlannerOptions,
	observers ...UseCaseObserver,
) PlannerService {
	if opts.SemestersTimeout <= 0 {
		opts.SemestersTimeout = DefaultSemestersTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	builderOpts := []payload.Option{payload.WithLogger(logger)}
	if opts.ReligionCourseID > 0 {
		builderOpts = append(builderOpts, payload.WithReligionCourse(opts.ReligionCourseID))
	}
	return &plannerService{
		client:   client,
		builder:  payload.NewBuilder(client, firstYear, builderOpts...),
		values:   values,
		timeout:  opts.SemestersTimeout,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *plannerService) Catalog(ctx context.Context) (cat *CourseCatalog, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observe(ctx, "load-catalog", startedAt, err, fields)
	}()

	basic, err := s.client.BasicCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading courses: %w", err)
	}

	// A failed preload only costs extra per-class requests later.
	if s.builder.Preloaded() == 0 {
		_ = s.builder.Preload(ctx)
	}

	cat = &CourseCatalog{
		Majors:           selection.Majors(basic),
		Minors:           selection.Minors(basic),
		EnglishLevels:    domain.EnglishLevels,
		PreloadedClasses: s.builder.Preloaded(),
	}
	fields["majors"] = len(cat.Majors)
	fields["minors"] = len(cat.Minors)
	fields["preloaded_classes"] = cat.PreloadedClasses
	return cat, nil
}

func (s *plannerService) CourseDetail(ctx context.Context, id int) (*domain.Course, error) {
	course, err := s.client.Course(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading course %d: %w", id, err)
	}
	return course, nil
}

func (s *plannerService) GenerateFromCredits(ctx context.Context, form payload.CreditsForm) (res *ScheduleResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"flow": string(domain.FlowCredits)}
	defer func() {
		s.observe(ctx, "generate-schedule", startedAt, err, fields)
	}()

	req, err := s.builder.CreditsPayload(ctx, form)
	if err != nil {
		return nil, &GenerationError{Flow: domain.FlowCredits, Err: err}
	}
	fields["courses"] = len(req.CourseData)

	// The credits flow has no client-side deadline.
	resp, err := s.client.GenerateSchedule(ctx, req, 0)
	if err != nil {
		return nil, &GenerationError{Flow: domain.FlowCredits, Err: err}
	}
	fields["semesters"] = len(resp.Schedule)

	res = &ScheduleResult{Flow: domain.FlowCredits, Request: req, Response: resp}
	s.remember(ctx, res)
	return res, nil
}

func (s *plannerService) GenerateFromSemesters(ctx context.Context, form payload.SemestersForm) (res *ScheduleResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"flow": string(domain.FlowSemesters), "target_semesters": form.TargetSemesters}
	defer func() {
		s.observe(ctx, "generate-schedule", startedAt, err, fields)
	}()

	req, err := s.builder.SemestersPayload(ctx, form)
	if err != nil {
		return nil, &GenerationError{Flow: domain.FlowSemesters, Err: err}
	}
	fields["courses"] = len(req.CourseData)

	resp, err := s.client.GenerateSchedule(ctx, req, s.timeout)
	if err != nil {
		return nil, &GenerationError{Flow: domain.FlowSemesters, Err: err}
	}
	if resp.Schedule == nil {
		return nil, &GenerationError{Flow: domain.FlowSemesters, Err: catalog.ErrInvalidSchedule}
	}
	fields["semesters"] = len(resp.Schedule)

	res = &ScheduleResult{Flow: domain.FlowSemesters, Request: req, Response: resp}
	s.remember(ctx, res)
	return res, nil
}

func (s *plannerService) LastSchedule(ctx context.Context) (*domain.ScheduleResponse, error) {
	if s.values == nil {
		return nil, ErrNoSavedSchedule
	}
	v, err := s.values.Get(ctx, KeyLastSchedule)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSavedSchedule
		}
		return nil, err
	}
	var resp domain.ScheduleResponse
	if err := json.Unmarshal([]byte(v.Value), &resp); err != nil {
		return nil, fmt.Errorf("decoding saved schedule: %w", err)
	}
	return &resp, nil
}

// remember saves a non-empty result for later viewing. Failing to save is
// logged, never returned: the schedule itself was produced.
func (s *plannerService) remember(ctx context.Context, res *ScheduleResult) {
	if s.values == nil || res.Empty() {
		return
	}
	data, err := json.Marshal(res.Response)
	if err == nil {
		err = s.values.Set(ctx, KeyLastSchedule, string(data))
	}
	if err != nil {
		s.logger.Warn("saving last schedule failed", "error", err)
	}
}

func (s *plannerService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
