// Package payload assembles the minimized scheduling request from the
// course catalog.
package payload

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"golang.org/x/sync/errgroup"
)

// CourseSource is the slice of the catalog API the builder needs.
type CourseSource interface {
	ClassFetcher
	Course(ctx context.Context, id int) (*domain.Course, error)
	Classes(ctx context.Context) ([]domain.Class, error)
}

// FirstYearSource supplies the saved first-year credit caps.
type FirstYearSource interface {
	FirstYearLimits(ctx context.Context) (domain.FirstYearLimits, error)
}

// Builder fetches and minimizes course data for a schedule request.
type Builder struct {
	source     CourseSource
	limits     FirstYearSource
	religionID int
	logger     *slog.Logger

	mu        sync.RWMutex
	preloaded map[int]domain.Class
}

// Option configures a Builder.
type Option func(*Builder)

// WithReligionCourse overrides the religion course added to every payload.
func WithReligionCourse(id int) Option {
	return func(b *Builder) { b.religionID = id }
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates a Builder. limits may be nil, in which case the
// default first-year caps are used.
func NewBuilder(source CourseSource, limits FirstYearSource, opts ...Option) *Builder {
	b := &Builder{
		source:     source,
		limits:     limits,
		religionID: domain.ReligionCourseID,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Preload fetches the whole class list once. Later builds seed their cache
// from it so bare dependency ids resolve without a request. On failure the
// builder keeps fetching classes individually.
func (b *Builder) Preload(ctx context.Context) error {
	classes, err := b.source.Classes(ctx)
	if err != nil {
		b.logger.Warn("bulk class preload failed; falling back to per-class fetches", "error", err)
		return fmt.Errorf("preloading classes: %w", err)
	}
	byID := make(map[int]domain.Class, len(classes))
	for _, c := range classes {
		if c.ID > 0 {
			byID[c.ID] = MinimizeClass(c)
		}
	}
	b.mu.Lock()
	b.preloaded = byID
	b.mu.Unlock()
	return nil
}

// Preloaded returns how many classes the bulk preload cached.
func (b *Builder) Preloaded() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.preloaded)
}

// NewCache returns a fresh class cache for one build, seeded with any
// preloaded classes.
func (b *Builder) NewCache() *ClassCache {
	cache := NewClassCache(b.source)
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.preloaded) > 0 {
		cache.Seed(b.preloaded)
	}
	return cache
}

// CourseIDs returns the ordered course list for a build: the selected
// programs (zero ids skipped), the religion core, then the course for the
// English level.
func (b *Builder) CourseIDs(selected []int, english domain.EnglishLevel) []int {
	ids := make([]int, 0, len(selected)+2)
	for _, id := range selected {
		if id > 0 {
			ids = append(ids, id)
		}
	}
	ids = append(ids, b.religionID)
	if id, ok := english.CourseID(); ok {
		ids = append(ids, id)
	}
	return ids
}

// CourseData fetches and minimizes every course for the selection. Courses
// are fetched concurrently and returned in CourseIDs order. The first
// failure aborts the build.
func (b *Builder) CourseData(ctx context.Context, selected []int, english domain.EnglishLevel) ([]domain.Course, error) {
	ids := b.CourseIDs(selected, english)
	cache := b.NewCache()
	out := make([]domain.Course, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			full, err := b.source.Course(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to fetch course %d: %w", id, err)
			}
			course, err := MinimizeCourse(gctx, cache, full)
			if err != nil {
				return fmt.Errorf("minimizing course %d: %w", id, err)
			}
			out[i] = course
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	b.logger.Debug("course data built",
		"courses", len(out),
		"cached_classes", cache.Len(),
		"class_fetches", cache.Fetches())
	return out, nil
}

// CreditsPayload builds the request for the credits-based flow.
func (b *Builder) CreditsPayload(ctx context.Context, form CreditsForm) (*domain.ScheduleRequest, error) {
	if err := ValidateForm(form); err != nil {
		return nil, err
	}
	courses, err := b.CourseData(ctx, form.CourseIDs(), form.EnglishLevel)
	if err != nil {
		return nil, err
	}
	prefs := domain.Preferences{
		StartSemester:     form.StartSemester,
		MajorClassLimit:   form.MajorClassLimit,
		FallWinterCredits: form.FallWinterCredits,
		SpringCredits:     form.SpringCredits,
		Approach:          domain.FlowCredits.Approach(),
	}
	if err := b.applyFirstYear(ctx, form.LimitFirstYear, &prefs); err != nil {
		return nil, err
	}
	return &domain.ScheduleRequest{CourseData: courses, Preferences: prefs}, nil
}

// SemestersPayload builds the request for the semester-count flow.
func (b *Builder) SemestersPayload(ctx context.Context, form SemestersForm) (*domain.ScheduleRequest, error) {
	if err := ValidateForm(form); err != nil {
		return nil, err
	}
	courses, err := b.CourseData(ctx, form.CourseIDs(), form.EnglishLevel)
	if err != nil {
		return nil, err
	}
	prefs := domain.Preferences{
		StartSemester:   form.StartSemester,
		TargetSemesters: form.TargetSemesters,
		MajorClassLimit: form.MajorClassLimit,
		Approach:        domain.FlowSemesters.Approach(),
	}
	if err := b.applyFirstYear(ctx, form.LimitFirstYear, &prefs); err != nil {
		return nil, err
	}
	return &domain.ScheduleRequest{CourseData: courses, Preferences: prefs}, nil
}

func (b *Builder) applyFirstYear(ctx context.Context, enabled bool, prefs *domain.Preferences) error {
	if !enabled {
		return nil
	}
	limits := domain.DefaultFirstYearLimits()
	if b.limits != nil {
		saved, err := b.limits.FirstYearLimits(ctx)
		if err != nil {
			return fmt.Errorf("reading first-year limits: %w", err)
		}
		limits = saved
	}
	prefs.LimitFirstYear = true
	prefs.FirstYearLimits = &limits
	return nil
}
