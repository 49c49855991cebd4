package service

import (
	"context"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/payload"
)

// CourseCatalog is everything the pickers need.
type CourseCatalog struct {
	Majors           []domain.CourseSummary
	Minors           []domain.CourseSummary
	EnglishLevels    []domain.EnglishLevel
	PreloadedClasses int
}

// ScheduleResult is one completed generation.
type ScheduleResult struct {
	Flow     domain.Flow
	Request  *domain.ScheduleRequest
	Response *domain.ScheduleResponse
}

// Empty reports whether the scheduler produced no semesters.
func (r *ScheduleResult) Empty() bool {
	return r == nil || r.Response == nil || len(r.Response.Schedule) == 0
}

type PlannerService interface {
	Catalog(ctx context.Context) (*CourseCatalog, error)
	CourseDetail(ctx context.Context, id int) (*domain.Course, error)
	GenerateFromCredits(ctx context.Context, form payload.CreditsForm) (*ScheduleResult, error)
	GenerateFromSemesters(ctx context.Context, form payload.SemestersForm) (*ScheduleResult, error)
	LastSchedule(ctx context.Context) (*domain.ScheduleResponse, error)
}

type FirstYearService interface {
	Limits(ctx context.Context) (domain.FirstYearLimits, error)
	// FirstYearLimits is Limits under the name the payload builder expects.
	FirstYearLimits(ctx context.Context) (domain.FirstYearLimits, error)
	Save(ctx context.Context, limits domain.FirstYearLimits) error
	Reset(ctx context.Context) error
}
