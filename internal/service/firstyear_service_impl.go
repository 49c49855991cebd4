package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/alexanderramin/degreeplan/internal/db"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/repository"
)

// Session keys for the first-year caps.
const (
	KeyFirstYearFallWinter = "firstYearFallWinterCredits"
	KeyFirstYearSpring     = "firstYearSpringCredits"
)

type firstYearService struct {
	values   repository.SessionValueRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewFirstYearService(values repository.SessionValueRepo, uow db.UnitOfWork, observers ...UseCaseObserver) FirstYearService {
	return &firstYearService{
		values:   values,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Limits returns the saved caps. A missing or unparsable value falls back
// to its default.
func (s *firstYearService) Limits(ctx context.Context) (domain.FirstYearLimits, error) {
	limits := domain.DefaultFirstYearLimits()
	fw, err := s.readInt(ctx, KeyFirstYearFallWinter, limits.FallWinterCredits)
	if err != nil {
		return limits, err
	}
	sp, err := s.readInt(ctx, KeyFirstYearSpring, limits.SpringCredits)
	if err != nil {
		return limits, err
	}
	limits.FallWinterCredits = fw
	limits.SpringCredits = sp
	return limits, nil
}

// FirstYearLimits lets the service feed the payload builder.
func (s *firstYearService) FirstYearLimits(ctx context.Context) (domain.FirstYearLimits, error) {
	return s.Limits(ctx)
}

// Save validates and stores both caps in one transaction.
func (s *firstYearService) Save(ctx context.Context, limits domain.FirstYearLimits) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-first-year-limits",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"fall_winter": limits.FallWinterCredits,
				"spring":      limits.SpringCredits,
			},
		})
	}()

	if err = limits.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionValueRepo(tx)
		if err := repo.Set(ctx, KeyFirstYearFallWinter, strconv.Itoa(limits.FallWinterCredits)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyFirstYearSpring, strconv.Itoa(limits.SpringCredits))
	})
}

// Reset forgets both caps so the defaults apply again.
func (s *firstYearService) Reset(ctx context.Context) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionValueRepo(tx)
		if err := repo.Delete(ctx, KeyFirstYearFallWinter); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyFirstYearSpring)
	})
}

func (s *firstYearService) readInt(ctx context.Context, key string, fallback int) (int, error) {
	v, err := s.values.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fallback, nil
		}
		return fallback, err
	}
	n, err := strconv.Atoi(v.Value)
	if err != nil {
		return fallback, nil
	}
	return n, nil
}
