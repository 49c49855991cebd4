package service

import (
	"testing"
	"time"

	"github.com/alexanderramin/degreeplan/internal/catalog"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/payload"
	"github.com/alexanderramin/degreeplan/internal/repository"
	"github.com/alexanderramin/degreeplan/internal/testutil"
)

type fixture struct {
	server    *testutil.CatalogServer
	values    repository.SessionValueRepo
	firstYear FirstYearService
	planner   PlannerService
}

func setupPlanner(t *testing.T, opts PlannerOptions) *fixture {
	t.Helper()
	srv := testutil.NewCatalogServer(t)
	database := testutil.NewTestDB(t)
	values := repository.NewSQLiteSessionValueRepo(database)
	firstYear := NewFirstYearService(values, testutil.NewTestUoW(database))
	client := catalog.NewClient(catalog.Config{BaseURL: srv.URL, FetchTimeout: 2 * time.Second}, nil)
	return &fixture{
		server:    srv,
		values:    values,
		firstYear: firstYear,
		planner:   NewPlannerService(client, firstYear, values, opts),
	}
}

func creditsForm() payload.CreditsForm {
	return payload.CreditsForm{
		MajorID:           testutil.BiologyMajorID,
		Minor1ID:          testutil.ArtMinorID,
		Minor2ID:          testutil.AccountingMinorID,
		EnglishLevel:      domain.EnglishFluent,
		StartSemester:     "Fall 2024",
		MajorClassLimit:   3,
		FallWinterCredits: 15,
		SpringCredits:     10,
	}
}

func semestersForm() payload.SemestersForm {
	return payload.SemestersForm{
		MajorID:         testutil.BusinessMajorID,
		Minor1ID:        testutil.ArtMinorID,
		Minor2ID:        testutil.ChemistryMinorID,
		EnglishLevel:    domain.EnglishEIL2,
		StartSemester:   "Winter 2025",
		TargetSemesters: 8,
		MajorClassLimit: 2,
	}
}
