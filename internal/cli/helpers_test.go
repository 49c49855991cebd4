package cli

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/degreeplan/internal/catalog"
	"github.com/alexanderramin/degreeplan/internal/repository"
	"github.com/alexanderramin/degreeplan/internal/service"
	"github.com/alexanderramin/degreeplan/internal/testutil"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a full App against a fake catalog API and an in-memory
// session store.
func testApp(t *testing.T) (*App, *testutil.CatalogServer) {
	t.Helper()
	srv := testutil.NewCatalogServer(t)
	database := testutil.NewTestDB(t)
	values := repository.NewSQLiteSessionValueRepo(database)
	firstYear := service.NewFirstYearService(values, testutil.NewTestUoW(database))
	client := catalog.NewClient(catalog.Config{BaseURL: srv.URL, FetchTimeout: 2 * time.Second}, nil)

	return &App{
		Planner:   service.NewPlannerService(client, firstYear, values, service.PlannerOptions{SemestersTimeout: 2 * time.Second}),
		FirstYear: firstYear,
	}, srv
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func creditsArgs(extra ...string) []string {
	args := []string{"generate", "credits",
		"--major", "12", "--minor1", "40", "--minor2", "41",
		"--english", "fluent", "--start", "Fall 2024",
		"--major-class-limit", "3",
		"--fall-winter-credits", "15", "--spring-credits", "10",
	}
	return append(args, extra...)
}

func semestersArgs(extra ...string) []string {
	args := []string{"generate", "semesters",
		"--major", "13", "--minor1", "40", "--minor2", "42",
		"--english", "eil2", "--start", "Winter 2025",
		"--major-class-limit", "2", "--target-semesters", "8",
	}
	return append(args, extra...)
}
