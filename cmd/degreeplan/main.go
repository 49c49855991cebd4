package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/degreeplan/internal/catalog"
	"github.com/alexanderramin/degreeplan/internal/cli"
	"github.com/alexanderramin/degreeplan/internal/config"
	"github.com/alexanderramin/degreeplan/internal/db"
	"github.com/alexanderramin/degreeplan/internal/repository"
	"github.com/alexanderramin/degreeplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	// Determine DB path: env var or default ~/.degreeplan/session.db
	dbPath := cfg.DBPath
	if dbPath == "" {
		p, err := db.DefaultPath()
		if err != nil {
			return err
		}
		dbPath = p
	}

	// Open the session store
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Call logging goes to stderr only when DEGREEPLAN_LOG is set.
	logger := slog.New(slog.DiscardHandler)
	var callObserver catalog.Observer = catalog.NoopObserver{}
	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		callObserver = catalog.NewLogObserver(os.Stderr)
		useCaseObserver = service.NewSlogUseCaseObserver(logger)
	}

	values := repository.NewSQLiteSessionValueRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	firstYear := service.NewFirstYearService(values, uow, useCaseObserver)

	client := catalog.NewClient(catalog.Config{
		BaseURL:      cfg.APIURL,
		FetchTimeout: cfg.FetchTimeout(),
	}, callObserver)

	planner := service.NewPlannerService(client, firstYear, values, service.PlannerOptions{
		SemestersTimeout: cfg.SemestersTimeout(),
		ReligionCourseID: cfg.ReligionCourseID,
		Logger:           logger,
	}, useCaseObserver)

	app := &cli.App{
		Planner:     planner,
		FirstYear:   firstYear,
		PreviewAddr: cfg.PreviewAddr,
	}

	// Detect interactive terminal for forms, the picker and the spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	if cfg.LogCalls {
		app.PreviewLog = os.Stderr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
