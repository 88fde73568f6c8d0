package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/quorum/internal/cli"
	"github.com/alexanderramin/quorum/internal/cli/formatter"
	"github.com/alexanderramin/quorum/internal/config"
	"github.com/alexanderramin/quorum/internal/db"
	"github.com/alexanderramin/quorum/internal/repository"
	"github.com/alexanderramin/quorum/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	personRepo, err := repository.NewCachedPersonRepo(repository.NewSQLitePersonRepo(database), cfg.PersonCacheSize)
	if err != nil {
		return fmt.Errorf("creating person cache: %w", err)
	}
	busyRepo := repository.NewSQLiteBusyRepo(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	directory := service.NewFailOpenDirectory(
		service.NewDirectory(personRepo), cfg.Timeout(config.CollaboratorDirectory), observer)
	calendar := service.NewFailOpenCalendar(
		service.NewCalendar(busyRepo), cfg.Timeout(config.CollaboratorCalendar), observer)

	app := &cli.App{
		People: service.NewPersonService(personRepo),
		Busy:   service.NewBusyService(busyRepo, personRepo),
		Suggest: service.NewSuggestService(directory, calendar,
			service.WithWorkers(cfg.Workers),
			service.WithObserver(observer),
		),
		Import:         service.NewImportService(db.NewSQLiteUnitOfWork(database), observer),
		Location:       cfg.Location,
		MaxSuggestions: cfg.MaxSuggestions,
	}

	formatter.SetColorEnabled(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
