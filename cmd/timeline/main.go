package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/timeline/internal/cli"
	"github.com/alexanderramin/timeline/internal/config"
	"github.com/alexanderramin/timeline/internal/db"
	"github.com/alexanderramin/timeline/internal/repository"
	"github.com/alexanderramin/timeline/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Use-case events go to a log file when one is configured; the TUI owns
	// the terminal otherwise.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		observer = service.NewLogUseCaseObserver(f)
	}

	itemRepo := repository.NewSQLiteItemRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Items:      service.NewItemService(itemRepo, uow, observer),
		Layout:     service.NewLayoutService(itemRepo),
		Import:     service.NewImportService(uow, observer),
		Export:     service.NewExportService(itemRepo),
		Zoom:       cfg.Zoom,
		ChartWidth: cfg.ChartWidth,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
