package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jaeyoonkim/gisu/internal/bridge"
	"github.com/jaeyoonkim/gisu/internal/cli"
	"github.com/jaeyoonkim/gisu/internal/db"
	"github.com/jaeyoonkim/gisu/internal/holiday"
	"github.com/jaeyoonkim/gisu/internal/remote"
	"github.com/jaeyoonkim/gisu/internal/repository"
	"github.com/jaeyoonkim/gisu/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.gisu/gisu.db
	dbPath := os.Getenv("GISU_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".gisu", "gisu.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	cacheRepo := repository.NewSQLiteTaskCacheRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	templateRepo := repository.NewSQLiteCustomTemplateRepo(database)
	dismissalRepo := repository.NewSQLiteDismissalRepo(database)
	seedRepo := repository.NewSQLiteSeedMarkRepo(database)
	holidayRepo := repository.NewSQLiteHolidayCacheRepo(database)

	// Wire the remote tier (only when an endpoint is configured)
	remoteCfg := remote.LoadConfig()
	var store remote.Store
	if remoteCfg.Enabled {
		var observer remote.Observer = remote.NoopObserver{}
		if remoteCfg.LogCalls {
			observer = remote.NewLogObserver(os.Stderr)
		}
		store = remote.NewHTTPStore(remoteCfg, observer)
	}
	syncBridge := bridge.New(cacheRepo, settingsRepo, store, time.Duration(remoteCfg.TimeoutMs)*time.Millisecond)

	// Wire the holiday sources; a missing API key just disables the
	// live tier.
	holidayCfg := holiday.LoadConfig()
	holidayClient, err := holiday.NewClient(holidayCfg)
	if err != nil {
		holidayClient = nil
	}

	app := &cli.App{
		Tasks:    service.NewTaskService(cacheRepo, templateRepo, dismissalRepo, syncBridge),
		Cohorts:  service.NewCohortService(settingsRepo, cacheRepo, templateRepo, dismissalRepo, seedRepo, syncBridge),
		Holidays: service.NewHolidayService(holidayRepo, holidayCfg.FileDir, holidayClient),
		Session:  service.NewSession(),
		Settings: settingsRepo,
		Bridge:   syncBridge,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
