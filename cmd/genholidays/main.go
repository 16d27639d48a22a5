// Command genholidays pre-generates yearly holiday files from the
// data.go.kr special-day API, so the app can render calendars without a
// live API key.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jaeyoonkim/gisu/internal/holiday"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		fromYear int
		toYear   int
		outDir   string
	)
	currentYear := time.Now().Year()
	flag.IntVar(&fromYear, "from", currentYear, "First year to fetch")
	flag.IntVar(&toYear, "to", currentYear+1, "Last year to fetch (inclusive)")
	flag.StringVar(&outDir, "out", "", "Output directory (defaults to GISU_HOLIDAY_DIR)")
	flag.Parse()

	if toYear < fromYear {
		return fmt.Errorf("invalid year range %d..%d", fromYear, toYear)
	}

	cfg := holiday.LoadConfig()
	if outDir == "" {
		outDir = cfg.FileDir
	}

	client, err := holiday.NewClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	for year := fromYear; year <= toYear; year++ {
		list, err := client.FetchYear(ctx, year)
		if err != nil {
			return fmt.Errorf("fetching %d: %w", year, err)
		}
		if err := holiday.WriteYearFile(outDir, year, list); err != nil {
			return err
		}
		fmt.Printf("wrote %s/holidays-%d.json (%d days)\n", outDir, year, len(list))
	}
	return nil
}
