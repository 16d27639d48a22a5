package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jaeyoonkim/gisu/internal/cli/formatter"
	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var cohort string

	cmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show a month with holidays and due tasks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			now := time.Now()
			year, month := now.Year(), now.Month()
			if len(args) == 1 {
				parsed, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q: use YYYY-MM", args[0])
				}
				year, month = parsed.Year(), parsed.Month()
			}

			tasks, err := app.Tasks.List(ctx)
			if err != nil {
				return err
			}
			if cohort == "" {
				cohort, err = app.Cohorts.Current(ctx)
				if err != nil {
					return err
				}
			}
			var filtered []domain.Task
			for _, t := range tasks {
				if cohort == "" || t.Cohort == cohort {
					filtered = append(filtered, t)
				}
			}

			// A missing holiday source degrades to a plain grid.
			holidays, err := app.Holidays.Year(ctx, year)
			if err != nil {
				fmt.Println(formatter.Warn("공휴일 정보를 불러오지 못했습니다."))
				holidays = nil
			}

			fmt.Println(formatter.FormatMonth(year, month, filtered, holidays))
			return nil
		},
	}

	cmd.Flags().StringVar(&cohort, "cohort", "", "Limit tasks to one cohort (defaults to the active one)")

	return cmd
}
